//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/learning-journal/internal/adapters/persistence/gormstore"
	"github.com/jsamuelsen/learning-journal/internal/platform/config"
)

const shippedConfigs = "../../configs"

// TestConfig_ShippedProfilesValidate loads every profile file in configs/
// the way `journal serve` does.
func TestConfig_ShippedProfilesValidate(t *testing.T) {
	for _, profile := range []string{"local", "test", "prod"} {
		t.Run(profile, func(t *testing.T) {
			cfg, err := config.Load(profile, config.WithDir(shippedConfigs))
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, profile, cfg.App.Environment)
			assert.Equal(t, "learning-journal", cfg.App.Name)

			_, err = cfg.Journal.Location()
			require.NoError(t, err)
		})
	}
}

func TestConfig_ProdUsesPostgres(t *testing.T) {
	cfg, err := config.Load("prod", config.WithDir(shippedConfigs))
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.True(t, cfg.Log.File.Enabled)
}

func TestConfig_EnvOverridesProfile(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9191")
	t.Setenv("APP_JOURNAL_TIMEZONE", "Asia/Tokyo")

	cfg, err := config.Load("local", config.WithDir(shippedConfigs))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 9191, cfg.Server.Port)

	loc, err := cfg.Journal.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

// TestConfig_TestProfileOpensStore checks that the test profile's database
// settings are usable as they stand.
func TestConfig_TestProfileOpensStore(t *testing.T) {
	cfg, err := config.Load("test", config.WithDir(shippedConfigs))
	require.NoError(t, err)
	assert.Equal(t, time.UTC.String(), cfg.Journal.Timezone)

	store, err := gormstore.Open(context.Background(), cfg.Database, gormstore.WithLogger(quietLogger()))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Check(context.Background()))
}
