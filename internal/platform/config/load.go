package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides, e.g. APP_DATABASE_DSN.
const EnvPrefix = "APP_"

// defaults is the lowest layer. A journal started with no config files at
// all keeps its entries in ./journal.db.
func defaults() map[string]any {
	return map[string]any{
		"app": map[string]any{
			"name":        "learning-journal",
			"version":     "dev",
			"environment": "local",
		},
		"server": map[string]any{
			"host":             "0.0.0.0",
			"port":             8080,
			"read_timeout":     "15s",
			"write_timeout":    "15s",
			"idle_timeout":     "120s",
			"shutdown_timeout": "10s",
			"request_timeout":  "10s",
			"max_request_size": 1 << 20,
		},
		"log": map[string]any{
			"level":  "info",
			"format": "json",
			"file": map[string]any{
				"enabled":     false,
				"path":        "./logs/journal.log",
				"max_size":    100,
				"max_backups": 3,
				"max_age":     28,
				"compress":    true,
			},
		},
		"telemetry": map[string]any{
			"enabled":       false,
			"endpoint":      "",
			"service_name":  "learning-journal",
			"sampling_rate": 1.0,
			"insecure":      true,
		},
		"database": map[string]any{
			"driver":            "sqlite",
			"dsn":               "file:journal.db",
			"max_open_conns":    10,
			"max_idle_conns":    5,
			"conn_max_lifetime": "30m",
			"auto_migrate":      true,
			"slow_threshold":    "200ms",
		},
		"journal": map[string]any{
			"timezone": "",
		},
		"client": map[string]any{
			"timeout": "10s",
			"retry": map[string]any{
				"max_attempts":     3,
				"initial_interval": "100ms",
				"max_interval":     "5s",
				"multiplier":       2.0,
				"jitter_factor":    0.25,
			},
			"circuit_breaker": map[string]any{
				"max_failures":    5,
				"timeout":         "30s",
				"half_open_limit": 3,
			},
			"transport": map[string]any{
				"max_idle_conns":          100,
				"max_idle_conns_per_host": 10,
				"idle_conn_timeout":       "90s",
			},
		},
		"remote": map[string]any{
			"base_url": "",
			"name":     "remote-journal",
		},
	}
}

type fileLayer struct {
	what     string
	path     string
	optional bool
}

type loadOptions struct {
	dir   string
	files []string
}

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

// WithDir changes where base.yaml and the profile files are looked up.
func WithDir(dir string) LoadOption {
	return func(o *loadOptions) { o.dir = dir }
}

// WithFile layers an explicit YAML file over the profile. Unlike base.yaml
// and the profile file it has to exist.
func WithFile(path string) LoadOption {
	return func(o *loadOptions) {
		if path != "" {
			o.files = append(o.files, path)
		}
	}
}

// Load builds the configuration. Later layers win:
//
//	defaults < {dir}/base.yaml < {dir}/{profile}.yaml < WithFile files < APP_* env
func Load(profile string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{dir: "configs"}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	layers := []fileLayer{{what: "base config", path: filepath.Join(o.dir, "base.yaml"), optional: true}}

	if profile != "" {
		layers = append(layers, fileLayer{
			what:     fmt.Sprintf("profile config %q", profile),
			path:     filepath.Join(o.dir, profile+".yaml"),
			optional: true,
		})
	}

	for _, path := range o.files {
		layers = append(layers, fileLayer{what: fmt.Sprintf("config file %q", path), path: path})
	}

	for _, l := range layers {
		if l.optional && !exists(l.path) {
			continue
		}

		if err := k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.what, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyMapper(k.Keys())), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// envKeyMapper turns APP_DATABASE_AUTO_MIGRATE into database.auto_migrate.
// Keys already known from earlier layers are matched whole, which keeps
// underscores inside a key; unknown names split on every underscore.
func envKeyMapper(known []string) func(string) string {
	byEnv := make(map[string]string, len(known))
	for _, key := range known {
		byEnv[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if key, ok := byEnv[name]; ok {
			return key
		}

		return strings.ReplaceAll(name, "_", ".")
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)

	return !errors.Is(err, fs.ErrNotExist)
}
