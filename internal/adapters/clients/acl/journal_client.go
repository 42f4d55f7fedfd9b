package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen/learning-journal/internal/adapters/clients"
	"github.com/jsamuelsen/learning-journal/internal/domain"
	"github.com/jsamuelsen/learning-journal/internal/platform/logging"
)

// JournalClientConfig configures a JournalClient.
type JournalClientConfig struct {
	// Client must point at the remote server's base URL.
	Client *clients.Client

	Logger *slog.Logger
}

// JournalClient reads and backs up another journal server over its HTTP
// API. It implements ports.EntrySource, so the statistics service can run
// against a remote journal, and ports.HealthChecker.
type JournalClient struct {
	BaseAdapter

	logger *slog.Logger
}

// NewJournalClient panics if cfg.Client is nil.
func NewJournalClient(cfg JournalClientConfig) *JournalClient {
	if cfg.Client == nil {
		panic("JournalClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &JournalClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		logger:      logger,
	}
}

type remoteTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type remoteEntry struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Tags      []remoteTag `json:"tags"`
}

type remoteImportResult struct {
	Imported int `json:"imported"`
}

// ListEntries implements ports.EntrySource with GET /api/entries.
func (c *JournalClient) ListEntries(ctx context.Context) ([]*domain.Entry, error) {
	c.logger.Log(ctx, logging.LevelTrace, "listing remote entries")

	body, err := c.Get(ctx, "/api/entries", Target{Operation: "list entries", Entity: "entries"})
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[[]remoteEntry](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	entries, err := TranslateSlice(*ext, translateEntry)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), "invalid entry list: "+err.Error())
	}

	c.logger.DebugContext(ctx, "fetched remote entries", slog.Int("count", len(entries)))

	return entries, nil
}

// GetEntry fetches one entry with GET /api/entries/:id.
func (c *JournalClient) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	idStr := strconv.FormatInt(id, 10)

	body, err := c.Get(ctx, "/api/entries/"+idStr, Target{Operation: "get entry", Entity: "entry", ID: idStr})
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[remoteEntry](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	entry, err := translateEntry(ext)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), "invalid entry: "+err.Error())
	}

	return entry, nil
}

// Export downloads the remote backup document from GET /api/export.
func (c *JournalClient) Export(ctx context.Context) (*domain.Export, error) {
	body, err := c.Get(ctx, "/api/export", Target{Operation: "export", Entity: "export"})
	if err != nil {
		return nil, err
	}

	exp, err := DecodeResponse[domain.Export](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	if exp.Entries == nil {
		exp.Entries = []domain.ExportedEntry{}
	}

	if exp.TotalEntries != len(exp.Entries) {
		c.logger.WarnContext(ctx, "remote export count mismatch",
			slog.Int("total_entries", exp.TotalEntries),
			slog.Int("entries", len(exp.Entries)),
		)

		exp.TotalEntries = len(exp.Entries)
	}

	return exp, nil
}

// Import uploads doc to POST /api/import and returns how many entries the
// remote created. The request is sent once; it is never retried.
func (c *JournalClient) Import(ctx context.Context, doc *domain.Export) (int, error) {
	if doc == nil {
		return 0, domain.NewValidationError("document", "is required")
	}

	body, err := c.Post(ctx, "/api/import", doc, Target{Operation: "import", Entity: "import"})
	if err != nil {
		return 0, err
	}

	res, err := DecodeResponse[remoteImportResult](body)
	if err != nil {
		return 0, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	return res.Imported, nil
}

// Name implements ports.HealthChecker.
func (c *JournalClient) Name() string {
	return c.ServiceName()
}

// Check implements ports.HealthChecker against the remote liveness probe.
func (c *JournalClient) Check(ctx context.Context) error {
	resp, err := c.Client().Get(ctx, "/-/live")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", c.ServiceName(), resp.StatusCode)
	}

	return nil
}

// translateEntry validates a remote entry and converts it. Tag names are
// normalized again; the remote is not trusted to have done it.
func translateEntry(ext *remoteEntry) (*domain.Entry, error) {
	if err := ValidatePositive(ext.ID, "id"); err != nil {
		return nil, err
	}

	if err := ValidateRequired(ext.Title, "title"); err != nil {
		return nil, err
	}

	if ext.CreatedAt.IsZero() {
		return nil, domain.NewValidationError("createdAt", "is required")
	}

	updated := ext.UpdatedAt
	if updated.IsZero() {
		updated = ext.CreatedAt
	}

	tags := make([]domain.Tag, 0, len(ext.Tags))
	seen := make(map[string]struct{}, len(ext.Tags))

	for _, t := range ext.Tags {
		name := domain.NormalizeTagName(t.Name)
		if name == "" {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		tags = append(tags, domain.Tag{ID: t.ID, Name: name})
	}

	return &domain.Entry{
		ID:        ext.ID,
		Title:     ext.Title,
		Content:   ext.Content,
		CreatedAt: ext.CreatedAt,
		UpdatedAt: updated,
		Tags:      tags,
	}, nil
}
