package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/learning-journal/internal/adapters/http/dto"
	"github.com/jsamuelsen/learning-journal/internal/app"
	"github.com/jsamuelsen/learning-journal/internal/domain"
	"github.com/jsamuelsen/learning-journal/internal/ports"
)

type statsOptions struct {
	remote string
	date   string
	asJSON bool
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	so := &statsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print current and longest streaks",
		Long: "Print streak statistics computed from the local database, or from a\n" +
			"remote journal server's entries when --remote is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, opts, so)
		},
	}

	cmd.Flags().StringVar(&so.remote, "remote", "", "base URL of a journal server to read from")
	cmd.Flags().StringVar(&so.date, "date", "", "day whose entries are listed (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&so.asJSON, "json", false, "print the same document as GET /api/stats")

	return cmd
}

func runStats(cmd *cobra.Command, opts *rootOptions, so *statsOptions) error {
	var selected *domain.Day

	if so.date != "" {
		day, err := domain.ParseDay(so.date)
		if err != nil {
			return err
		}

		selected = &day
	}

	s, err := bootstrap(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	loc, err := s.cfg.Journal.Location()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	source, done, err := s.openEntrySource(ctx, so.remote)
	if err != nil {
		return err
	}
	defer done()

	stats, err := app.NewStatsService(app.StatsServiceConfig{
		Source:   source,
		Location: loc,
		Logger:   s.logger,
	}).Stats(ctx, selected)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if so.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(dto.ToStatsResponse(stats))
	}

	printStats(out, stats)

	return nil
}

func printStats(w io.Writer, stats *app.Stats) {
	fmt.Fprintf(w, "Current streak:  %d day(s)\n", stats.CurrentStreak)
	fmt.Fprintf(w, "Longest streak:  %d day(s)\n", stats.LongestStreak)
	fmt.Fprintf(w, "Total entries:   %d\n", stats.TotalEntries)
	fmt.Fprintf(w, "Days active:     %d\n", stats.TotalDaysActive)
	fmt.Fprintf(w, "\nEntries on %s:\n", stats.SelectedDate)

	if len(stats.SelectedEntries) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}

	for _, e := range stats.SelectedEntries {
		fmt.Fprintf(w, "  #%d %s", e.ID, e.Title)

		if names := e.TagNames(); len(names) > 0 {
			fmt.Fprintf(w, " [%s]", strings.Join(names, ", "))
		}

		fmt.Fprintln(w)
	}
}

// openEntrySource returns the remote journal when remote (or remote.base_url)
// is set, otherwise the local store. done releases the store.
func (s *session) openEntrySource(ctx context.Context, remote string) (ports.EntrySource, func(), error) {
	if remote != "" || s.cfg.Remote.BaseURL != "" {
		client, err := s.remoteJournal(remote)
		if err != nil {
			return nil, nil, err
		}

		return client, func() {}, nil
	}

	store, err := s.openStore(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	return store.Entries(), func() { s.closeStore(store) }, nil
}
