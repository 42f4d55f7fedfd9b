package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// neighbours locates id in a newest-first list. Previous is the next older
// entry, next the next newer one.
type neighbours struct {
	entry    *domain.Entry
	previous *domain.Entry
	next     *domain.Entry
}

func findNeighbours(entries []*domain.Entry, id int64) (*neighbours, error) {
	for i, e := range entries {
		if e.ID != id {
			continue
		}

		n := &neighbours{entry: e}
		if i+1 < len(entries) {
			n.previous = entries[i+1]
		}

		if i > 0 {
			n.next = entries[i-1]
		}

		return n, nil
	}

	return nil, domain.NewEntryNotFoundError(id)
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print one entry with its previous and next entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return domain.NewValidationErrorWithValue("id", "must be a positive integer", args[0])
			}

			s, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			source, done, err := s.openEntrySource(cmd.Context(), remote)
			if err != nil {
				return err
			}
			defer done()

			entries, err := source.ListEntries(cmd.Context())
			if err != nil {
				return err
			}

			n, err := findNeighbours(entries, id)
			if err != nil {
				return err
			}

			loc, err := s.cfg.Journal.Location()
			if err != nil {
				return err
			}

			printEntry(cmd.OutOrStdout(), n, loc)

			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "base URL of a journal server to read from")

	return cmd
}

func printEntry(w io.Writer, n *neighbours, loc *time.Location) {
	e := n.entry

	fmt.Fprintf(w, "#%d %s\n", e.ID, e.Title)
	fmt.Fprintf(w, "Created: %s\n", e.CreatedAt.In(loc).Format(time.DateTime))

	if !e.UpdatedAt.Equal(e.CreatedAt) {
		fmt.Fprintf(w, "Updated: %s\n", e.UpdatedAt.In(loc).Format(time.DateTime))
	}

	if names := e.TagNames(); len(names) > 0 {
		fmt.Fprintf(w, "Tags:    %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(w, "\n%s\n\n", e.Content)

	if n.previous != nil {
		fmt.Fprintf(w, "Previous: #%d %s\n", n.previous.ID, n.previous.Title)
	}

	if n.next != nil {
		fmt.Fprintf(w, "Next:     #%d %s\n", n.next.ID, n.next.Title)
	}
}
