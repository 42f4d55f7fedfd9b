package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/learning-journal/internal/app"
	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// backupTarget is the side of a backup: a remote server or the local store.
type backupTarget interface {
	Export(ctx context.Context) (*domain.Export, error)
	Import(ctx context.Context, doc *domain.Export) (int, error)
}

// openBackupTarget returns the remote journal when remote (or remote.base_url)
// is set, otherwise a JournalService over the local store.
func (s *session) openBackupTarget(ctx context.Context, remote string) (backupTarget, func(), error) {
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

	journal := app.NewJournalService(app.JournalServiceConfig{
		Entries: store.Entries(),
		Tags:    store.Tags(),
		Logger:  s.logger,
	})

	return journal, func() { s.closeStore(store) }, nil
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var remote, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of every entry",
		Long: "Write a JSON backup of every entry to stdout, or to --output. With\n" +
			"--output set to a directory the file is named learning-journal-backup-YYYY-MM-DD.json.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			target, done, err := s.openBackupTarget(cmd.Context(), remote)
			if err != nil {
				return err
			}
			defer done()

			doc, err := target.Export(cmd.Context())
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return writeExport(cmd.OutOrStdout(), doc)
			}

			loc, err := s.cfg.Journal.Location()
			if err != nil {
				return err
			}

			path, err := exportPath(output, doc, loc)
			if err != nil {
				return err
			}

			if err := writeExportFile(path, doc); err != nil {
				return err
			}

			s.logger.Info("export written",
				slog.String("path", path),
				slog.Int("entries", doc.TotalEntries),
			)
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d entries to %s\n", doc.TotalEntries, path)

			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "base URL of a journal server to export from")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file or directory to write (default stdout)")

	return cmd
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Recreate the entries of a JSON backup",
		Long: "Recreate every entry of an export document (\"-\" reads stdin). Entries\n" +
			"get fresh ids and timestamps; the import is all or nothing.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readExport(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			s, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			target, done, err := s.openBackupTarget(cmd.Context(), remote)
			if err != nil {
				return err
			}
			defer done()

			n, err := target.Import(cmd.Context(), doc)
			if step, ok := app.FailedStep(err); ok {
				return fmt.Errorf("import stopped at %s step: %w", step, err)
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries\n", n)

			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "base URL of a journal server to import into")

	return cmd
}

func writeExport(w io.Writer, doc *domain.Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}

	return nil
}

func writeExportFile(path string, doc *domain.Export) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing export file: %w", cerr)
		}
	}()

	return writeExport(f, doc)
}

// exportPath appends the default backup file name, dated in loc, when
// output is a directory.
func exportPath(output string, doc *domain.Export, loc *time.Location) (string, error) {
	info, err := os.Stat(output)
	if err != nil {
		if os.IsNotExist(err) {
			return output, nil
		}

		return "", fmt.Errorf("checking output path: %w", err)
	}

	if info.IsDir() {
		return filepath.Join(output, domain.ExportFileName(doc.ExportDate, loc)), nil
	}

	return output, nil
}

func readExport(stdin io.Reader, path string) (*domain.Export, error) {
	r := stdin

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening backup: %w", err)
		}
		defer f.Close()

		r = f
	}

	var doc domain.Export
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, domain.NewValidationError("document", fmt.Sprintf("not a valid export: %v", err))
	}

	return &doc, nil
}
