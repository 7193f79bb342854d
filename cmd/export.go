package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/KharpukhaevV/folio/github"
	"github.com/KharpukhaevV/folio/models"
	"github.com/KharpukhaevV/folio/render"
	"github.com/KharpukhaevV/folio/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the project cards as HTML",
	Long: `Fetches the repositories once and writes the HTML card grid: one
column per non-fork repository, or an info alert when there is nothing to show.
On a fetch failure the warning banner is written and the command fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher, err := github.NewFetcher(cfg.GitHub, logger)
		if err != nil {
			return err
		}

		if exportOut == "" {
			return runExport(cmd.Context(), fetcher, cmd.OutOrStdout())
		}

		if err := exportToFile(cmd.Context(), fetcher, exportOut); err != nil {
			return err
		}
		logger.Info("exported project cards", zap.String("path", exportOut))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (stdout when empty)")
	rootCmd.AddCommand(exportCmd)
}

// exportToFile пишет разметку в файл; ошибка закрытия тоже возвращается
func exportToFile(ctx context.Context, fetcher repoFetcher, path string) error {
	if err := utils.EnsureDir(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, utils.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := runExport(ctx, fetcher, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// repoFetcher источник списка репозиториев
type repoFetcher interface {
	Fetch(ctx context.Context) ([]models.Repository, error)
}

// runExport загружает репозитории и пишет разметку сетки карточек
func runExport(ctx context.Context, fetcher repoFetcher, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	repos, err := fetcher.Fetch(ctx)
	if err != nil {
		if _, werr := io.WriteString(w, render.ErrorHTML(err)); werr != nil {
			return werr
		}
		return fmt.Errorf("fetching repositories: %w", err)
	}

	if _, err := io.WriteString(w, render.GridHTML(github.FilterForks(repos))); err != nil {
		return fmt.Errorf("writing cards: %w", err)
	}
	return nil
}
