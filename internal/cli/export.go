package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/repository"
	"github.com/Hanikakadiya/Master-Quiz/internal/export"
	pgRepo "github.com/Hanikakadiya/Master-Quiz/internal/repository/postgres"
)

// NewExportCmd выгружает таблицу лидеров в файл
func NewExportCmd(configPath *string) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full leaderboard to CSV or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := export.ParseFormat(format)
			if out == "" {
				out = "leaderboard." + string(f)
			}

			_, db, err := openDB(*configPath)
			if err != nil {
				return err
			}
			defer closeDB(db)

			file, err := os.Create(out)
			if err != nil {
				return err
			}
			n, err := ExportResults(cmd.Context(), pgRepo.NewResultRepo(db), f, file)
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d results to %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default leaderboard.<format>)")
	return cmd
}

// ExportResults пишет все результаты в порядке таблицы лидеров и возвращает их количество
func ExportResults(ctx context.Context, results repository.ResultRepository, f export.Format, w io.Writer) (int, error) {
	ranked, err := results.ListRanked(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load results: %w", err)
	}
	if err := export.Write(w, f, ranked); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", f, err)
	}
	return len(ranked), nil
}
