package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/export"
)

// Export formats.
const (
	formatCSV  = "csv"
	formatJSON = "json"
)

// newExportCmd creates the "export" subcommand: writes the calculation
// history as CSV or JSON to a file or stdout.
func newExportCmd() *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export calculation history as CSV or JSON",
		Example: `  carbontrack export --format csv --out history.csv
  carbontrack export --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatCSV && format != formatJSON {
				return fmt.Errorf("unsupported format %q, expected %s or %s", format, formatCSV, formatJSON)
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			calcs := st.Calculations(0)

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, createErr := os.Create(outPath)
				if createErr != nil {
					return fmt.Errorf("creating export file %s: %w", outPath, createErr)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if format == formatCSV {
				err = export.WriteCSV(w, calcs)
			} else {
				err = export.WriteJSON(w, calcs)
			}
			if err != nil {
				return err
			}

			if outPath != "" {
				cmd.Printf("Exported %d calculation(s) to %s\n", len(calcs), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatCSV, "export format: csv or json")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	return cmd
}
