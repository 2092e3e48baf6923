package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wichai/compass/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all responses as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		includeNames, _ := cmd.Flags().GetBool("include-names")
		outPath, _ := cmd.Flags().GetString("out")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.Submissions().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load submissions: %w", err)
		}

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			out = f
		}

		if err := export.WriteCSV(out, records, includeNames); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		if outPath != "" {
			fmt.Fprintf(os.Stderr, "Wrote %d responses to %s\n", len(records), outPath)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("include-names", false, "Include the respondent name column")
	exportCmd.Flags().String("out", "", "Write to a file instead of stdout")
}
