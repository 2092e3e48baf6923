package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wichai/compass/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate assessment statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.Submissions().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load submissions: %w", err)
		}

		agg := stats.Aggregate(records, time.Now())

		fmt.Printf("Total responses:    %d\n", agg.TotalResponses)
		fmt.Printf("This month:         %d\n", agg.MonthlyResponses)
		fmt.Printf("Average score:      %.1f%%\n", agg.AverageScore)
		fmt.Println()
		fmt.Println("Average by dimension")
		fmt.Printf("  Governance:       %.1f%%\n", agg.AverageScores.Governance)
		fmt.Printf("  Legacy:           %.1f%%\n", agg.AverageScores.Legacy)
		fmt.Printf("  Relationships:    %.1f%%\n", agg.AverageScores.Relationships)
		fmt.Printf("  Strategy:         %.1f%%\n", agg.AverageScores.Strategy)

		if len(agg.RoleDistribution) > 0 {
			fmt.Println()
			fmt.Println("Responses by role")
			for role, count := range agg.RoleDistribution {
				fmt.Printf("  %-22s %d\n", role, count)
			}
		}
		return nil
	},
}
