package cmd

import (
	"fmt"

	"github.com/questmaster/questmaster/catalog"
	"github.com/questmaster/questmaster/internal/ui"
	"github.com/questmaster/questmaster/models"
	"github.com/spf13/cobra"
)

// statsCmd prints the player HUD and aggregates over the quest log.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player stats and quest log aggregates",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.HUD(sess.stats))

		agg := catalog.Statistics(sess.quests)
		fmt.Fprintf(out, "\nQuests: %d total, %d active, %d completed", agg.Total, agg.Active, agg.Completed)
		if agg.Overdue > 0 {
			fmt.Fprintf(out, ", %s", ui.StyleError.Render(fmt.Sprintf("%d overdue", agg.Overdue)))
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Average progress (active): %s %d%%\n", ui.ProgressBar(agg.AverageProgress), agg.AverageProgress)
		fmt.Fprintf(out, "XP earned from quests: %d\n", agg.TotalXP)

		fmt.Fprintln(out, "\nBy category:")
		for _, c := range models.Categories() {
			if n := agg.ByCategory[c]; n > 0 {
				fmt.Fprintf(out, "  %-10s %d\n", c, n)
			}
		}
		fmt.Fprintln(out, "By difficulty:")
		for _, d := range models.Difficulties() {
			if n := agg.ByDifficulty[d]; n > 0 {
				fmt.Fprintf(out, "  %-10s %d\n", d, n)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
