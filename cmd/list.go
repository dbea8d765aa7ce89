package cmd

import (
	"fmt"
	"time"

	"github.com/questmaster/questmaster/catalog"
	"github.com/questmaster/questmaster/internal/ui"
	"github.com/spf13/cobra"
)

var (
	listCategory   string
	listDifficulty string
	listStatus     string
	listSearch     string
	listFrom       string
	listTo         string
)

// listCmd shows the quest log, optionally narrowed by filters.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List quests in the quest log",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters := catalog.Filters{
			Category:   listCategory,
			Difficulty: listDifficulty,
			Status:     listStatus,
			Search:     listSearch,
		}
		if listFrom != "" {
			from, err := time.Parse(dueDateLayout, listFrom)
			if err != nil {
				return fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", listFrom)
			}
			filters.StartDate = &from
		}
		if listTo != "" {
			to, err := time.Parse(dueDateLayout, listTo)
			if err != nil {
				return fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", listTo)
			}
			filters.EndDate = &to
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		visible := catalog.Filter(sess.quests, filters)
		if len(visible) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSubtle.Render("No quests found. Start one with 'questmaster new'."))
			return nil
		}

		for _, q := range visible {
			fmt.Fprintln(cmd.OutOrStdout(), ui.QuestLine(q))
		}
		overall := catalog.OverallProgress(visible)
		fmt.Fprintf(cmd.OutOrStdout(), "\nOverall progress: %s %d%%\n", ui.ProgressBar(overall), overall)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listCategory, "category", catalog.FilterAll, "filter by category")
	listCmd.Flags().StringVar(&listDifficulty, "difficulty", catalog.FilterAll, "filter by difficulty")
	listCmd.Flags().StringVar(&listStatus, "status", catalog.FilterAll, "filter by status")
	listCmd.Flags().StringVar(&listSearch, "search", "", "match against title and description")
	listCmd.Flags().StringVar(&listFrom, "from", "", "only quests created on or after this date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "only quests created on or before this date (YYYY-MM-DD)")
}
