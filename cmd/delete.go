package cmd

import (
	"fmt"

	"github.com/questmaster/questmaster/catalog"
	"github.com/questmaster/questmaster/internal/ui"
	"github.com/questmaster/questmaster/models"
	"github.com/spf13/cobra"
)

// deleteCmd abandons a quest without awarding anything.
var deleteCmd = &cobra.Command{
	Use:     "delete <quest-id>",
	Aliases: []string{"rm", "abandon"},
	Short:   "Delete a quest from the log",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		questID := resolveQuestID(sess.quests, args[0])
		if questID == "" {
			return fmt.Errorf("no unique quest matches %q", args[0])
		}

		remaining, removed := catalog.Delete(sess.quests, questID)
		if removed == nil {
			return fmt.Errorf("quest %q not found", questID)
		}
		sess.quests = remaining
		if removed.Status == models.StatusActive && sess.stats.ActiveTasks > 0 {
			sess.stats.ActiveTasks--
		}

		if err := sess.save(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSubtle.Render(fmt.Sprintf("Abandoned quest: %s", removed.Title)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
