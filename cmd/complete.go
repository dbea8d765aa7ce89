package cmd

import (
	"fmt"

	"github.com/questmaster/questmaster/catalog"
	"github.com/questmaster/questmaster/internal/ui"
	"github.com/questmaster/questmaster/progression"
	"github.com/spf13/cobra"
)

// completeCmd marks a quest completed, awards XP and removes it from the log.
var completeCmd = &cobra.Command{
	Use:     "complete <quest-id>",
	Aliases: []string{"done"},
	Short:   "Complete a quest and claim its XP",
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

		res := catalog.Complete(sess.quests, questID)
		if res == nil {
			return fmt.Errorf("quest %q not found", questID)
		}
		title := res.Quest.Title
		difficulty := res.Quest.Difficulty

		newStats, progress := progression.ApplyCompletion(sess.stats, difficulty)
		sess.stats = newStats
		sess.quests, _ = catalog.Delete(sess.quests, questID)

		if err := sess.save(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render(fmt.Sprintf("Quest complete: %s", title)))
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleXP.Render(fmt.Sprintf("+%d XP", progress.XPAwarded)))
		if progress.LeveledUp {
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleXP.Render(fmt.Sprintf("Level up! You are now level %d.", progress.NewLevel)))
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.HUD(sess.stats))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
