package cmd

import (
	"fmt"
	"strconv"

	"github.com/questmaster/questmaster/catalog"
	"github.com/questmaster/questmaster/internal/ui"
	"github.com/spf13/cobra"
)

// checkCmd toggles a single step of a quest.
var checkCmd = &cobra.Command{
	Use:     "check <quest-id> <step-number>",
	Aliases: []string{"toggle"},
	Short:   "Toggle a quest step done or undone",
	Long: `Toggle one step of a quest. Checking the last remaining step does not
complete the quest by itself; run 'questmaster complete' to claim the
reward once every step is done.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stepID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("step number must be an integer, got %q", args[1])
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		questID := resolveQuestID(sess.quests, args[0])
		if questID == "" {
			return fmt.Errorf("no unique quest matches %q", args[0])
		}

		res := catalog.ToggleSubtask(sess.quests, questID, stepID)
		if res.Quest == nil {
			return fmt.Errorf("quest %q has no step %d", questID, stepID)
		}
		if err := sess.save(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.QuestCard(*res.Quest))
		if res.JustCompleted {
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleXP.Render(
				fmt.Sprintf("All steps done! Run 'questmaster complete %s' to claim your XP.", args[0])))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
