package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/questmaster/questmaster/catalog"
	"github.com/questmaster/questmaster/generate"
	"github.com/questmaster/questmaster/internal/ui"
	"github.com/questmaster/questmaster/models"
	"github.com/spf13/cobra"
)

var (
	newCategory   string
	newDifficulty string
	newDue        string
)

const dueDateLayout = "2006-01-02"

// newCmd turns a plain-language task into a quest and adds it to the log.
var newCmd = &cobra.Command{
	Use:     "new <task description>",
	Aliases: []string{"add"},
	Short:   "Create a new quest from a task description",
	Long: `Create a new quest. The task description is expanded into a titled
quest with ordered steps, either by the configured generator service or
by the built-in offline generator.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := strings.Join(args, " ")

		category := models.QuestCategory(newCategory)
		if !validCategory(category) {
			return fmt.Errorf("invalid category %q (valid: %s)", newCategory, joinCategories())
		}
		difficulty := models.QuestDifficulty(newDifficulty)
		if !validDifficulty(difficulty) {
			return fmt.Errorf("invalid difficulty %q (valid: %s)", newDifficulty, joinDifficulties())
		}

		var dueDate *time.Time
		if newDue != "" {
			parsed, err := time.Parse(dueDateLayout, newDue)
			if err != nil {
				return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", newDue)
			}
			dueDate = &parsed
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		config := GetConfig()
		var primary generate.Provider
		if config.Generator.URL != "" {
			primary = generate.NewHTTPProvider(config.Generator.URL,
				time.Duration(config.Generator.RequestTimeoutSeconds)*time.Second)
		}
		gen := generate.NewGenerator(primary)

		req := buildQuestRequest(task, category, difficulty, newDue)
		generated, degraded, err := gen.GenerateQuest(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to generate quest: %w", err)
		}
		if degraded {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.StyleWarning.Render("Generator unreachable, using offline quest generation."))
		}

		quest, err := catalog.Materialize(generated, dueDate)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				for _, p := range vErr.Problems {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.StyleError.Render(p))
				}
				return errors.New("generated quest was invalid")
			}
			return err
		}

		sess.quests = append(sess.quests, quest)
		sess.stats.ActiveTasks++
		if err := sess.save(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render("Quest accepted!"))
		fmt.Fprintln(cmd.OutOrStdout(), ui.QuestCard(quest))
		fmt.Fprintln(cmd.OutOrStdout(), ui.HUD(sess.stats))
		return nil
	},
}

// buildQuestRequest assembles the generation request from the parsed
// command inputs.
func buildQuestRequest(task string, category models.QuestCategory, difficulty models.QuestDifficulty, due string) generate.QuestRequest {
	return generate.QuestRequest{
		Task:       task,
		Category:   category,
		Difficulty: difficulty,
		DueDate:    due,
	}
}

func validCategory(c models.QuestCategory) bool {
	for _, v := range models.Categories() {
		if c == v {
			return true
		}
	}
	return false
}

func validDifficulty(d models.QuestDifficulty) bool {
	for _, v := range models.Difficulties() {
		if d == v {
			return true
		}
	}
	return false
}

func joinCategories() string {
	var names []string
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func joinDifficulties() string {
	var names []string
	for _, d := range models.Difficulties() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newCategory, "category", string(models.CategoryPersonal), "quest category ("+joinCategories()+")")
	newCmd.Flags().StringVar(&newDifficulty, "difficulty", string(models.DifficultyMedium), "quest difficulty ("+joinDifficulties()+")")
	newCmd.Flags().StringVar(&newDue, "due", "", "due date in YYYY-MM-DD form")
}
