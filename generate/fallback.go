package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/questmaster/questmaster/models"
)

// FallbackProvider generates quests locally with keyword-matched
// templates. It produces the same payload shape as the service, so
// nothing downstream special-cases the degraded path, and it never
// fails.
type FallbackProvider struct{}

// NewFallbackProvider creates the deterministic local generator.
func NewFallbackProvider() *FallbackProvider { return &FallbackProvider{} }

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
}

// Base subtask templates keyed on verbs in the task description.
var subtaskTemplates = []struct {
	keywords []string
	steps    []string
}{
	{
		keywords: []string{"build", "create"},
		steps: []string{
			"Plan and research the requirements",
			"Set up the development environment",
			"Create the initial structure",
			"Implement core functionality",
			"Test and debug the implementation",
			"Finalize and deploy",
		},
	},
	{
		keywords: []string{"learn", "study"},
		steps: []string{
			"Research available resources and materials",
			"Create a study schedule",
			"Set up a dedicated learning environment",
			"Take notes and practice regularly",
			"Test your knowledge with exercises",
			"Review and reinforce learning",
		},
	},
	{
		keywords: []string{"plan", "organize"},
		steps: []string{
			"Define the scope and objectives",
			"Break down into smaller components",
			"Set realistic timelines and milestones",
			"Assign responsibilities if needed",
			"Create a detailed action plan",
			"Review and adjust as needed",
		},
	},
	{
		keywords: []string{"present", "presentation"},
		steps: []string{
			"Research and gather information",
			"Create an outline and structure",
			"Design visual aids and slides",
			"Practice the presentation multiple times",
			"Prepare for questions and feedback",
			"Deliver the final presentation",
		},
	},
}

var genericSteps = []string{
	"Research and gather information",
	"Plan your approach",
	"Take the first steps",
	"Continue making progress",
	"Review and refine your work",
	"Complete and finalize",
}

// Extra steps mixed in for harder difficulties, taken round-robin.
var additionalSteps = []string{
	"Document your progress",
	"Seek feedback from others",
	"Review and optimize your approach",
	"Prepare for potential obstacles",
	"Celebrate small victories along the way",
	"Reflect on lessons learned",
	"Update your plan based on new information",
	"Stay motivated and focused",
}

// GenerateQuest builds a quest payload from the request alone.
func (p *FallbackProvider) GenerateQuest(_ context.Context, req QuestRequest) (models.GeneratedQuest, error) {
	return models.GeneratedQuest{
		Title:       generateTitle(req.Task),
		Description: fmt.Sprintf("Complete the task: %s", req.Task),
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		DueDate:     req.DueDate,
		Subtasks:    generateSubtasks(req.Task, req.Difficulty),
	}, nil
}

func generateTitle(task string) string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(task)) {
		if !stopWords[word] {
			keywords = append(keywords, word)
		}
	}

	if len(keywords) == 0 {
		if runes := []rune(task); len(runes) > 50 {
			return fmt.Sprintf("Quest: %s...", string(runes[:50]))
		}
		return fmt.Sprintf("Quest: %s", task)
	}

	main := strings.ToUpper(keywords[0][:1]) + keywords[0][1:]
	rest := keywords[1:]
	if len(rest) > 2 {
		rest = rest[:2]
	}
	return strings.TrimSpace(fmt.Sprintf("Quest: %s %s", main, strings.Join(rest, " ")))
}

func generateSubtasks(task string, difficulty models.QuestDifficulty) []models.SubtaskInput {
	steps := baseSteps(task)
	for i := 0; i < difficultyBonus(difficulty); i++ {
		steps = append(steps, additionalSteps[i%len(additionalSteps)])
	}

	subtasks := make([]models.SubtaskInput, len(steps))
	for i, text := range steps {
		subtasks[i] = models.SubtaskInput{Text: text}
	}
	return subtasks
}

func baseSteps(task string) []string {
	lower := strings.ToLower(task)
	for _, tmpl := range subtaskTemplates {
		for _, kw := range tmpl.keywords {
			if strings.Contains(lower, kw) {
				return append([]string(nil), tmpl.steps...)
			}
		}
	}
	return append([]string(nil), genericSteps...)
}

// difficultyBonus is how many extra steps a difficulty adds on top of
// the base template.
func difficultyBonus(difficulty models.QuestDifficulty) int {
	switch difficulty {
	case models.DifficultyMedium:
		return 1
	case models.DifficultyHard:
		return 2
	case models.DifficultyEpic:
		return 3
	default:
		return 0
	}
}
