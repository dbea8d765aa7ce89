package cmd

import (
	"testing"

	"github.com/questmaster/questmaster/models"
)

// The generation request carries the typed category and difficulty
// through unchanged, so the fallback provider and the service see the
// same values the flags were validated against.
func TestBuildQuestRequest(t *testing.T) {
	req := buildQuestRequest("learn sourdough baking",
		models.QuestCategory("learning"), models.QuestDifficulty("hard"), "2026-09-30")

	if req.Task != "learn sourdough baking" {
		t.Errorf("Task = %q, want the raw task text", req.Task)
	}
	if req.Category != models.CategoryLearning {
		t.Errorf("Category = %q, want %q", req.Category, models.CategoryLearning)
	}
	if req.Difficulty != models.DifficultyHard {
		t.Errorf("Difficulty = %q, want %q", req.Difficulty, models.DifficultyHard)
	}
	if req.DueDate != "2026-09-30" {
		t.Errorf("DueDate = %q, want %q", req.DueDate, "2026-09-30")
	}
}
