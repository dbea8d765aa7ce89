// Package catalog implements the quest lifecycle: materialization of
// generated payloads, subtask toggling, completion, deletion, and the
// progress values derived from them. The catalog holds no state of its
// own; every operation works on a quest collection owned by the caller.
package catalog

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/questmaster/questmaster/models"
)

// Materialize converts a generated-quest payload into a tracked Quest:
// subtasks are normalized into their canonical shape (a bare string
// becomes an uncompleted subtask with its positional ID; the object form
// keeps its own ID and completion flag), a fresh ID is assigned, and the
// quest starts active. The due date comes from the original form input,
// not the generation response. Returns *models.ValidationError when the
// result would not pass ValidateQuest.
func Materialize(gen models.GeneratedQuest, dueDate *time.Time) (models.Quest, error) {
	subtasks := make([]models.Subtask, 0, len(gen.Subtasks))
	for i, in := range gen.Subtasks {
		st := models.Subtask{ID: i, Text: in.Text, Completed: in.Completed}
		if in.ID != nil {
			st.ID = *in.ID
		}
		subtasks = append(subtasks, st)
	}

	q := models.Quest{
		ID:          uuid.New().String(),
		Title:       gen.Title,
		Description: gen.Description,
		Category:    gen.Category,
		Difficulty:  gen.Difficulty,
		DueDate:     dueDate,
		Subtasks:    subtasks,
		CreatedAt:   time.Now(),
		Status:      models.StatusActive,
	}

	if problems := models.ValidateQuest(q); len(problems) > 0 {
		return models.Quest{}, &models.ValidationError{Problems: problems}
	}
	return q, nil
}

// ToggleResult reports the outcome of a subtask toggle. Quest is nil
// when the quest or subtask was not found.
type ToggleResult struct {
	Quest *models.Quest
	// JustCompleted is true when the toggle checked the last remaining
	// subtask of a still-active quest. The catalog does not transition
	// the quest itself; completing is a separate, explicit step so the
	// caller can confirm, delay, or batch it.
	JustCompleted bool
}

// ToggleSubtask flips the completion flag of one subtask in place.
// Unknown quest or subtask IDs are silent no-ops, since the caller's UI
// may race ahead of the collection.
func ToggleSubtask(quests []models.Quest, questID string, subtaskID int) ToggleResult {
	q := findQuest(quests, questID)
	if q == nil {
		return ToggleResult{}
	}

	var st *models.Subtask
	for i := range q.Subtasks {
		if q.Subtasks[i].ID == subtaskID {
			st = &q.Subtasks[i]
			break
		}
	}
	if st == nil {
		return ToggleResult{}
	}

	st.Completed = !st.Completed

	all := true
	for _, s := range q.Subtasks {
		if !s.Completed {
			all = false
			break
		}
	}
	return ToggleResult{Quest: q, JustCompleted: all && q.Status == models.StatusActive}
}

// CompletionResult reports a quest completion and the XP it earned.
type CompletionResult struct {
	Quest     *models.Quest
	XPAwarded int
}

// Complete marks a quest completed in place and reports its XP reward.
// It only flips status: applying the reward to player stats, adjusting
// the active/completed counters, and removing the quest from the working
// set are the caller's job (completed quests are not retained in the
// primary collection). Returns nil when the quest is not found.
func Complete(quests []models.Quest, questID string) *CompletionResult {
	q := findQuest(quests, questID)
	if q == nil {
		return nil
	}

	q.Status = models.StatusCompleted
	if q.CompletedAt == nil {
		now := time.Now()
		q.CompletedAt = &now
	}
	return &CompletionResult{Quest: q, XPAwarded: models.XPReward(q.Difficulty)}
}

// Delete removes a quest from the collection regardless of its status,
// preserving the order of the remaining quests. The removed quest is
// returned so the caller can adjust its counters (ActiveTasks only
// decrements when the removed quest was still active); nil when absent.
func Delete(quests []models.Quest, questID string) (remaining []models.Quest, removed *models.Quest) {
	for i := range quests {
		if quests[i].ID == questID {
			q := quests[i]
			return append(quests[:i], quests[i+1:]...), &q
		}
	}
	return quests, nil
}

// Progress returns the quest's completion percentage, rounded. A quest
// with no subtasks reports 0, though validation forbids that shape.
func Progress(q models.Quest) int {
	if len(q.Subtasks) == 0 {
		return 0
	}
	completed := 0
	for _, st := range q.Subtasks {
		if st.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(q.Subtasks)) * 100))
}

// OverallProgress returns the rounded mean progress across the
// collection. An empty collection reports 100: nothing outstanding.
func OverallProgress(quests []models.Quest) int {
	if len(quests) == 0 {
		return 100
	}
	total := 0
	for _, q := range quests {
		total += Progress(q)
	}
	return int(math.Round(float64(total) / float64(len(quests))))
}

func findQuest(quests []models.Quest, questID string) *models.Quest {
	for i := range quests {
		if quests[i].ID == questID {
			return &quests[i]
		}
	}
	return nil
}
