package models

import "encoding/json"

// GeneratedQuest is the payload shape produced by the quest-generation
// service (and by the local fallback generator, so downstream code never
// special-cases the degraded path).
type GeneratedQuest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    QuestCategory   `json:"category"`
	Difficulty  QuestDifficulty `json:"difficulty"`
	DueDate     string          `json:"dueDate,omitempty"`
	Subtasks    []SubtaskInput  `json:"subtasks"`
}

// SubtaskInput is a subtask as it arrives from the generation service,
// which may send either a bare string or a structured object. This is
// the only place the two shapes exist; materialization converts both
// into the canonical Subtask.
type SubtaskInput struct {
	ID        *int
	Text      string
	Completed bool
}

// UnmarshalJSON accepts both the bare-string and the object form.
func (s *SubtaskInput) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = SubtaskInput{Text: text}
		return nil
	}
	var obj struct {
		ID        *int   `json:"id"`
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*s = SubtaskInput{ID: obj.ID, Text: obj.Text, Completed: obj.Completed}
	return nil
}

// MarshalJSON always emits the object form.
func (s SubtaskInput) MarshalJSON() ([]byte, error) {
	obj := struct {
		ID        *int   `json:"id"`
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
	}{s.ID, s.Text, s.Completed}
	return json.Marshal(obj)
}
