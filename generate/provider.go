// Package generate turns a natural-language task into a structured
// quest. The primary provider talks to the quest-generation service
// over its JSON contract; a deterministic local provider covers for it
// when the service is unreachable, so quest creation never hard-fails.
package generate

import (
	"context"
	"fmt"

	"github.com/questmaster/questmaster/models"
)

// QuestRequest is the request body of the generation contract.
type QuestRequest struct {
	Task       string                 `json:"task"`
	Category   models.QuestCategory   `json:"category"`
	Difficulty models.QuestDifficulty `json:"difficulty"`
	DueDate    string                 `json:"dueDate,omitempty"`
}

// Provider produces a generated-quest payload for a task request.
type Provider interface {
	GenerateQuest(ctx context.Context, req QuestRequest) (models.GeneratedQuest, error)
}

// GenerationError is a transport failure or non-success response from
// the generation service. Callers recover from it locally via fallback
// generation; it is surfaced to the user only as a soft notice.
type GenerationError struct {
	StatusCode int // 0 for transport failures
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("quest generation failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("quest generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
