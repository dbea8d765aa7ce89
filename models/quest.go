package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// QuestCategory represents the area of life a quest belongs to.
type QuestCategory string

const (
	CategoryWork     QuestCategory = "work"
	CategoryPersonal QuestCategory = "personal"
	CategoryLearning QuestCategory = "learning"
	CategoryHealth   QuestCategory = "health"
	CategoryCreative QuestCategory = "creative"
	CategoryOther    QuestCategory = "other"
)

// Categories returns every valid quest category.
func Categories() []QuestCategory {
	return []QuestCategory{
		CategoryWork, CategoryPersonal, CategoryLearning,
		CategoryHealth, CategoryCreative, CategoryOther,
	}
}

// QuestDifficulty represents how demanding a quest is, which in turn
// determines its XP reward.
type QuestDifficulty string

const (
	DifficultyEasy   QuestDifficulty = "easy"
	DifficultyMedium QuestDifficulty = "medium"
	DifficultyHard   QuestDifficulty = "hard"
	DifficultyEpic   QuestDifficulty = "epic"
)

// Difficulties returns every valid quest difficulty.
func Difficulties() []QuestDifficulty {
	return []QuestDifficulty{
		DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyEpic,
	}
}

// QuestStatus represents the lifecycle state of a quest. Deleted quests
// are removed from the collection entirely, so there is no tombstone state.
type QuestStatus string

const (
	StatusActive    QuestStatus = "active"
	StatusCompleted QuestStatus = "completed"
)

// XPReward returns the experience awarded for completing a quest of the
// given difficulty. Unrecognized difficulties fall back to the easy
// reward, matching how rewards were always computed, even though such a
// difficulty still fails validation.
func XPReward(d QuestDifficulty) int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 25
	case DifficultyHard:
		return 50
	case DifficultyEpic:
		return 100
	default:
		return 10
	}
}

// Subtask is one checkbox-level step within a quest. Its identity is
// assigned at materialization and never changes; toggling only flips
// Completed.
type Subtask struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Quest is a tracked, user-accepted unit of work with a structured
// breakdown into subtasks.
type Quest struct {
	ID          string          `json:"id"`
	Title       string          `json:"title" validate:"notblank"`
	Description string          `json:"description" validate:"notblank"`
	Category    QuestCategory   `json:"category" validate:"oneof=work personal learning health creative other"`
	Difficulty  QuestDifficulty `json:"difficulty" validate:"oneof=easy medium hard epic"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Subtasks    []Subtask       `json:"subtasks" validate:"min=1"`
	CreatedAt   time.Time       `json:"createdAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	Status      QuestStatus     `json:"status"`
}

// User-facing validation messages, one per field rule.
const (
	MsgTitleRequired       = "Quest title is required"
	MsgDescriptionRequired = "Quest description is required"
	MsgInvalidCategory     = "Invalid quest category"
	MsgInvalidDifficulty   = "Invalid quest difficulty"
	MsgSubtasksRequired    = "Quest must have at least one subtask"
)

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// ValidateQuest checks a quest against the field rules and returns every
// violation as a user-facing message. An empty result means the quest is
// valid. It never returns an error: validation problems are
// caller-correctable, not faults.
func ValidateQuest(q Quest) []string {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	var msgs []string
	for _, e := range verrs {
		switch e.StructField() {
		case "Title":
			msgs = append(msgs, MsgTitleRequired)
		case "Description":
			msgs = append(msgs, MsgDescriptionRequired)
		case "Category":
			msgs = append(msgs, MsgInvalidCategory)
		case "Difficulty":
			msgs = append(msgs, MsgInvalidDifficulty)
		case "Subtasks":
			msgs = append(msgs, MsgSubtasksRequired)
		}
	}
	return msgs
}

// ValidationError carries the full list of field-level problems found on
// a quest. It is never fatal; callers surface the messages and let the
// user correct the input.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid quest: " + strings.Join(e.Problems, "; ")
}
