package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/questmaster/questmaster/models"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

const (
	csvDateLayout = "2006-01-02"
	csvNoDueDate  = "N/A"
)

// csvHeader is a compatibility contract for any tool reading exported
// files; column order and set must not change.
var csvHeader = []string{"Title", "Description", "Category", "Difficulty", "Status", "Progress", "Created", "Due Date"}

// Export encodes a quest collection. JSON round-trips the full entity
// graph losslessly. CSV is lossy by design: it carries a progress
// snapshot instead of subtasks.
func Export(quests []models.Quest, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(quests, "", "  ")
	case FormatCSV:
		return exportCSV(quests)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

func exportCSV(quests []models.Quest) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, q := range quests {
		due := csvNoDueDate
		if q.DueDate != nil {
			due = q.DueDate.Format(csvDateLayout)
		}
		row := []string{
			q.Title,
			q.Description,
			string(q.Category),
			string(q.Difficulty),
			string(q.Status),
			fmt.Sprintf("%d%%", Progress(q)),
			q.CreatedAt.Format(csvDateLayout),
			due,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// Import decodes a quest collection, validating every candidate and
// silently dropping invalid entries. Malformed payloads yield an empty
// collection rather than an error; a failed import is never fatal to the
// caller. CSV-imported quests always come back with empty subtask lists
// (the format cannot carry them), so the subtask-minimum rule is waived
// for CSV candidates.
func Import(data []byte, format string) []models.Quest {
	var candidates []models.Quest
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &candidates); err != nil {
			return []models.Quest{}
		}
	case FormatCSV:
		candidates = importCSV(data)
	default:
		return []models.Quest{}
	}

	valid := make([]models.Quest, 0, len(candidates))
	for _, q := range candidates {
		problems := models.ValidateQuest(q)
		if format == FormatCSV {
			problems = dropMessage(problems, models.MsgSubtasksRequired)
		}
		if len(problems) == 0 {
			valid = append(valid, q)
		}
	}
	return valid
}

func importCSV(data []byte) []models.Quest {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		return nil
	}

	var quests []models.Quest
	for _, row := range records[1:] { // skip header
		if len(row) != len(csvHeader) {
			continue
		}
		q := models.Quest{
			ID:          uuid.New().String(),
			Title:       row[0],
			Description: row[1],
			Category:    models.QuestCategory(row[2]),
			Difficulty:  models.QuestDifficulty(row[3]),
			Status:      models.QuestStatus(row[4]),
			Subtasks:    []models.Subtask{},
			CreatedAt:   time.Now(),
		}
		if created, err := time.Parse(csvDateLayout, row[6]); err == nil {
			q.CreatedAt = created
		}
		if row[7] != csvNoDueDate {
			if due, err := time.Parse(csvDateLayout, row[7]); err == nil {
				q.DueDate = &due
			}
		}
		quests = append(quests, q)
	}
	return quests
}

func dropMessage(msgs []string, msg string) []string {
	out := msgs[:0]
	for _, m := range msgs {
		if m != msg {
			out = append(out, m)
		}
	}
	return out
}
