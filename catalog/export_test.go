package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/questmaster/questmaster/models"
)

func exportFixture() []models.Quest {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	a := testQuest("Write the proposal", models.DifficultyMedium, true, false)
	a.Category = models.CategoryWork
	a.CreatedAt = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a.DueDate = &due

	b := testQuest("Learn the violin", models.DifficultyEpic, false, false, false)
	b.Category = models.CategoryLearning
	b.CreatedAt = time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	return []models.Quest{a, b}
}

func TestExportImport_JSONRoundTrip(t *testing.T) {
	quests := exportFixture()

	data, err := Export(quests, FormatJSON)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	back := Import(data, FormatJSON)
	if len(back) != len(quests) {
		t.Fatalf("round trip lost quests: got %d, want %d", len(back), len(quests))
	}
	for i := range quests {
		got, want := back[i], quests[i]
		if got.ID != want.ID || got.Title != want.Title || got.Status != want.Status {
			t.Errorf("quest %d changed: got %+v, want %+v", i, got, want)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("quest %d CreatedAt changed: %v vs %v", i, got.CreatedAt, want.CreatedAt)
		}
		if len(got.Subtasks) != len(want.Subtasks) {
			t.Fatalf("quest %d lost subtasks: %d vs %d", i, len(got.Subtasks), len(want.Subtasks))
		}
		for j := range want.Subtasks {
			if got.Subtasks[j] != want.Subtasks[j] {
				t.Errorf("quest %d subtask %d changed: %+v vs %+v", i, j, got.Subtasks[j], want.Subtasks[j])
			}
		}
	}
}

func TestExportCSV_Header(t *testing.T) {
	data, err := Export(exportFixture(), FormatCSV)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	// The column order and set is a compatibility contract.
	if lines[0] != "Title,Description,Category,Difficulty,Status,Progress,Created,Due Date" {
		t.Errorf("unexpected CSV header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "50%") {
		t.Errorf("row should carry a progress snapshot: %q", lines[1])
	}
	if !strings.Contains(lines[2], "N/A") {
		t.Errorf("missing due date should export as N/A: %q", lines[2])
	}
}

func TestExportImport_CSVIsLossy(t *testing.T) {
	quests := exportFixture()

	data, err := Export(quests, FormatCSV)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	back := Import(data, FormatCSV)
	if len(back) != len(quests) {
		t.Fatalf("expected %d quests back, got %d", len(quests), len(back))
	}
	for i, q := range back {
		if len(q.Subtasks) != 0 {
			t.Errorf("quest %d: CSV import must drop subtasks, got %d", i, len(q.Subtasks))
		}
		if q.Title != quests[i].Title || q.Category != quests[i].Category || q.Difficulty != quests[i].Difficulty {
			t.Errorf("quest %d fields changed: got %+v", i, q)
		}
		if !q.CreatedAt.Equal(quests[i].CreatedAt) {
			t.Errorf("quest %d CreatedAt changed: %v vs %v", i, q.CreatedAt, quests[i].CreatedAt)
		}
	}
	if back[0].DueDate == nil || !back[0].DueDate.Equal(*quests[0].DueDate) {
		t.Errorf("due date column should survive: got %v", back[0].DueDate)
	}
	if back[1].DueDate != nil {
		t.Errorf("N/A due date should import as absent, got %v", back[1].DueDate)
	}
}

func TestImport_DropsInvalidEntries(t *testing.T) {
	payload := `[
		{
			"id": "q-1",
			"title": "Valid quest",
			"description": "Has everything",
			"category": "work",
			"difficulty": "easy",
			"subtasks": [{"id": 0, "text": "Do it", "completed": false}],
			"status": "active"
		},
		{
			"id": "q-2",
			"title": "",
			"description": "No title, no subtasks",
			"category": "work",
			"difficulty": "easy",
			"subtasks": [],
			"status": "active"
		}
	]`

	got := Import([]byte(payload), FormatJSON)
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving quest, got %d", len(got))
	}
	if got[0].ID != "q-1" {
		t.Errorf("wrong survivor: %+v", got[0])
	}
}

func TestImport_MalformedPayload(t *testing.T) {
	if got := Import([]byte("{not json"), FormatJSON); len(got) != 0 {
		t.Errorf("malformed JSON should yield an empty collection, got %d", len(got))
	}
	if got := Import([]byte(`"quoted but wrong shape"`), FormatJSON); len(got) != 0 {
		t.Errorf("wrong-shape JSON should yield an empty collection, got %d", len(got))
	}
	if got := Import(nil, FormatCSV); len(got) != 0 {
		t.Errorf("empty CSV should yield an empty collection, got %d", len(got))
	}
	if got := Import([]byte("data"), "xml"); len(got) != 0 {
		t.Errorf("unsupported format should yield an empty collection, got %d", len(got))
	}
}
