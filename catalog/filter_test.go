package catalog

import (
	"testing"
	"time"

	"github.com/questmaster/questmaster/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestFilter_IdentityFilterIsANoOp(t *testing.T) {
	quests := []models.Quest{
		testQuest("Alpha", models.DifficultyEasy, false),
		testQuest("Beta", models.DifficultyHard, true),
		testQuest("Gamma", models.DifficultyEpic, false),
	}

	got := Filter(quests, Filters{Category: FilterAll, Difficulty: FilterAll, Status: FilterAll})
	if len(got) != len(quests) {
		t.Fatalf("expected %d quests, got %d", len(quests), len(got))
	}
	for i := range got {
		if got[i].ID != quests[i].ID {
			t.Errorf("index %d: order changed, got %q want %q", i, got[i].Title, quests[i].Title)
		}
	}
}

func TestFilter_Predicates(t *testing.T) {
	work := testQuest("Ship the report", models.DifficultyMedium, false)
	work.Category = models.CategoryWork

	health := testQuest("Morning run", models.DifficultyEasy, true)
	health.Category = models.CategoryHealth

	done := testQuest("Read the manual", models.DifficultyHard, true)
	done.Category = models.CategoryLearning
	done.Status = models.StatusCompleted

	quests := []models.Quest{work, health, done}

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"by category", Filters{Category: "health"}, []string{"Morning run"}},
		{"by difficulty", Filters{Difficulty: "medium"}, []string{"Ship the report"}},
		{"by status", Filters{Status: "completed"}, []string{"Read the manual"}},
		{"search title", Filters{Search: "REPORT"}, []string{"Ship the report"}},
		{"search difficulty", Filters{Search: "hard"}, []string{"Read the manual"}},
		{"combined AND", Filters{Category: "health", Status: "completed"}, nil},
		{"no predicates", Filters{}, []string{"Ship the report", "Morning run", "Read the manual"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(quests, tt.filters)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d quests, want %d", len(got), len(tt.want))
			}
			for i, title := range tt.want {
				if got[i].Title != title {
					t.Errorf("index %d: got %q, want %q", i, got[i].Title, title)
				}
			}
		})
	}
}

func TestFilter_DateRange(t *testing.T) {
	old := testQuest("Old", models.DifficultyEasy, false)
	old.CreatedAt = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	recent := testQuest("Recent", models.DifficultyEasy, false)
	recent.CreatedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	undated := testQuest("Undated", models.DifficultyEasy, false)
	undated.CreatedAt = time.Time{}

	quests := []models.Quest{old, recent, undated}

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	got := Filter(quests, Filters{StartDate: &from})
	if len(got) != 2 || got[0].Title != "Recent" || got[1].Title != "Undated" {
		t.Errorf("start-date filter: got %d quests, want Recent and Undated", len(got))
	}

	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	got = Filter(quests, Filters{EndDate: &to})
	if len(got) != 2 || got[0].Title != "Old" || got[1].Title != "Undated" {
		t.Errorf("end-date filter: got %d quests, want Old and Undated", len(got))
	}

	// A quest with no creation time cannot be excluded by a filter it
	// has no data for.
	got = Filter(quests, Filters{StartDate: &from, EndDate: &from})
	found := false
	for _, q := range got {
		if q.Title == "Undated" {
			found = true
		}
	}
	if !found {
		t.Error("undated quest should pass every date filter")
	}
}

func TestStatistics(t *testing.T) {
	now := time.Now()

	overdue := testQuest("Overdue", models.DifficultyMedium, true, false) // 50%
	overdue.Category = models.CategoryWork
	overdue.DueDate = timePtr(now.Add(-24 * time.Hour))

	onTrack := testQuest("On track", models.DifficultyEasy, true, true, true, false) // 75%
	onTrack.Category = models.CategoryHealth
	onTrack.DueDate = timePtr(now.Add(24 * time.Hour))

	doneEpic := testQuest("Done epic", models.DifficultyEpic, true)
	doneEpic.Category = models.CategoryWork
	doneEpic.Status = models.StatusCompleted

	doneEasy := testQuest("Done easy", models.DifficultyEasy, true)
	doneEasy.Category = models.CategoryLearning
	doneEasy.Status = models.StatusCompleted

	stats := Statistics([]models.Quest{overdue, onTrack, doneEpic, doneEasy})

	if stats.Total != 4 || stats.Active != 2 || stats.Completed != 2 {
		t.Errorf("counts = total %d active %d completed %d, want 4/2/2", stats.Total, stats.Active, stats.Completed)
	}
	if stats.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", stats.Overdue)
	}
	if stats.ByCategory[models.CategoryWork] != 2 {
		t.Errorf("ByCategory[work] = %d, want 2", stats.ByCategory[models.CategoryWork])
	}
	if stats.ByDifficulty[models.DifficultyEasy] != 2 {
		t.Errorf("ByDifficulty[easy] = %d, want 2", stats.ByDifficulty[models.DifficultyEasy])
	}
	// Active average: (50+75)/2 = 62.5 -> 63
	if stats.AverageProgress != 63 {
		t.Errorf("AverageProgress = %d, want 63", stats.AverageProgress)
	}
	// Completed XP: epic 100 + easy 10
	if stats.TotalXP != 110 {
		t.Errorf("TotalXP = %d, want 110", stats.TotalXP)
	}
}

func TestStatistics_Empty(t *testing.T) {
	stats := Statistics(nil)
	if stats.Total != 0 || stats.AverageProgress != 0 || stats.TotalXP != 0 {
		t.Errorf("empty collection stats should be zeroed, got %+v", stats)
	}
}
