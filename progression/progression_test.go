package progression

import (
	"testing"

	"github.com/questmaster/questmaster/models"
)

func TestApplyCompletion_EpicAwardIsDeterministic(t *testing.T) {
	// The epic reward is exactly 100 XP before level-up resolution,
	// regardless of prior state.
	priors := []models.PlayerStats{
		models.DefaultPlayerStats(),
		{Level: 4, XP: 399, CompletedTasks: 12, ActiveTasks: 3},
		{Level: 9, XP: 0},
	}

	for _, prior := range priors {
		_, res := ApplyCompletion(prior, models.DifficultyEpic)
		if res.XPAwarded != 100 {
			t.Errorf("prior %+v: XPAwarded = %d, want 100", prior, res.XPAwarded)
		}
	}
}

func TestApplyCompletion_Counters(t *testing.T) {
	stats := models.PlayerStats{Level: 1, XP: 0, CompletedTasks: 2, ActiveTasks: 3}

	stats, res := ApplyCompletion(stats, models.DifficultyEasy)
	if res.XPAwarded != 10 {
		t.Errorf("XPAwarded = %d, want 10", res.XPAwarded)
	}
	if stats.CompletedTasks != 3 {
		t.Errorf("CompletedTasks = %d, want 3", stats.CompletedTasks)
	}
	if stats.ActiveTasks != 2 {
		t.Errorf("ActiveTasks = %d, want 2", stats.ActiveTasks)
	}
	if res.LeveledUp {
		t.Error("10 XP at level 1 should not level up")
	}
}

func TestApplyCompletion_UnrecognizedDifficultyDefaults(t *testing.T) {
	_, res := ApplyCompletion(models.DefaultPlayerStats(), "legendary")
	if res.XPAwarded != 10 {
		t.Errorf("XPAwarded = %d, want the easy default 10", res.XPAwarded)
	}
}

func TestCheckLevelUp_Thresholds(t *testing.T) {
	tests := []struct {
		name      string
		in        models.PlayerStats
		wantLevel int
		wantXP    int
	}{
		// Threshold for level N is N*100. Awarding 250 from level 1/0:
		// 250 >= 100 -> level 2, xp 150; 150 < 200 -> stop.
		{"single boundary", models.PlayerStats{Level: 1, XP: 250}, 2, 150},
		// 350 >= 100 -> level 2, xp 250; 250 >= 200 -> level 3, xp 50.
		{"two boundaries in one award", models.PlayerStats{Level: 1, XP: 350}, 3, 50},
		{"exact threshold", models.PlayerStats{Level: 1, XP: 100}, 2, 0},
		{"below threshold", models.PlayerStats{Level: 3, XP: 299}, 3, 299},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkLevelUp(tt.in)
			if got.Level != tt.wantLevel || got.XP != tt.wantXP {
				t.Errorf("checkLevelUp(%+v) = level %d/xp %d, want level %d/xp %d",
					tt.in, got.Level, got.XP, tt.wantLevel, tt.wantXP)
			}
		})
	}
}

func TestApplyCompletion_LevelUpResult(t *testing.T) {
	stats := models.PlayerStats{Level: 1, XP: 95, ActiveTasks: 1}

	stats, res := ApplyCompletion(stats, models.DifficultyMedium) // +25 -> 120
	if !res.LeveledUp {
		t.Fatal("crossing the level 1 threshold should report a level-up")
	}
	if res.NewLevel != 2 || stats.Level != 2 {
		t.Errorf("NewLevel = %d, stats.Level = %d, want 2", res.NewLevel, stats.Level)
	}
	if stats.XP != 20 {
		t.Errorf("XP = %d, want 20", stats.XP)
	}
}
