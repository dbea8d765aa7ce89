// Package progression implements the player leveling system driven by
// quest completions. Like the catalog, it holds no state: it transforms
// the PlayerStats value the caller owns.
package progression

import "github.com/questmaster/questmaster/models"

// levelThreshold is the XP needed to clear the given level.
func levelThreshold(level int) int {
	return level * 100
}

// Result describes what a completion did to the player.
type Result struct {
	XPAwarded int
	LeveledUp bool
	// NewLevel is only meaningful when LeveledUp is true.
	NewLevel int
}

// ApplyCompletion awards the XP for a completed quest of the given
// difficulty, moves one task from the active to the completed counter,
// and resolves any level-ups. The engine does not clamp ActiveTasks;
// keeping the counters consistent with the collection is the caller's
// bookkeeping.
func ApplyCompletion(stats models.PlayerStats, difficulty models.QuestDifficulty) (models.PlayerStats, Result) {
	reward := models.XPReward(difficulty)

	stats.XP += reward
	stats.CompletedTasks++
	stats.ActiveTasks--

	before := stats.Level
	stats = checkLevelUp(stats)

	res := Result{XPAwarded: reward}
	if stats.Level > before {
		res.LeveledUp = true
		res.NewLevel = stats.Level
	}
	return stats, res
}

// checkLevelUp consumes XP into levels until the remaining XP no longer
// clears the current threshold. One award can cross several level
// boundaries, so this loops rather than stepping once.
func checkLevelUp(stats models.PlayerStats) models.PlayerStats {
	for stats.XP >= levelThreshold(stats.Level) {
		stats.XP -= levelThreshold(stats.Level)
		stats.Level++
	}
	return stats
}
