package models

// PlayerStats holds the player-facing progression counters. The task
// counters mirror the quest collection's aggregates and must be kept
// consistent with it on every mutation; they are not independently
// authoritative.
type PlayerStats struct {
	Level          int `json:"level"`
	XP             int `json:"xp"`
	CompletedTasks int `json:"completedTasks"`
	ActiveTasks    int `json:"activeTasks"`
}

// DefaultPlayerStats returns the stats of a brand-new player.
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{Level: 1}
}
