package store

import "github.com/questmaster/questmaster/models"

// Store persists the two pieces of session state: the quest collection
// and the player stats. Missing state loads as defaults (an empty
// collection; a fresh level-1 player), so a brand-new backend is
// indistinguishable from an empty one. Persistence is not transactional
// with in-memory mutations; callers save after every mutation and accept
// losing at most the last one on a crash.
type Store interface {
	// Initialize configures the backend (file path, format, and any
	// other backend-specific settings). It must be called before any
	// other operation.
	Initialize(config map[string]string) error

	// LoadQuests returns the persisted quest collection, or an empty
	// collection when none has been saved yet.
	LoadQuests() ([]models.Quest, error)

	// SaveQuests replaces the persisted quest collection.
	SaveQuests(quests []models.Quest) error

	// LoadStats returns the persisted player stats merged over
	// defaults, so a partially-present stored object cannot leave any
	// field unset.
	LoadStats() (models.PlayerStats, error)

	// SaveStats replaces the persisted player stats.
	SaveStats(stats models.PlayerStats) error

	// Close releases any resources held by the backend, such as file
	// locks or database connections.
	Close() error
}
