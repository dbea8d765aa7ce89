package catalog

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/questmaster/questmaster/models"
)

// FilterAll disables a predicate, same as leaving it empty.
const FilterAll = "all"

// Filters selects a subset of a quest collection. Every set predicate
// must match (AND); empty or "all" values disable that predicate.
type Filters struct {
	Category   string
	Difficulty string
	Status     string
	// Search matches case-insensitively against title, description,
	// category, and difficulty.
	Search string
	// StartDate and EndDate bound CreatedAt inclusively. Quests without
	// a creation time pass date filters unconditionally.
	StartDate *time.Time
	EndDate   *time.Time
}

// Filter returns the quests matching all predicates, preserving order.
func Filter(quests []models.Quest, f Filters) []models.Quest {
	out := make([]models.Quest, 0, len(quests))
	for _, q := range quests {
		if matches(q, f) {
			out = append(out, q)
		}
	}
	return out
}

func matches(q models.Quest, f Filters) bool {
	if f.Category != "" && f.Category != FilterAll && string(q.Category) != f.Category {
		return false
	}
	if f.Difficulty != "" && f.Difficulty != FilterAll && string(q.Difficulty) != f.Difficulty {
		return false
	}
	if f.Status != "" && f.Status != FilterAll && string(q.Status) != f.Status {
		return false
	}
	if f.Search != "" {
		haystack := strings.ToLower(fmt.Sprintf("%s %s %s %s", q.Title, q.Description, q.Category, q.Difficulty))
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}
	if !q.CreatedAt.IsZero() {
		if f.StartDate != nil && q.CreatedAt.Before(*f.StartDate) {
			return false
		}
		if f.EndDate != nil && q.CreatedAt.After(*f.EndDate) {
			return false
		}
	}
	return true
}

// Stats aggregates a quest collection for display.
type Stats struct {
	Total     int
	Active    int
	Completed int
	// Overdue counts active quests whose due date has already passed.
	Overdue      int
	ByCategory   map[models.QuestCategory]int
	ByDifficulty map[models.QuestDifficulty]int
	// AverageProgress covers active quests only; 0 when none are active.
	AverageProgress int
	// TotalXP is the cumulative reward attributable to completed quests.
	TotalXP int
}

// Statistics computes collection-wide aggregates in one pass.
func Statistics(quests []models.Quest) Stats {
	now := time.Now()
	stats := Stats{
		Total:        len(quests),
		ByCategory:   make(map[models.QuestCategory]int),
		ByDifficulty: make(map[models.QuestDifficulty]int),
	}

	activeProgress := 0
	for _, q := range quests {
		switch q.Status {
		case models.StatusActive:
			stats.Active++
			activeProgress += Progress(q)
			if q.DueDate != nil && q.DueDate.Before(now) {
				stats.Overdue++
			}
		case models.StatusCompleted:
			stats.Completed++
			stats.TotalXP += models.XPReward(q.Difficulty)
		}
		stats.ByCategory[q.Category]++
		stats.ByDifficulty[q.Difficulty]++
	}

	if stats.Active > 0 {
		stats.AverageProgress = int(math.Round(float64(activeProgress) / float64(stats.Active)))
	}
	return stats
}
