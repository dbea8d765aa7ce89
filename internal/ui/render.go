package ui

import (
	"fmt"
	"strings"

	"github.com/questmaster/questmaster/catalog"
	"github.com/questmaster/questmaster/models"
)

const progressBarWidth = 20

// ProgressBar renders a fixed-width bar for a 0-100 percentage.
func ProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * progressBarWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)

	style := StyleWarning
	if percent == 100 {
		style = StyleSuccess
	}
	return fmt.Sprintf("%s %3d%%", style.Render(bar), percent)
}

// QuestCard renders a quest with its subtask checklist.
func QuestCard(q models.Quest) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(q.Title))
	b.WriteString("\n")
	b.WriteString(StyleSubtle.Render(fmt.Sprintf("%s · %s · %s", q.Category, q.Difficulty, q.ID)))
	b.WriteString("\n")
	b.WriteString(q.Description)
	b.WriteString("\n\n")
	b.WriteString(ProgressBar(catalog.Progress(q)))
	b.WriteString("\n")

	for _, st := range q.Subtasks {
		box := "[ ]"
		text := st.Text
		if st.Completed {
			box = StyleSuccess.Render("[✓]")
			text = StyleSubtle.Render(st.Text)
		}
		b.WriteString(fmt.Sprintf("  %s %d. %s\n", box, st.ID, text))
	}

	if q.DueDate != nil {
		b.WriteString(StyleSubtle.Render(fmt.Sprintf("Due: %s", q.DueDate.Format("2006-01-02"))))
		b.WriteString("\n")
	}
	return StyleQuestBox.Render(strings.TrimRight(b.String(), "\n"))
}

// QuestLine renders one compact list row for a quest.
func QuestLine(q models.Quest) string {
	status := StyleWarning.Render(string(q.Status))
	if q.Status == models.StatusCompleted {
		status = StyleSuccess.Render(string(q.Status))
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		StyleSubtle.Render(shortID(q.ID)),
		ProgressBar(catalog.Progress(q)),
		status,
		StyleTitle.Render(q.Title))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// HUD renders the player stats line shown after mutations.
func HUD(stats models.PlayerStats) string {
	return fmt.Sprintf("%s  %s  %s",
		StyleXP.Render(fmt.Sprintf("Lv %d", stats.Level)),
		StyleXP.Render(fmt.Sprintf("%d/%d XP", stats.XP, stats.Level*100)),
		StyleSubtle.Render(fmt.Sprintf("%d active · %d completed", stats.ActiveTasks, stats.CompletedTasks)))
}
