package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/stillday/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case stateToday:
		content = m.viewToday()
	case stateHistory:
		content = docStyle.Render(m.historyModel.View())
	case stateHistoryDetail:
		content = m.viewEntryDetail(m.detailEntry)
	case stateSettings:
		content = m.viewSettings()
	case stateBreathe:
		return m.breatheModel.View()
	case stateTaskForm, stateIntentionForm, stateReflectForm:
		return docStyle.Render(m.form.View())
	case stateConfirmLetGo:
		return m.viewConfirmLetGo()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "History", "Settings"}
	tabStates := []sessionState{stateToday, stateHistory, stateSettings}
	for i, title := range tabTitles {
		if m.state == tabStates[i] || (m.state == stateHistoryDetail && tabStates[i] == stateHistory) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	entry := m.planner.Today()

	var b strings.Builder
	b.WriteString(titleStyle.Render(entry.Date) + "\n\n")

	if entry.Intention != "" {
		b.WriteString(fmt.Sprintf("Intention: %s\n", entry.Intention))
	} else {
		b.WriteString(subtleStyle.Render("No intention yet. Press i to set one.") + "\n")
	}
	b.WriteString(fmt.Sprintf("Mood: %s   Energy: %s\n\n", formatMood(entry.Mood), formatEnergy(entry.Energy)))

	b.WriteString(titleStyle.Render("Tasks") + "\n")
	if len(entry.Tasks) == 0 {
		b.WriteString(subtleStyle.Render("Nothing yet. Up to three is plenty. Press a to add.") + "\n")
	}
	for i, task := range entry.Tasks {
		b.WriteString(m.renderTaskLine(i, task) + "\n")
	}

	if entry.Reflection != nil {
		b.WriteString("\n" + titleStyle.Render("Reflection") + "\n")
		for _, item := range entry.Reflection.WentWell {
			b.WriteString(fmt.Sprintf("  went well: %s\n", item))
		}
		if entry.Reflection.FeltHeavy != "" {
			b.WriteString(fmt.Sprintf("  felt heavy: %s\n", entry.Reflection.FeltHeavy))
		}
		if entry.Reflection.Gratitude != "" {
			b.WriteString(fmt.Sprintf("  grateful for: %s\n", entry.Reflection.Gratitude))
		}
		if entry.Reflection.LetGo {
			b.WriteString(subtleStyle.Render("  this day has been let go") + "\n")
		}
	}

	if m.formError != "" {
		b.WriteString("\n" + warningStyle.Render(m.formError) + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) renderTaskLine(i int, task models.Task) string {
	check := "○"
	if task.Completed {
		check = "✓"
	}
	line := fmt.Sprintf("%s %s (%s)", check, task.Title, task.Effort)
	if task.MindfulnessNote != "" {
		line += subtleStyle.Render("  ~ " + task.MindfulnessNote)
	}
	if task.Completed {
		line = doneStyle.Render(line)
	}
	if i == m.taskCursor {
		return cursorStyle.Render("> ") + line
	}
	return "  " + line
}

func (m Model) viewEntryDetail(entry models.DayEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(entry.Date) + "\n\n")
	if entry.Intention != "" {
		b.WriteString(fmt.Sprintf("Intention: %s\n", entry.Intention))
	}
	b.WriteString(fmt.Sprintf("Mood: %s   Energy: %s\n\n", formatMood(entry.Mood), formatEnergy(entry.Energy)))
	for _, task := range entry.Tasks {
		check := "○"
		if task.Completed {
			check = "✓"
		}
		b.WriteString(fmt.Sprintf("  %s %s (%s)\n", check, task.Title, task.Effort))
	}
	if entry.Reflection != nil {
		b.WriteString("\n")
		for _, item := range entry.Reflection.WentWell {
			b.WriteString(fmt.Sprintf("  went well: %s\n", item))
		}
		if entry.Reflection.FeltHeavy != "" {
			b.WriteString(fmt.Sprintf("  felt heavy: %s\n", entry.Reflection.FeltHeavy))
		}
		if entry.Reflection.Gratitude != "" {
			b.WriteString(fmt.Sprintf("  grateful for: %s\n", entry.Reflection.Gratitude))
		}
	}
	b.WriteString("\n" + subtleStyle.Render("press any key to go back"))
	return docStyle.Render(b.String())
}

func (m Model) viewSettings() string {
	settings := m.planner.Settings()
	rows := []struct {
		label string
		value bool
	}{
		{"Gentle reminders", settings.RemindersEnabled},
		{"Haptics", settings.HapticsEnabled},
		{"Sounds", settings.SoundsEnabled},
		{"Dark mode", settings.DarkMode},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings") + "\n\n")
	for i, row := range rows {
		mark := "off"
		if row.value {
			mark = "on"
		}
		line := fmt.Sprintf("%-18s %s", row.label, mark)
		if i == m.settingsCursor {
			b.WriteString(cursorStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + subtleStyle.Render("enter/space to toggle"))
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmLetGo() string {
	incomplete := 0
	for _, task := range m.planner.Today().Tasks {
		if !task.Completed {
			incomplete++
		}
	}
	prompt := "Let go of today?"
	detail := "Nothing is left undone."
	if incomplete > 0 {
		detail = fmt.Sprintf("%d unfinished task(s) will move to tomorrow.", incomplete)
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(prompt),
			detail,
			"Done is enough.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func formatMood(mood *models.MoodLevel) string {
	if mood == nil {
		return "-"
	}
	return fmt.Sprintf("%d/5", int(*mood))
}

func formatEnergy(energy *models.EnergyLevel) string {
	if energy == nil {
		return "-"
	}
	return string(*energy)
}
