// Package history renders past day entries as a scrollable list.
package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/stillday/internal/models"
)

type Item struct {
	Entry models.DayEntry
}

func (i Item) Title() string {
	title := i.Entry.Date
	if i.Entry.Reflection != nil && i.Entry.Reflection.LetGo {
		title += "  (let go)"
	}
	return title
}

func (i Item) Description() string {
	done := 0
	for _, task := range i.Entry.Tasks {
		if task.Completed {
			done++
		}
	}
	intention := i.Entry.Intention
	if intention == "" {
		intention = "no intention recorded"
	}
	return fmt.Sprintf("%d/%d tasks · %s", done, len(i.Entry.Tasks), intention)
}

func (i Item) FilterValue() string { return i.Entry.Date + " " + i.Entry.Intention }

type Model struct {
	list list.Model
}

func New(entries []models.DayEntry, width, height int) Model {
	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, Item{Entry: entry})
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Past Days"
	l.SetShowStatusBar(false)
	return Model{list: l}
}

// SetEntries replaces the listed entries, keeping the cursor in range.
func (m *Model) SetEntries(entries []models.DayEntry) {
	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, Item{Entry: entry})
	}
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the entry under the cursor, if any.
func (m Model) Selected() (models.DayEntry, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.DayEntry{}, false
	}
	return item.Entry, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
