package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/planner"
	"github.com/julianstephens/stillday/internal/tui/components/history"
)

type sessionState int

const (
	stateToday sessionState = iota
	stateHistory
	stateSettings
	stateBreathe
	stateIntentionForm
	stateTaskForm
	stateReflectForm
	stateConfirmLetGo
	stateHistoryDetail
)

type TaskFormModel struct {
	Title  string
	Effort models.EffortLevel
	Note   string
}

type IntentionFormModel struct {
	Intention string
	Mood      models.MoodLevel
	Energy    models.EnergyLevel
}

type ReflectFormModel struct {
	WentWell  []string
	FeltHeavy string
	Gratitude string
}

type Model struct {
	planner       *planner.Planner
	state         sessionState
	previousState sessionState
	keys          KeyMap
	help          help.Model

	historyModel history.Model
	breatheModel BreatheModel
	detailEntry  models.DayEntry

	form          *huh.Form
	taskForm      *TaskFormModel
	intentionForm *IntentionFormModel
	reflectForm   *ReflectFormModel
	editingTaskID string

	taskCursor     int
	settingsCursor int
	formError      string
	quitting       bool
	width          int
	height         int
}

func NewModel(p *planner.Planner) Model {
	return Model{
		planner:      p,
		state:        stateToday,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		historyModel: history.New(p.History(), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case stateToday:
		keys = append(keys, m.keys.Add, m.keys.Toggle, m.keys.LetGo)
	case stateSettings:
		keys = append(keys, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Breathe}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case stateToday:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Toggle, m.keys.Intent, m.keys.Reflect, m.keys.LetGo}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// clampTaskCursor keeps the cursor inside today's task list after
// additions and removals.
func (m *Model) clampTaskCursor() {
	n := len(m.planner.Today().Tasks)
	if m.taskCursor >= n {
		m.taskCursor = n - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}
