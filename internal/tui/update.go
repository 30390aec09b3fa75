package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stillday/internal/constants"
	"github.com/julianstephens/stillday/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.historyModel.SetSize(msg.Width-4, msg.Height-6)
		m.breatheModel.width = msg.Width
		m.breatheModel.height = msg.Height
	}

	// Form states swallow all input until completed or aborted
	switch m.state {
	case stateTaskForm:
		return m.updateTaskForm(msg)
	case stateIntentionForm:
		return m.updateIntentionForm(msg)
	case stateReflectForm:
		return m.updateReflectForm(msg)
	case stateBreathe:
		return m.updateBreathe(msg)
	case stateConfirmLetGo:
		return m.updateConfirmLetGo(msg)
	case stateHistoryDetail:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			if keyMsg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			m.state = stateHistory
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

		switch m.state {
		case stateToday:
			return m.handleTodayKeys(msg)
		case stateSettings:
			return m.handleSettingsKeys(msg)
		case stateHistory:
			if key.Matches(msg, m.keys.Enter) {
				if entry, ok := m.historyModel.Selected(); ok {
					m.detailEntry = entry
					m.state = stateHistoryDetail
				}
				return m, nil
			}
		}
	}

	if m.state == stateHistory {
		var cmd tea.Cmd
		m.historyModel, cmd = m.historyModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// The list's filter input uses printable keys, let q through
		if m.state == stateHistory && msg.String() == "q" {
			return false, nil
		}
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keys.Tab):
		m.state = nextMainState(m.state)
		m.formError = ""
		return true, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = prevMainState(m.state)
		m.formError = ""
		return true, nil
	case key.Matches(msg, m.keys.Breathe):
		if m.state != stateHistory {
			m.previousState = m.state
			m.breatheModel = newEmbeddedBreatheModel(4)
			m.breatheModel.width = m.width
			m.breatheModel.height = m.height
			m.state = stateBreathe
			return true, breatheTick()
		}
	}
	return false, nil
}

func nextMainState(s sessionState) sessionState {
	switch s {
	case stateToday:
		return stateHistory
	case stateHistory:
		return stateSettings
	default:
		return stateToday
	}
}

func prevMainState(s sessionState) sessionState {
	switch s {
	case stateToday:
		return stateSettings
	case stateSettings:
		return stateHistory
	default:
		return stateToday
	}
}

func (m Model) handleTodayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry := m.planner.Today()
	m.formError = ""

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.taskCursor < len(entry.Tasks)-1 {
			m.taskCursor++
		}
	case key.Matches(msg, m.keys.Add):
		if len(entry.Tasks) >= constants.MaxTasksPerDay {
			m.formError = "Three tasks is enough for one day."
			return m, nil
		}
		m.taskForm = &TaskFormModel{Effort: models.EffortMedium}
		m.editingTaskID = ""
		m.form = newTaskForm(m.taskForm)
		m.state = stateTaskForm
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Edit):
		if m.taskCursor < len(entry.Tasks) {
			task := entry.Tasks[m.taskCursor]
			m.taskForm = &TaskFormModel{Title: task.Title, Effort: task.Effort, Note: task.MindfulnessNote}
			m.editingTaskID = task.ID
			m.form = newTaskForm(m.taskForm)
			m.state = stateTaskForm
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.Delete):
		if m.taskCursor < len(entry.Tasks) {
			m.planner.RemoveTask(entry.Tasks[m.taskCursor].ID)
			m.clampTaskCursor()
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.taskCursor < len(entry.Tasks) {
			m.planner.ToggleTaskComplete(entry.Tasks[m.taskCursor].ID)
		}
	case key.Matches(msg, m.keys.Intent):
		fm := &IntentionFormModel{Intention: entry.Intention, Mood: 3, Energy: models.EnergyMedium}
		if entry.Mood != nil {
			fm.Mood = *entry.Mood
		}
		if entry.Energy != nil {
			fm.Energy = *entry.Energy
		}
		m.intentionForm = fm
		m.form = newIntentionForm(fm)
		m.state = stateIntentionForm
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Reflect):
		fm := &ReflectFormModel{}
		if entry.Reflection != nil {
			fm.WentWell = append([]string{}, entry.Reflection.WentWell...)
			fm.FeltHeavy = entry.Reflection.FeltHeavy
			fm.Gratitude = entry.Reflection.Gratitude
		}
		m.reflectForm = fm
		m.form = newReflectForm(fm)
		m.state = stateReflectForm
		return m, m.form.Init()
	case key.Matches(msg, m.keys.LetGo):
		m.state = stateConfirmLetGo
	}
	return m, nil
}

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.settingsCursor < 3 {
			m.settingsCursor++
		}
	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Toggle):
		settings := m.planner.Settings()
		patch := models.SettingsPatch{}
		switch m.settingsCursor {
		case 0:
			v := !settings.RemindersEnabled
			patch.RemindersEnabled = &v
		case 1:
			v := !settings.HapticsEnabled
			patch.HapticsEnabled = &v
		case 2:
			v := !settings.SoundsEnabled
			patch.SoundsEnabled = &v
		case 3:
			v := !settings.DarkMode
			patch.DarkMode = &v
		}
		m.planner.UpdateSettings(patch)
	}
	return m, nil
}

func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateToday
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.editingTaskID == "" {
			m.planner.AddTask(m.taskForm.Title, m.taskForm.Effort, m.taskForm.Note)
		} else {
			m.planner.UpdateTask(m.editingTaskID, models.TaskPatch{
				Title:           &m.taskForm.Title,
				Effort:          &m.taskForm.Effort,
				MindfulnessNote: &m.taskForm.Note,
			})
		}
		m.state = stateToday
	case huh.StateAborted:
		m.state = stateToday
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateIntentionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateToday
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.planner.SetIntention(m.intentionForm.Intention)
		m.planner.SetMood(m.intentionForm.Mood)
		m.planner.SetEnergy(m.intentionForm.Energy)
		m.state = stateToday
	case huh.StateAborted:
		m.state = stateToday
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateReflectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateToday
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		reflection := models.Reflection{
			WentWell:  m.reflectForm.WentWell,
			FeltHeavy: m.reflectForm.FeltHeavy,
			Gratitude: m.reflectForm.Gratitude,
		}
		if existing := m.planner.Today().Reflection; existing != nil {
			reflection.LetGo = existing.LetGo
		}
		m.planner.SaveReflection(reflection)
		m.state = stateToday
	case huh.StateAborted:
		m.state = stateToday
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmLetGo(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.planner.LetGo()
			m.historyModel.SetEntries(m.planner.History())
			m.taskCursor = 0
			m.state = stateToday
		case "n", "N", "esc", "q":
			m.state = stateToday
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateBreathe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q", "esc":
			m.state = m.previousState
			return m, nil
		default:
			if m.breatheModel.done {
				m.state = m.previousState
				return m, nil
			}
		}
	}

	model, cmd := m.breatheModel.Update(msg)
	if bm, ok := model.(BreatheModel); ok {
		m.breatheModel = bm
	}
	return m, cmd
}
