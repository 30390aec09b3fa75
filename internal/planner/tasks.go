package planner

import (
	"github.com/julianstephens/stillday/internal/constants"
	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/validation"
)

// AddTask appends a new task to today's list and returns it. The add is
// a no-op returning ok=false when the day already holds three tasks.
// Titles and notes are trimmed and length-capped before storage; the
// caller is expected to reject empty titles.
func (p *Planner) AddTask(title string, effort models.EffortLevel, note string) (models.Task, bool) {
	today := p.Today()
	if len(today.Tasks) >= constants.MaxTasksPerDay {
		return models.Task{}, false
	}

	task := models.Task{
		ID:              p.newID(),
		Title:           validation.CleanText(title, constants.MaxTitleLen),
		Effort:          effort,
		MindfulnessNote: validation.CleanText(note, constants.MaxNoteLen),
	}

	tasks := make([]models.Task, 0, len(today.Tasks)+1)
	tasks = append(tasks, today.Tasks...)
	tasks = append(tasks, task)
	p.UpdateToday(models.EntryPatch{Tasks: &tasks})
	return task, true
}

// UpdateTask merges the patch onto the named task in today's list. A
// missing id is a silent no-op, not an error.
func (p *Planner) UpdateTask(id string, patch models.TaskPatch) {
	if patch.Title != nil {
		title := validation.CleanText(*patch.Title, constants.MaxTitleLen)
		patch.Title = &title
	}
	if patch.MindfulnessNote != nil {
		note := validation.CleanText(*patch.MindfulnessNote, constants.MaxNoteLen)
		patch.MindfulnessNote = &note
	}

	today := p.Today()
	found := false
	tasks := make([]models.Task, len(today.Tasks))
	for i, task := range today.Tasks {
		if task.ID == id {
			task = patch.Apply(task)
			found = true
		}
		tasks[i] = task
	}
	if !found {
		return
	}
	p.UpdateToday(models.EntryPatch{Tasks: &tasks})
}

// ToggleTaskComplete flips the completion flag on the named task. A
// missing id is a silent no-op.
func (p *Planner) ToggleTaskComplete(id string) {
	for _, task := range p.Today().Tasks {
		if task.ID == id {
			completed := !task.Completed
			p.UpdateTask(id, models.TaskPatch{Completed: &completed})
			return
		}
	}
}

// RemoveTask filters the named task out of today's list. A missing id is
// a silent no-op.
func (p *Planner) RemoveTask(id string) {
	today := p.Today()
	tasks := make([]models.Task, 0, len(today.Tasks))
	for _, task := range today.Tasks {
		if task.ID != id {
			tasks = append(tasks, task)
		}
	}
	if len(tasks) == len(today.Tasks) {
		return
	}
	p.UpdateToday(models.EntryPatch{Tasks: &tasks})
}
