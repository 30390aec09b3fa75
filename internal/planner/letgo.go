package planner

import (
	"github.com/julianstephens/stillday/internal/constants"
	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/utils"
)

// LetGo releases today: every incomplete task is copied into tomorrow's
// entry under a fresh id and today's reflection is marked letGo. Today's
// task list is left untouched; only copies move. Tomorrow's list is
// truncated to three tasks after the merge, keeping its existing tasks
// first.
//
// Both days are persisted in a single write of the entries record, so a
// crash cannot leave the release flag inconsistent with the migration.
//
// There is no re-invocation guard: calling LetGo again appends a second
// set of copies to tomorrow, since the originals stay in today's list and
// still read as incomplete.
func (p *Planner) LetGo() {
	now := p.now()
	todayKey := utils.DayKey(now)
	tomorrowKey := utils.NextDayKey(now)

	today, ok := p.entries[todayKey]
	if !ok {
		today = models.NewDayEntry(todayKey)
	}

	var incomplete []models.Task
	for _, task := range today.Tasks {
		if !task.Completed {
			incomplete = append(incomplete, task)
		}
	}

	tomorrow, ok := p.entries[tomorrowKey]
	if !ok {
		tomorrow = models.NewDayEntry(tomorrowKey)
	}

	merged := make([]models.Task, 0, len(tomorrow.Tasks)+len(incomplete))
	merged = append(merged, tomorrow.Tasks...)
	for _, task := range incomplete {
		task.ID = p.newID()
		merged = append(merged, task)
	}
	if len(merged) > constants.MaxTasksPerDay {
		merged = merged[:constants.MaxTasksPerDay]
	}
	tomorrow.Tasks = merged

	reflection := models.Reflection{}
	if today.Reflection != nil {
		reflection = *today.Reflection
	}
	reflection.LetGo = true
	if reflection.WentWell == nil {
		reflection.WentWell = []string{}
	}
	today.Reflection = &reflection

	p.entries[todayKey] = today
	p.entries[tomorrowKey] = tomorrow
	p.persistEntries()
}
