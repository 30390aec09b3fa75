package models

// EffortLevel is a coarse estimate of a task's cognitive/time cost
type EffortLevel string

const (
	EffortShort  EffortLevel = "short"
	EffortMedium EffortLevel = "medium"
	EffortDeep   EffortLevel = "deep"
)

// ValidEffort reports whether e is one of the known effort levels.
func ValidEffort(e EffortLevel) bool {
	switch e {
	case EffortShort, EffortMedium, EffortDeep:
		return true
	}
	return false
}

// Task is a single prioritized item on a day entry. IDs are assigned at
// creation and never change; the let-go transition copies tasks forward
// under fresh IDs instead of moving them.
type Task struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Completed       bool        `json:"completed"`
	Effort          EffortLevel `json:"effort"`
	MindfulnessNote string      `json:"mindfulnessNote,omitempty"`
}

// TaskPatch names the task fields an update may change. Nil fields are
// left untouched.
type TaskPatch struct {
	Title           *string
	Completed       *bool
	Effort          *EffortLevel
	MindfulnessNote *string
}

// Apply merges the patch onto a task and returns the result.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Effort != nil {
		t.Effort = *p.Effort
	}
	if p.MindfulnessNote != nil {
		t.MindfulnessNote = *p.MindfulnessNote
	}
	return t
}
