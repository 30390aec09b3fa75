package models

// MoodLevel is an ordinal mood rating from 1 (low) to 5 (high)
type MoodLevel int

// EnergyLevel is a coarse self-reported energy band
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// ValidMood reports whether m is in the 1..5 range.
func ValidMood(m MoodLevel) bool {
	return m >= 1 && m <= 5
}

// ValidEnergy reports whether e is one of the known energy levels.
func ValidEnergy(e EnergyLevel) bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// Reflection is the evening retrospective sub-record of a day entry.
// Saving a reflection replaces the whole record; partial reflection
// updates are not supported.
type Reflection struct {
	WentWell  []string `json:"wentWell"`
	FeltHeavy string   `json:"feltHeavy,omitempty"`
	Gratitude string   `json:"gratitude,omitempty"`
	LetGo     bool     `json:"letGo"`
}

// DayEntry is the full record of one calendar day's planning and
// reflection data. The date string (YYYY-MM-DD) is its identity.
type DayEntry struct {
	Date       string       `json:"date"`
	Intention  string       `json:"intention"`
	Mood       *MoodLevel   `json:"mood"`
	Energy     *EnergyLevel `json:"energy"`
	Tasks      []Task       `json:"tasks"`
	Reflection *Reflection  `json:"reflection,omitempty"`
}

// NewDayEntry returns an empty entry for the given date key.
func NewDayEntry(date string) DayEntry {
	return DayEntry{
		Date:  date,
		Tasks: []Task{},
	}
}

// EntryPatch names the day-entry fields an update may change. Nil fields
// are left untouched. Tasks replaces the whole list; Reflection replaces
// the whole sub-record.
type EntryPatch struct {
	Intention  *string
	Mood       *MoodLevel
	Energy     *EnergyLevel
	Tasks      *[]Task
	Reflection *Reflection
}

// Apply merges the patch onto an entry and returns the result.
func (p EntryPatch) Apply(e DayEntry) DayEntry {
	if p.Intention != nil {
		e.Intention = *p.Intention
	}
	if p.Mood != nil {
		m := *p.Mood
		e.Mood = &m
	}
	if p.Energy != nil {
		en := *p.Energy
		e.Energy = &en
	}
	if p.Tasks != nil {
		e.Tasks = *p.Tasks
	}
	if p.Reflection != nil {
		r := *p.Reflection
		e.Reflection = &r
	}
	return e
}
