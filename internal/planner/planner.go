package planner

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/stillday/internal/constants"
	"github.com/julianstephens/stillday/internal/logger"
	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/storage"
	"github.com/julianstephens/stillday/internal/utils"
	"github.com/julianstephens/stillday/internal/validation"
)

// Planner owns all day entries and settings. It loads both records from
// the store once at construction and keeps the in-memory state
// authoritative: every mutation applies in memory first and then persists
// the whole record best-effort. Persistence failures are logged, never
// surfaced; no public operation returns an error.
//
// Planner is not safe for concurrent use by multiple goroutines. Two
// processes sharing the same storage path are last-writer-wins.
type Planner struct {
	store    storage.Provider
	now      func() time.Time
	newID    func() string
	entries  map[string]models.DayEntry
	settings models.AppSettings
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock overrides the system clock. Used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithIDGenerator overrides task id generation. Used by tests for
// deterministic ids.
func WithIDGenerator(newID func() string) Option {
	return func(p *Planner) { p.newID = newID }
}

// New constructs a Planner over an already-loaded store. Missing or
// undecodable records fall back to an empty entries map and default
// settings.
func New(store storage.Provider, opts ...Option) *Planner {
	p := &Planner{
		store:    store,
		now:      time.Now,
		newID:    uuid.NewString,
		entries:  make(map[string]models.DayEntry),
		settings: models.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(p)
	}

	store.Read(constants.StorageKeyEntries, &p.entries)
	if p.entries == nil {
		p.entries = make(map[string]models.DayEntry)
	}
	// Unmarshalling over the defaults-filled record keeps defaults for
	// any fields missing from the stored blob.
	store.Read(constants.StorageKeySettings, &p.settings)

	return p
}

func (p *Planner) todayKey() string {
	return utils.DayKey(p.now())
}

// Today returns today's entry, or a freshly materialized empty one if no
// record exists yet. Materialized entries are not persisted until the
// first mutation.
func (p *Planner) Today() models.DayEntry {
	key := p.todayKey()
	if entry, ok := p.entries[key]; ok {
		return entry
	}
	return models.NewDayEntry(key)
}

// UpdateToday applies the patch to today's entry (materializing it if
// needed) and persists the whole entries record.
func (p *Planner) UpdateToday(patch models.EntryPatch) {
	key := p.todayKey()
	entry, ok := p.entries[key]
	if !ok {
		entry = models.NewDayEntry(key)
	}
	p.entries[key] = patch.Apply(entry)
	p.persistEntries()
}

// Entry is a pure lookup by date key, with no materialization side
// effect.
func (p *Planner) Entry(date string) (models.DayEntry, bool) {
	entry, ok := p.entries[date]
	return entry, ok
}

// History returns all entries except today's, most recent first. The
// result is a derived view, recomputed on each call.
func (p *Planner) History() []models.DayEntry {
	todayKey := p.todayKey()
	out := make([]models.DayEntry, 0, len(p.entries))
	for date, entry := range p.entries {
		if date != todayKey {
			out = append(out, entry)
		}
	}
	// Date keys are YYYY-MM-DD, so lexicographic order is date order.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// SetIntention replaces today's intention.
func (p *Planner) SetIntention(intention string) {
	intention = validation.CleanText(intention, constants.MaxIntentionLen)
	p.UpdateToday(models.EntryPatch{Intention: &intention})
}

// SetMood records today's mood rating.
func (p *Planner) SetMood(mood models.MoodLevel) {
	p.UpdateToday(models.EntryPatch{Mood: &mood})
}

// SetEnergy records today's energy level.
func (p *Planner) SetEnergy(energy models.EnergyLevel) {
	p.UpdateToday(models.EntryPatch{Energy: &energy})
}

// SaveReflection replaces today's reflection wholesale. WentWell is
// capped at three items; text fields are trimmed and length-capped.
func (p *Planner) SaveReflection(r models.Reflection) {
	r.WentWell = validation.CleanList(r.WentWell, constants.MaxWentWellItems, constants.MaxWentWellLen)
	r.FeltHeavy = validation.CleanText(r.FeltHeavy, constants.MaxFeltHeavyLen)
	r.Gratitude = validation.CleanText(r.Gratitude, constants.MaxGratitudeLen)
	p.UpdateToday(models.EntryPatch{Reflection: &r})
}

// Settings returns the current defaults-filled settings record.
func (p *Planner) Settings() models.AppSettings {
	return p.settings
}

// UpdateSettings applies the patch and persists the settings record.
func (p *Planner) UpdateSettings(patch models.SettingsPatch) {
	p.settings = patch.Apply(p.settings)
	if err := p.store.Write(constants.StorageKeySettings, p.settings); err != nil {
		logger.Warn("Failed to persist settings, in-memory state remains authoritative", "error", err)
	}
}

func (p *Planner) persistEntries() {
	if err := p.store.Write(constants.StorageKeyEntries, p.entries); err != nil {
		logger.Warn("Failed to persist entries, in-memory state remains authoritative", "error", err)
	}
}
