package planner

import (
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/stillday/internal/constants"
	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/storage"
)

func fixedClock(date string) func() time.Time {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.UTC() }
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestPlanner(t *testing.T, today string) (*Planner, storage.Provider) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "stillday.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	p := New(store, WithClock(fixedClock(today)), WithIDGenerator(sequentialIDs("task")))
	return p, store
}

func TestTodayMaterializesEmptyEntry(t *testing.T) {
	p, _ := newTestPlanner(t, "2024-06-01")

	today := p.Today()
	if today.Date != "2024-06-01" {
		t.Errorf("expected date 2024-06-01, got %s", today.Date)
	}
	if today.Mood != nil {
		t.Errorf("expected nil mood, got %v", *today.Mood)
	}
	if today.Energy != nil {
		t.Errorf("expected nil energy, got %v", *today.Energy)
	}
	if len(today.Tasks) != 0 {
		t.Errorf("expected empty tasks, got %d", len(today.Tasks))
	}
	if today.Reflection != nil {
		t.Errorf("expected no reflection, got %+v", *today.Reflection)
	}

	// Materialization has no persistence side effect
	if _, ok := p.Entry("2024-06-01"); ok {
		t.Error("expected no stored entry before first mutation")
	}
}

func TestAddTaskCapInvariant(t *testing.T) {
	p, _ := newTestPlanner(t, "2024-06-01")

	for i := 0; i < 5; i++ {
		p.AddTask(fmt.Sprintf("task %d", i), models.EffortShort, "")
		if got := len(p.Today().Tasks); got > constants.MaxTasksPerDay {
			t.Fatalf("task cap violated after add %d: %d tasks", i, got)
		}
	}

	today := p.Today()
	if len(today.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(today.Tasks))
	}

	// The 4th and 5th adds were no-ops
	titles := []string{today.Tasks[0].Title, today.Tasks[1].Title, today.Tasks[2].Title}
	want := []string{"task 0", "task 1", "task 2"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("expected titles %v, got %v", want, titles)
	}

	if _, ok := p.AddTask("one more", models.EffortDeep, ""); ok {
		t.Error("expected add past cap to report failure")
	}
}

func TestAddTaskTrimsAndCapsTitle(t *testing.T) {
	p, _ := newTestPlanner(t, "2024-06-01")

	task, ok := p.AddTask("  morning pages  ", models.EffortMedium, "  breathe first  ")
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if task.Title != "morning pages" {
		t.Errorf("expected trimmed title, got %q", task.Title)
	}
	if task.MindfulnessNote != "breathe first" {
		t.Errorf("expected trimmed note, got %q", task.MindfulnessNote)
	}
}

func TestTaskOpsNoOpOnMissingID(t *testing.T) {
	p, _ := newTestPlanner(t, "2024-06-01")
	p.AddTask("write", models.EffortDeep, "")
	before := p.Today().Tasks

	title := "changed"
	p.UpdateTask("nonexistent", models.TaskPatch{Title: &title})
	p.ToggleTaskComplete("nonexistent")
	p.RemoveTask("nonexistent")

	after := p.Today().Tasks
	if !reflect.DeepEqual(before, after) {
		t.Errorf("expected tasks unchanged, before=%+v after=%+v", before, after)
	}
}

func TestToggleAndRemoveTask(t *testing.T) {
	p, _ := newTestPlanner(t, "2024-06-01")
	task, _ := p.AddTask("stretch", models.EffortShort, "")

	p.ToggleTaskComplete(task.ID)
	if !p.Today().Tasks[0].Completed {
		t.Error("expected task completed after toggle")
	}
	p.ToggleTaskComplete(task.ID)
	if p.Today().Tasks[0].Completed {
		t.Error("expected task incomplete after second toggle")
	}

	p.RemoveTask(task.ID)
	if len(p.Today().Tasks) != 0 {
		t.Errorf("expected empty task list after remove, got %d", len(p.Today().Tasks))
	}
}

func TestUpdateTaskMergesPatch(t *testing.T) {
	p, _ := newTestPlanner(t, "2024-06-01")
	task, _ := p.AddTask("deep work", models.EffortDeep, "")

	note := "single-tasking only"
	effort := models.EffortMedium
	p.UpdateTask(task.ID, models.TaskPatch{MindfulnessNote: &note, Effort: &effort})

	got := p.Today().Tasks[0]
	if got.Title != "deep work" {
		t.Errorf("expected title untouched, got %q", got.Title)
	}
	if got.MindfulnessNote != note {
		t.Errorf("expected note %q, got %q", note, got.MindfulnessNote)
	}
	if got.Effort != models.EffortMedium {
		t.Errorf("expected effort medium, got %s", got.Effort)
	}
}

func TestEntryLookupIsIdempotent(t *testing.T) {
	p, _ := newTestPlanner(t, "2024-06-01")
	p.SetIntention("move slowly")

	first, ok1 := p.Entry("2024-06-01")
	second, ok2 := p.Entry("2024-06-01")
	if !ok1 || !ok2 {
		t.Fatal("expected entry to exist after mutation")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected equal results, got %+v and %+v", first, second)
	}

	if _, ok := p.Entry("1999-01-01"); ok {
		t.Error("expected lookup of unknown date to report absence")
	}
}

func TestHistoryExcludesTodayAndSortsDescending(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "stillday.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	// Seed entries on three separate days
	for _, date := range []string{"2024-01-01", "2024-01-03", "2024-01-05"} {
		seed := New(store, WithClock(fixedClock(date)))
		seed.SetIntention("intention for " + date)
	}

	p := New(store, WithClock(fixedClock("2024-01-05")))
	history := p.History()

	var dates []string
	for _, e := range history {
		dates = append(dates, e.Date)
	}
	want := []string{"2024-01-03", "2024-01-01"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("expected history %v, got %v", want, dates)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	p, store := newTestPlanner(t, "2024-06-01")

	darkMode := true
	p.UpdateSettings(models.SettingsPatch{DarkMode: &darkMode})

	want := models.DefaultSettings()
	want.DarkMode = true
	if got := p.Settings(); got != want {
		t.Errorf("expected settings %+v, got %+v", want, got)
	}

	// A fresh planner over the same store sees the persisted record
	reloaded := New(store, WithClock(fixedClock("2024-06-01")))
	if got := reloaded.Settings(); got != want {
		t.Errorf("expected reloaded settings %+v, got %+v", want, got)
	}
}

func TestSettingsDefaultsWhenStoreEmpty(t *testing.T) {
	p, _ := newTestPlanner(t, "2024-06-01")

	if got := p.Settings(); got != models.DefaultSettings() {
		t.Errorf("expected default settings, got %+v", got)
	}
}

func TestSaveReflectionReplacesWholesale(t *testing.T) {
	p, _ := newTestPlanner(t, "2024-06-01")

	p.SaveReflection(models.Reflection{
		WentWell:  []string{" finished the draft ", "", "walked at lunch", "extra", "more"},
		FeltHeavy: "  too many meetings  ",
		Gratitude: "quiet morning",
	})

	r := p.Today().Reflection
	if r == nil {
		t.Fatal("expected reflection to be set")
	}
	if want := []string{"finished the draft", "walked at lunch", "extra"}; !reflect.DeepEqual(r.WentWell, want) {
		t.Errorf("expected wentWell %v, got %v", want, r.WentWell)
	}
	if r.FeltHeavy != "too many meetings" {
		t.Errorf("expected trimmed feltHeavy, got %q", r.FeltHeavy)
	}

	// Saving again replaces the whole record, dropping unset fields
	p.SaveReflection(models.Reflection{Gratitude: "tea"})
	r = p.Today().Reflection
	if r.FeltHeavy != "" {
		t.Errorf("expected feltHeavy cleared by wholesale replace, got %q", r.FeltHeavy)
	}
	if r.Gratitude != "tea" {
		t.Errorf("expected gratitude %q, got %q", "tea", r.Gratitude)
	}
}

func TestMutationsSurviveReload(t *testing.T) {
	p, store := newTestPlanner(t, "2024-06-01")
	p.SetIntention("be present")
	mood := models.MoodLevel(4)
	p.SetMood(mood)
	p.SetEnergy(models.EnergyHigh)

	reloaded := New(store, WithClock(fixedClock("2024-06-01")))
	today := reloaded.Today()
	if today.Intention != "be present" {
		t.Errorf("expected intention to survive reload, got %q", today.Intention)
	}
	if today.Mood == nil || *today.Mood != 4 {
		t.Errorf("expected mood 4 after reload, got %v", today.Mood)
	}
	if today.Energy == nil || *today.Energy != models.EnergyHigh {
		t.Errorf("expected energy high after reload, got %v", today.Energy)
	}
}
