package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/planner"
	"github.com/julianstephens/stillday/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "stillday.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	return &cli.Context{
		Store:   store,
		Planner: planner.New(store),
	}
}

func TestSettingsCmd_List(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_UpdateReminders(t *testing.T) {
	ctx := setupTestContext(t)

	initial := ctx.Planner.Settings().RemindersEnabled
	newValue := !initial
	cmd := &SettingsCmd{Reminders: &newValue}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings update failed: %v", err)
	}

	if got := ctx.Planner.Settings().RemindersEnabled; got != newValue {
		t.Errorf("expected RemindersEnabled to be %v, got %v", newValue, got)
	}
}

func TestSettingsCmd_UpdateMultiple(t *testing.T) {
	ctx := setupTestContext(t)

	haptics := false
	darkMode := true
	cmd := &SettingsCmd{Haptics: &haptics, DarkMode: &darkMode}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings update failed: %v", err)
	}

	settings := ctx.Planner.Settings()
	if settings.HapticsEnabled != haptics {
		t.Errorf("expected HapticsEnabled to be %v, got %v", haptics, settings.HapticsEnabled)
	}
	if settings.DarkMode != darkMode {
		t.Errorf("expected DarkMode to be %v, got %v", darkMode, settings.DarkMode)
	}
	if !settings.SoundsEnabled {
		t.Errorf("expected untouched SoundsEnabled to keep its default")
	}
}

func TestSettingsCmd_NoFlagsIsNoOp(t *testing.T) {
	ctx := setupTestContext(t)

	before := ctx.Planner.Settings()
	cmd := &SettingsCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings no-op failed: %v", err)
	}
	if ctx.Planner.Settings() != before {
		t.Errorf("expected settings to be unchanged")
	}
}
