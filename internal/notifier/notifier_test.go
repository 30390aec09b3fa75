package notifier

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/stillday/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func TestTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) {
		return tempDir, nil
	}

	// Default location
	want := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := TrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != want {
		t.Errorf("expected %s, got %s", want, dir)
	}

	// Custom lockfile dir from the tray app's settings file
	trayConfigDir := filepath.Join(tempDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayConfigDir, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/stillday/dir"
	settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
	if err := os.WriteFile(filepath.Join(trayConfigDir, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = TrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != customDir {
		t.Errorf("expected %s, got %s", customDir, dir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "stillday-tray"}, nil
	}

	tempDir := t.TempDir()
	lockfilePath := filepath.Join(tempDir, constants.NotifierLockfileName)

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid lockfile", "8421|1234|sekrit", false},
		{"missing fields", "8421|1234", true},
		{"bad port", "notaport|1234|sekrit", true},
		{"port out of range", "70000|1234|sekrit", true},
		{"bad pid", "8421|notapid|sekrit", true},
		{"empty secret", "8421|1234| ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(lockfilePath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			port, secret, err := findAndValidateTrayProcess(lockfilePath)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got port=%s secret=%s", port, secret)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if port != "8421" || secret != "sekrit" {
				t.Errorf("expected port 8421 and secret sekrit, got %s and %s", port, secret)
			}
		})
	}
}

func TestFindAndValidateTrayProcessMissingLockfile(t *testing.T) {
	_, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "missing.lock"))
	if err == nil {
		t.Error("expected error when lockfile is absent")
	}
}

func TestFindAndValidateTrayProcessWrongExecutable(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "something-else"}, nil
	}

	lockfilePath := filepath.Join(t.TempDir(), constants.NotifierLockfileName)
	if err := os.WriteFile(lockfilePath, []byte("8421|1234|sekrit"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for wrong executable name")
	}
}
