package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "stillday.json")
	if err := os.WriteFile(storePath, []byte(`{"entries":{}}`), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(storePath), storePath
}

func TestCreateBackup(t *testing.T) {
	m, _ := newTestManager(t)

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("create backup failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("backup not readable: %v", err)
	}
	if string(data) != `{"entries":{}}` {
		t.Errorf("backup content mismatch: %s", data)
	}
}

func TestCreateBackupFailsWithoutStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("expected backup of missing storage file to fail")
	}
}

func TestCreateBackupAvoidsNameCollisions(t *testing.T) {
	m, _ := newTestManager(t)

	first, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("first backup failed: %v", err)
	}
	second, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("second backup failed: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct backup paths, both were %s", first)
	}
}

func TestListBackups(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.CreateBackup(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateBackup(); err != nil {
		t.Fatal(err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	if backups[0].Timestamp.Before(backups[1].Timestamp) {
		t.Error("expected backups sorted newest first")
	}
}

func TestListBackupsEmptyWithoutDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "stillday.json"))
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	m, storePath := newTestManager(t)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	// Change the live file, then restore
	if err := os.WriteFile(storePath, []byte(`{"entries":{"2024-06-01":{}}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.RestoreBackup(backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	data, _ := os.ReadFile(storePath)
	if string(data) != `{"entries":{}}` {
		t.Errorf("expected restored content, got %s", data)
	}

	// A safety copy of the overwritten file exists
	if _, err := os.Stat(storePath + ".pre-restore"); err != nil {
		t.Errorf("expected pre-restore safety copy: %v", err)
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	m, _ := newTestManager(t)
	if err := m.RestoreBackup(filepath.Join(m.BackupDir(), "nope.json")); err == nil {
		t.Error("expected restore of missing backup to fail")
	}
}
