package upload

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func setupBackup(t *testing.T) BackupSchedule {
	t.Helper()
	root := t.TempDir()
	b := BackupSchedule{
		Src:       filepath.Join(root, "uploads"),
		Dest:      filepath.Join(root, "backup"),
		Retention: 96 * time.Hour,
		Hour:      2,
		Log:       zap.NewNop().Sugar(),
	}
	if err := os.MkdirAll(filepath.Join(b.Src, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(b.Src, "a.jpg"), []byte("a"), 0o644)
	os.WriteFile(filepath.Join(b.Src, "nested", "b.jpg"), []byte("b"), 0o644)
	return b
}

func TestNextRun(t *testing.T) {
	b := BackupSchedule{Hour: 2}
	loc := time.UTC

	before := time.Date(2025, 3, 1, 1, 0, 0, 0, loc)
	if got := b.NextRun(before); !got.Equal(time.Date(2025, 3, 1, 2, 0, 0, 0, loc)) {
		t.Errorf("Expected same-day run, got %v", got)
	}
	exactly := time.Date(2025, 3, 1, 2, 0, 0, 0, loc)
	if got := b.NextRun(exactly); !got.Equal(time.Date(2025, 3, 2, 2, 0, 0, 0, loc)) {
		t.Errorf("Expected next-day run, got %v", got)
	}
}

func TestBackupCopiesTree(t *testing.T) {
	b := setupBackup(t)

	dest, err := b.Backup(time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Backup failed: %v", err)
	}
	if filepath.Base(dest) != "2025-03-01_02-00-00" {
		t.Errorf("Unexpected backup folder %s", dest)
	}
	data, err := os.ReadFile(filepath.Join(dest, "nested", "b.jpg"))
	if err != nil || string(data) != "b" {
		t.Errorf("Nested file not copied: %q %v", data, err)
	}
}

func TestBackupKeepsModTimeAndMode(t *testing.T) {
	b := setupBackup(t)
	src := filepath.Join(b.Src, "a.jpg")
	uploaded := time.Date(2024, 12, 24, 18, 30, 0, 0, time.UTC)
	if err := os.Chtimes(src, uploaded, uploaded); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(src, 0o600); err != nil {
		t.Fatal(err)
	}

	dest, err := b.Backup(time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Backup failed: %v", err)
	}
	info, err := os.Stat(filepath.Join(dest, "a.jpg"))
	if err != nil {
		t.Fatalf("Copied file missing: %v", err)
	}
	if !info.ModTime().Equal(uploaded) {
		t.Errorf("Expected mod time %v, got %v", uploaded, info.ModTime())
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestCleanupRemovesOnlyExpiredBackups(t *testing.T) {
	b := setupBackup(t)
	now := time.Now()

	old, _ := b.Backup(now.Add(-200 * time.Hour))
	fresh, _ := b.Backup(now)
	os.Chtimes(old, now.Add(-200*time.Hour), now.Add(-200*time.Hour))

	b.Cleanup(now)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("Expired backup was kept")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("Fresh backup was removed")
	}
}
