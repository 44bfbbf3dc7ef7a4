package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// BackupSchedule copies the upload directory once a day and prunes old copies.
type BackupSchedule struct {
	Src       string
	Dest      string
	Retention time.Duration
	Hour      int
	Minute    int
	Log       *zap.SugaredLogger
}

// NextRun is the first hour:minute strictly after now.
func (b BackupSchedule) NextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), b.Hour, b.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks until ctx is done, backing up at every scheduled time.
func (b BackupSchedule) Run(ctx context.Context) {
	for {
		next := b.NextRun(time.Now())
		b.Log.Infof("⏳ Next upload backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		dest, err := b.Backup(time.Now())
		if err != nil {
			b.Log.Errorf("❌ Failed to back up uploads: %v", err)
		} else {
			b.Log.Infof("✅ Uploads backed up to %s", dest)
		}
		b.Cleanup(time.Now())
	}
}

// Backup copies Src into a timestamped folder under Dest.
func (b BackupSchedule) Backup(now time.Time) (string, error) {
	dest := filepath.Join(b.Dest, now.Format("2006-01-02_15-04-05"))
	return dest, copyDir(b.Src, dest)
}

// Cleanup removes backup folders older than Retention.
func (b BackupSchedule) Cleanup(now time.Time) {
	entries, err := os.ReadDir(b.Dest)
	if err != nil {
		b.Log.Errorf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := now.Add(-b.Retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := filepath.Join(b.Dest, entry.Name())
		info, err := os.Stat(folder)
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(folder); err != nil {
			b.Log.Errorf("❌ Failed to remove old backup %s: %v", folder, err)
		} else {
			b.Log.Infof("🗑️ Removed old backup: %s", folder)
		}
	}
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			err = copyDir(from, to)
		} else {
			err = copyFile(from, to)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// copyFile keeps the source's permission bits and modification time so a
// restored upload looks like the original.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dest, err)
	}
	return os.Chtimes(dest, info.ModTime(), info.ModTime())
}
