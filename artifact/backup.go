package artifact

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bighouseburgers/ops_backend/models"
	"github.com/sirupsen/logrus"
)

const backupDirName = "backups"

// backupExisting copies the current target into the per-directory backups
// folder before it gets replaced. A missing target needs no backup; a failed
// backup blocks the overwrite entirely.
func (w *Writer) backupExisting(target string) error {
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return nil
	}

	backupDir := filepath.Join(filepath.Dir(target), backupDirName)
	stamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(backupDir, filepath.Base(target)+"."+stamp)

	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return &models.OverwriteBlockedError{Target: target, BackupPath: backupPath, Err: err}
	}
	if err := copyFile(target, backupPath); err != nil {
		return &models.OverwriteBlockedError{Target: target, BackupPath: backupPath, Err: err}
	}
	return nil
}

// CleanupBackups removes backup copies older than the configured retention.
func (w *Writer) CleanupBackups() error {
	backupDir := filepath.Join(w.cfg.OutputDir, backupDirName)
	entries, err := os.ReadDir(backupDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	cutoff := time.Now().AddDate(0, 0, -w.cfg.BackupRetentionDays)
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(backupDir, entry.Name())
			if err := os.Remove(path); err != nil {
				w.logger.WithFields(logrus.Fields{"module": "artifact", "backup": path}).
					Warn("failed to remove expired backup")
				continue
			}
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
