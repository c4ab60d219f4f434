// Package backup creates and rotates point-in-time copies of the SQLite
// database. SQLite backups use VACUUM INTO so the copy is consistent even
// while the database is open; JSON stores are copied byte for byte.
package backup

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/habitflow/habitflow/internal/constants"
)

// MaxBackups is the number of backups kept after rotation.
const MaxBackups = constants.MaxBackups

// Backup describes a single backup file on disk.
type Backup struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup creation, listing, rotation, and restore for a
// single database file.
type Manager struct {
	dbPath    string
	backupDir string
}

// NewManager creates a manager for the database at dbPath. Backups live in
// a sibling directory next to the database file.
func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
	}
}

// GetBackupDir returns the directory backups are written to.
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup writes a new timestamped backup and rotates old ones. It
// returns the path of the backup file.
func (m *Manager) CreateBackup() (string, error) {
	backupPath, err := m.writeBackup()
	if err != nil {
		return "", err
	}

	if err := m.rotate(); err != nil {
		return "", fmt.Errorf("backup created but rotation failed: %w", err)
	}

	return backupPath, nil
}

// writeBackup writes a new timestamped backup without rotating. Restore
// uses it directly so rotation cannot remove the backup being restored.
func (m *Manager) writeBackup() (string, error) {
	if _, err := os.Stat(m.dbPath); err != nil {
		return "", fmt.Errorf("database not found at %s: %w", m.dbPath, err)
	}

	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath, err := m.nextBackupPath(time.Now())
	if err != nil {
		return "", err
	}

	if strings.HasSuffix(m.dbPath, ".json") {
		if err := copyFile(m.dbPath, backupPath); err != nil {
			return "", fmt.Errorf("failed to copy storage file: %w", err)
		}
	} else {
		if err := vacuumInto(m.dbPath, backupPath); err != nil {
			return "", err
		}
	}

	return backupPath, nil
}

// ListBackups returns all backups in the backup directory, newest first.
func (m *Manager) ListBackups() ([]Backup, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Backup
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
		ts, err := time.Parse("20060102-150405", stamp)
		if err != nil {
			// Not one of ours, skip it.
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat backup %s: %w", name, err)
		}

		backups = append(backups, Backup{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// RestoreBackup replaces the current database with the given backup file.
// A safety backup of the current database is taken first. Rotation is
// deferred until the restore has succeeded: rotating earlier could delete
// backupPath itself when it is among the oldest in a full directory.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		if _, err := m.writeBackup(); err != nil {
			return fmt.Errorf("failed to back up current database before restore: %w", err)
		}
	}

	// Copy to a temp file next to the target, then rename into place so a
	// failed copy never leaves a half-written database.
	tmpPath := m.dbPath + ".restore-tmp"
	if err := copyFile(backupPath, tmpPath); err != nil {
		return fmt.Errorf("failed to copy backup: %w", err)
	}
	if err := os.Rename(tmpPath, m.dbPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace database: %w", err)
	}

	if err := m.rotate(); err != nil {
		return fmt.Errorf("restored, but rotating old backups failed: %w", err)
	}
	return nil
}

// nextBackupPath returns an unused timestamped backup path. Two backups in
// the same second (a restore taking its safety copy right after a manual
// backup) bump the timestamp forward rather than colliding.
func (m *Manager) nextBackupPath(now time.Time) (string, error) {
	for i := 0; i < 60; i++ {
		stamp := now.Add(time.Duration(i) * time.Second).Format("20060102-150405")
		path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("could not find a free backup filename in %s", m.backupDir)
}

// rotate removes the oldest backups beyond MaxBackups.
func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= MaxBackups {
		return nil
	}

	for _, b := range backups[MaxBackups:] {
		if err := os.Remove(b.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", filepath.Base(b.Path), err)
		}
	}
	return nil
}

func vacuumInto(dbPath, backupPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database for backup: %w", err)
	}
	defer db.Close()

	// VACUUM INTO requires the destination not to exist.
	if _, err := db.Exec("VACUUM INTO ?", backupPath); err != nil {
		return fmt.Errorf("failed to vacuum into backup: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
