// Package archive keeps timestamped copies of SQLite databases.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BackupDatabase copies dbPath into backupDir under a timestamped name and
// returns the backup path. A database that does not exist yet is not an
// error; the returned path is then empty.
func BackupDatabase(dbPath, backupDir string) (string, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return "", nil
	}

	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	base := filepath.Base(dbPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	timestamp := time.Now().Format("20060102-150405")
	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s-%s%s", name, timestamp, ext))

	// Check if backup already exists (unlikely but possible)
	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		backupPath = filepath.Join(backupDir, fmt.Sprintf("%s-%s%s", name, timestamp, ext))
	}

	if err := copyFile(dbPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}
	return backupPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
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
