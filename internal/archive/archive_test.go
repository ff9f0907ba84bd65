package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/vocabmt/internal/testutil"
)

func TestBackupDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data", "vocab.db")
	backupDir := filepath.Join(tmpDir, "backups")

	testutil.CreateTestFile(t, dbPath, []byte("sqlite content"))

	backupPath, err := BackupDatabase(dbPath, backupDir)
	if err != nil {
		t.Fatalf("BackupDatabase() error = %v", err)
	}

	if filepath.Dir(backupPath) != backupDir {
		t.Errorf("backup written to %s, want inside %s", backupPath, backupDir)
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, "vocab-") || !strings.HasSuffix(name, ".db") {
		t.Errorf("unexpected backup name %s", name)
	}

	testutil.AssertFileContent(t, backupPath, []byte("sqlite content"))
	testutil.AssertFileExists(t, dbPath)
}

func TestBackupDatabase_Twice(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "users.db")
	backupDir := filepath.Join(tmpDir, "backups")
	testutil.CreateTestFile(t, dbPath, []byte("v1"))

	first, err := BackupDatabase(dbPath, backupDir)
	if err != nil {
		t.Fatalf("first BackupDatabase() error = %v", err)
	}
	second, err := BackupDatabase(dbPath, backupDir)
	if err != nil {
		t.Fatalf("second BackupDatabase() error = %v", err)
	}
	if first == second {
		t.Errorf("both backups written to %s", first)
	}

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		t.Fatalf("failed to read backup directory: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 backups, got %d", len(entries))
	}
}

func TestBackupDatabase_Missing(t *testing.T) {
	tmpDir := t.TempDir()
	backupDir := filepath.Join(tmpDir, "backups")

	backupPath, err := BackupDatabase(filepath.Join(tmpDir, "missing.db"), backupDir)
	if err != nil {
		t.Fatalf("BackupDatabase() error = %v", err)
	}
	if backupPath != "" {
		t.Errorf("backupPath = %q, want empty", backupPath)
	}
	testutil.AssertFileNotExists(t, backupDir)
}
