package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/foodinme/internal/model"

	"go.uber.org/zap/zaptest"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), zaptest.NewLogger(t))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestReplace_SwapsContent(t *testing.T) {
	s := newStore(t)
	writeFile(t, s.Path("custom_foods.csv"), "old\n")
	writeFile(t, s.Path(TempName), "new\n")

	if err := s.Replace("custom_foods.csv", TempName); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if got := readFile(t, s.Path("custom_foods.csv")); got != "new\n" {
		t.Errorf("target content = %q, want new", got)
	}
	if Exists(s.Path(TempName)) {
		t.Error("source file should be gone after replace")
	}
	if Exists(s.Path(BackupName)) {
		t.Error("backup file should be removed after replace")
	}
}

func TestReplace_MissingTarget(t *testing.T) {
	s := newStore(t)
	writeFile(t, s.Path(TempName), "new\n")

	err := s.Replace("custom_foods.csv", TempName)
	if !errors.Is(err, model.ErrIO) {
		t.Fatalf("Replace error = %v, want ErrIO", err)
	}
	if got := readFile(t, s.Path(TempName)); got != "new\n" {
		t.Errorf("source should be untouched, got %q", got)
	}
}

func TestReplace_MissingSourceRestoresBackup(t *testing.T) {
	s := newStore(t)
	writeFile(t, s.Path("custom_foods.csv"), "old\n")

	err := s.Replace("custom_foods.csv", TempName)
	if !errors.Is(err, model.ErrIO) {
		t.Fatalf("Replace error = %v, want ErrIO", err)
	}
	if got := readFile(t, s.Path("custom_foods.csv")); got != "old\n" {
		t.Errorf("original content should be restored, got %q", got)
	}
	if Exists(s.Path(BackupName)) {
		t.Error("backup should have been renamed back")
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("first EnsureDir: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("second EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "user")
	writeFile(t, blocker, "x")

	if err := EnsureDir(blocker); !errors.Is(err, model.ErrIO) {
		t.Fatalf("EnsureDir over a file = %v, want ErrIO", err)
	}
}

func TestUserDirCreatesDirectory(t *testing.T) {
	s := newStore(t)
	dir, err := s.UserDir()
	if err != nil {
		t.Fatalf("UserDir: %v", err)
	}
	if dir != filepath.Join(s.Root, UserDirName) {
		t.Errorf("UserDir = %s", dir)
	}
	if !Exists(dir) {
		t.Error("user dir not created")
	}
	if s.UserPath("goals.csv") != filepath.Join(dir, "goals.csv") {
		t.Errorf("UserPath = %s", s.UserPath("goals.csv"))
	}
}
