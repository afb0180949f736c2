// Package fileutil resolves paths under the foodinme data root and swaps
// files in place through a backup rename.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/foodinme/internal/model"

	"go.uber.org/zap"
)

const (
	// UserDirName holds the per-date ledgers and the goal file.
	UserDirName = "user"
	// BackupName is the intermediate name used by Replace.
	BackupName = "backup.csv"
	// TempName is the scratch file catalog rewrites stream into.
	TempName = "temp.csv"

	dataDirName = "data"
)

// Store resolves every data file relative to Root.
type Store struct {
	Root string
	log  *zap.Logger
}

// New returns a Store rooted at root. A nil logger discards output.
func New(root string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{Root: root, log: log}
}

// DefaultRoot returns the data directory beside the installed executable.
func DefaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return dataDirName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), dataDirName)
}

// Path joins rel onto the data root.
func (s *Store) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

// UserDir returns the directory holding ledgers and goals, creating it if needed.
func (s *Store) UserDir() (string, error) {
	dir := s.Path(UserDirName)
	if err := EnsureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// UserPath joins name onto the user directory without creating anything.
func (s *Store) UserPath(name string) string {
	return filepath.Join(s.Root, UserDirName, name)
}

// EnsureDir creates dir and its parents. A directory created concurrently
// by another process counts as success.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
				return nil
			}
		}
		return model.NewError(model.KindIO, fmt.Sprintf("creating directory %s", dir), err)
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Replace swaps the file at target for the file at source, both relative to
// the root. The original is first renamed to BackupName; if the source
// cannot be moved into place the backup is renamed back.
func (s *Store) Replace(target, source string) error {
	targetPath := s.Path(target)
	sourcePath := s.Path(source)
	backupPath := s.Path(BackupName)

	if err := os.Rename(targetPath, backupPath); err != nil {
		return model.NewError(model.KindIO, fmt.Sprintf("moving %s to %s", target, BackupName), err)
	}
	s.log.Debug("backed up file", zap.String("target", targetPath), zap.String("backup", backupPath))

	if err := os.Rename(sourcePath, targetPath); err != nil {
		if restoreErr := os.Rename(backupPath, targetPath); restoreErr != nil {
			s.log.Warn("restoring backup failed", zap.String("backup", backupPath), zap.Error(restoreErr))
			err = errors.Join(err, restoreErr)
		}
		return model.NewError(model.KindIO, fmt.Sprintf("moving %s to %s", source, target), err)
	}

	if err := os.Remove(backupPath); err != nil {
		return model.NewError(model.KindIO, fmt.Sprintf("removing %s", BackupName), err)
	}
	s.log.Debug("replaced file", zap.String("target", targetPath))
	return nil
}
