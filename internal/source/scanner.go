// Package source discovers and parses per-date ledger files in the user directory.
package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/theirongolddev/foodinme/internal/model"
)

// ScanDir lists the ledger files in userDir. Files whose name is not a
// valid "M-D-YYYY.csv" date (goals.csv, stray files) are skipped. The result
// is sorted oldest first.
func ScanDir(userDir string) ([]DiscoveredFile, error) {
	entries, err := os.ReadDir(userDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []DiscoveredFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		date, ok := DateFromFilename(e.Name())
		if !ok {
			continue
		}
		files = append(files, DiscoveredFile{
			Path: filepath.Join(userDir, e.Name()),
			Date: date,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Date.Before(files[j].Date)
	})
	return files, nil
}

// DateFromFilename extracts the date from a ledger file name such as
// "9-5-2024.csv". Only the unpadded form the ledger writes is accepted, so
// "09-05-2024.csv" is skipped.
func DateFromFilename(name string) (model.Date, bool) {
	if filepath.Ext(name) != ".csv" {
		return model.Date{}, false
	}
	d, err := model.ParseDate(strings.TrimSuffix(name, ".csv"))
	if err != nil || d.Filename() != name {
		return model.Date{}, false
	}
	return d, true
}

// Between returns the files dated within [since, until], inclusive.
func Between(files []DiscoveredFile, since, until model.Date) []DiscoveredFile {
	var out []DiscoveredFile
	for _, f := range files {
		if f.Date.Before(since) || until.Before(f.Date) {
			continue
		}
		out = append(out, f)
	}
	return out
}
