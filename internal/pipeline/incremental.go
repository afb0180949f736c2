package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/foodinme/internal/source"
	"github.com/theirongolddev/foodinme/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Reparsed  int
	Pruned    int
}

// LoadWithCache discovers ledger files, diffs them against the cache by
// mtime and size, aggregates only the changed ones and drops cache rows for
// files that no longer exist.
func LoadWithCache(userDir string, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	files, err := source.ScanDir(userDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", userDir, err)
	}

	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	result := &CachedLoadResult{LoadResult: LoadResult{TotalFiles: len(files)}}

	var toReparse []source.DiscoveredFile
	unchanged := make(map[string]struct{})
	present := make(map[string]struct{}, len(files))

	for _, f := range files {
		present[f.Path] = struct{}{}
		info, err := os.Stat(f.Path)
		if err != nil {
			continue
		}

		cached, ok := tracked[f.Path]
		if ok && cached.MtimeNs == info.ModTime().UnixNano() && cached.SizeBytes == info.Size() {
			unchanged[f.Path] = struct{}{}
		} else {
			toReparse = append(toReparse, f)
		}
	}

	// Only prune rows under this directory so one cache can serve several data roots.
	for path := range tracked {
		if _, ok := present[path]; ok || filepath.Dir(path) != filepath.Clean(userDir) {
			continue
		}
		if err := cache.DeleteDay(path); err != nil {
			return nil, fmt.Errorf("pruning %s: %w", path, err)
		}
		if err := cache.DeleteFileTracker(path); err != nil {
			return nil, fmt.Errorf("pruning %s: %w", path, err)
		}
		result.Pruned++
	}

	result.CacheHits = len(unchanged)
	result.Reparsed = len(toReparse)

	if len(unchanged) > 0 {
		cached, err := cache.LoadAllDays()
		if err != nil {
			return nil, fmt.Errorf("loading cached days: %w", err)
		}
		for _, d := range cached {
			if _, ok := unchanged[d.FilePath]; ok {
				result.Days = append(result.Days, d)
				result.ParsedFiles++
			}
		}
	}

	if len(toReparse) > 0 {
		results := parseAll(toReparse, func(n int) {
			if progressFn != nil {
				progressFn(n+result.CacheHits, result.TotalFiles)
			}
		})

		for i, pr := range results {
			if pr.Err != nil {
				result.FileErrors = append(result.FileErrors, FileError{Path: toReparse[i].Path, Err: pr.Err})
				continue
			}
			result.ParsedFiles++
			result.Days = append(result.Days, pr.Stats)

			info, err := os.Stat(toReparse[i].Path)
			if err == nil {
				_ = cache.SaveDay(pr.Stats, info.ModTime().UnixNano(), info.Size())
			}
		}
	}

	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "foodinme")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "foodinme")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "days.db")
}
