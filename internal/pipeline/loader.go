// Package pipeline loads ledger files into per-day stats and aggregates them.
package pipeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/foodinme/internal/model"
	"github.com/theirongolddev/foodinme/internal/source"
)

// LoadResult holds the output of the full data loading pipeline.
type LoadResult struct {
	Days        []model.DayStats
	TotalFiles  int
	ParsedFiles int
	FileErrors  []FileError
}

// FileError names a ledger file that could not be aggregated.
type FileError struct {
	Path string
	Err  error
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load discovers and aggregates every ledger file in userDir.
// It uses a bounded worker pool for parallel parsing.
func Load(userDir string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanDir(userDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", userDir, err)
	}

	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	results := parseAll(files, func(n int) {
		if progressFn != nil {
			progressFn(n, len(files))
		}
	})

	for i, pr := range results {
		if pr.Err != nil {
			result.FileErrors = append(result.FileErrors, FileError{Path: files[i].Path, Err: pr.Err})
			continue
		}
		result.ParsedFiles++
		result.Days = append(result.Days, pr.Stats)
	}

	return result, nil
}

// parseAll aggregates files on a bounded worker pool. Results are indexed
// like files. done receives the running count of finished files.
func parseAll(files []source.DiscoveredFile, done func(n int)) []source.ParseResult {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]source.ParseResult, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = source.ParseFile(files[idx])
				done(int(processed.Add(1)))
			}
		}()
	}

	wg.Wait()
	return results
}
