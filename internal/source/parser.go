package source

import (
	"github.com/theirongolddev/foodinme/internal/ledger"
	"github.com/theirongolddev/foodinme/internal/model"
)

// ParseResult holds the aggregate of one ledger file.
type ParseResult struct {
	Stats model.DayStats
	Err   error
}

// ParseFile aggregates a discovered ledger file with its per-item breakdown.
func ParseFile(df DiscoveredFile) ParseResult {
	agg, err := ledger.AggregateFile(df.Path, true)
	if err != nil {
		return ParseResult{Err: err}
	}
	return ParseResult{Stats: model.DayStats{
		Date:     df.Date,
		FilePath: df.Path,
		Entries:  agg.Entries,
		Total:    agg.Total,
		Items:    agg.Items,
	}}
}
