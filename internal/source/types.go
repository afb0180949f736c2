package source

import "github.com/theirongolddev/foodinme/internal/model"

// DiscoveredFile represents a per-date ledger file found during directory scanning.
type DiscoveredFile struct {
	Path string
	Date model.Date // parsed from the filename
}
