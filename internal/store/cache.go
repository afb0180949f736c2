// Package store provides a SQLite-backed cache of aggregated ledger days.
// The CSV files stay authoritative; the cache only saves re-parsing files
// whose mtime and size have not changed.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/foodinme/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed day caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveDay stores an aggregated day, its item breakdown and the file
// tracking info in one transaction.
func (c *Cache) SaveDay(d model.DayStats, mtimeNs, sizeBytes int64) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO days
		(file_path, day, entries, calories, carbs, fats, proteins, file_mtime_ns, file_size, parsed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.FilePath, d.Date.String(), d.Entries,
		d.Total.Calories, d.Total.Carbs, d.Total.Fats, d.Total.Proteins,
		mtimeNs, sizeBytes, now,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM day_items WHERE file_path = ?", d.FilePath); err != nil {
		return err
	}
	for i, it := range d.Items {
		_, err = tx.Exec(`INSERT INTO day_items
			(file_path, position, name, calories, carbs, fats, proteins)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.FilePath, i, it.Name,
			it.Nutrition.Calories, it.Nutrition.Carbs, it.Nutrition.Fats, it.Nutrition.Proteins,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes)
		VALUES (?, ?, ?)`, d.FilePath, mtimeNs, sizeBytes)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadAllDays reads every cached day with its items in insertion order.
func (c *Cache) LoadAllDays() ([]model.DayStats, error) {
	rows, err := c.db.Query(`SELECT
		file_path, day, entries, calories, carbs, fats, proteins
		FROM days ORDER BY file_path`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var days []model.DayStats
	for rows.Next() {
		var d model.DayStats
		var day string
		err := rows.Scan(&d.FilePath, &day, &d.Entries,
			&d.Total.Calories, &d.Total.Carbs, &d.Total.Fats, &d.Total.Proteins)
		if err != nil {
			return nil, err
		}
		d.Date, err = model.ParseDate(day)
		if err != nil {
			// A row we could not have written; skip it and let a rescan fix it.
			continue
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := c.db.Query(`SELECT
		file_path, name, calories, carbs, fats, proteins
		FROM day_items ORDER BY file_path, position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = itemRows.Close() }()

	dayIdx := make(map[string]int, len(days))
	for i, d := range days {
		dayIdx[d.FilePath] = i
	}

	for itemRows.Next() {
		var path string
		var it model.ItemTotal
		err := itemRows.Scan(&path, &it.Name,
			&it.Nutrition.Calories, &it.Nutrition.Carbs, &it.Nutrition.Fats, &it.Nutrition.Proteins)
		if err != nil {
			return nil, err
		}
		if idx, ok := dayIdx[path]; ok {
			days[idx].Items = append(days[idx].Items, it)
		}
	}

	return days, itemRows.Err()
}

// DeleteDay removes a cached day and its items.
func (c *Cache) DeleteDay(filePath string) error {
	_, err := c.db.Exec("DELETE FROM days WHERE file_path = ?", filePath)
	return err
}

// DeleteFileTracker removes a file tracking entry.
func (c *Cache) DeleteFileTracker(filePath string) error {
	_, err := c.db.Exec("DELETE FROM file_tracker WHERE file_path = ?", filePath)
	return err
}

// DayCount returns the number of cached days.
func (c *Cache) DayCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM days").Scan(&count)
	return count, err
}
