package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS days (
    file_path            TEXT PRIMARY KEY,
    day                  TEXT NOT NULL,
    entries              INTEGER NOT NULL,
    calories             REAL NOT NULL,
    carbs                REAL NOT NULL,
    fats                 REAL NOT NULL,
    proteins             REAL NOT NULL,
    file_mtime_ns        INTEGER NOT NULL,
    file_size            INTEGER NOT NULL,
    parsed_at            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS day_items (
    file_path            TEXT NOT NULL REFERENCES days(file_path) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    name                 TEXT NOT NULL,
    calories             REAL NOT NULL,
    carbs                REAL NOT NULL,
    fats                 REAL NOT NULL,
    proteins             REAL NOT NULL,
    PRIMARY KEY (file_path, position)
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_days_day ON days(day);
`
