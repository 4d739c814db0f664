package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per compile invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    input_dir TEXT NOT NULL,
    file_count INTEGER NOT NULL,
    prune_threshold INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Word counts: the pruned frequency table of one run
CREATE TABLE IF NOT EXISTS word_counts (
    run_id INTEGER NOT NULL,
    language TEXT NOT NULL,
    word TEXT NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (run_id, language, word),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_word_counts_language ON word_counts(run_id, language);
CREATE INDEX IF NOT EXISTS idx_word_counts_count ON word_counts(run_id, language, count DESC);
`
