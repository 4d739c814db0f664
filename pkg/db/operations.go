package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtnitsch/tweet-corpus/pkg/corpus"
)

// WordCount is one row of a run's frequency table.
type WordCount struct {
	Word  string
	Count uint64
}

// InsertRun records a compile invocation and returns its run_id.
func (db *DB) InsertRun(inputDir string, fileCount int, pruneThreshold uint64) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (input_dir, file_count, prune_threshold)
		VALUES (?, ?, ?)
	`, inputDir, fileCount, pruneThreshold)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// InsertLanguageMap stores a finished frequency table under runID in a single
// transaction.
func (db *DB) InsertLanguageMap(runID int64, languages corpus.LanguageMap) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO word_counts (run_id, language, word, count)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for lang, wordMap := range languages {
		for word, count := range wordMap {
			if _, err := stmt.Exec(runID, lang, word, count); err != nil {
				return fmt.Errorf("failed to insert word count: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit word counts: %w", err)
	}
	return nil
}

// LatestRunID returns the run_id of the most recent run.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("no runs recorded")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query latest run: %w", err)
	}
	return runID, nil
}

// Languages returns the language tags present in a run, alphabetically.
func (db *DB) Languages(runID int64) ([]string, error) {
	rows, err := db.Query(`
		SELECT DISTINCT language FROM word_counts
		WHERE run_id = ? ORDER BY language
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query languages: %w", err)
	}
	defer rows.Close()

	var languages []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, lang)
	}
	return languages, rows.Err()
}

// TopWords returns up to n words of a run's language, most frequent first.
func (db *DB) TopWords(runID int64, language string, n int) ([]WordCount, error) {
	rows, err := db.Query(`
		SELECT word, count FROM word_counts
		WHERE run_id = ? AND language = ?
		ORDER BY count DESC, word ASC
		LIMIT ?
	`, runID, language, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top words: %w", err)
	}
	defer rows.Close()

	var words []WordCount
	for rows.Next() {
		var wc WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan word count: %w", err)
		}
		words = append(words, wc)
	}
	return words, rows.Err()
}
