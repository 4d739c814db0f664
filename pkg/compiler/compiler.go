// Package compiler orchestrates the parallel corpus build: it discovers dump
// files, fans them out across workers, and folds each file's local counts
// into the shared global table.
package compiler

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dtnitsch/tweet-corpus/models"
	"github.com/dtnitsch/tweet-corpus/pkg/corpus"
	"github.com/dtnitsch/tweet-corpus/pkg/reader"
	"github.com/dtnitsch/tweet-corpus/pkg/words"
)

// InputExtension is the file extension recognized during discovery.
const InputExtension = ".bz2"

// progressInterval controls how often a progress line is printed. Reporting
// only, no effect on the resulting table.
const progressInterval = 100

// LanguageDetector fills in a language tag for records that arrive without
// one. Implementations must be safe for concurrent use.
type LanguageDetector interface {
	Detect(text string) (string, bool)
}

// Compiler builds the global language map from a fixed list of dump files.
type Compiler struct {
	files      []string
	aggregator *corpus.Aggregator
	logger     *slog.Logger

	workerCount    int
	pruneThreshold uint64
	detector       LanguageDetector
}

// New creates a compiler over an explicit file list.
func New(files []string, config *models.CompileConfig, logger *slog.Logger) *Compiler {
	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
	}
	return &Compiler{
		files:          files,
		aggregator:     corpus.NewAggregator(),
		logger:         logger,
		workerCount:    workerCount,
		pruneThreshold: config.PruneThreshold,
	}
}

// FromDirectory creates a compiler over every dump file found under root.
// Entries that cannot be traversed are skipped; only an unreadable root is an
// error.
func FromDirectory(root string, config *models.CompileConfig, logger *slog.Logger) (*Compiler, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("cannot enumerate input root: %w", err)
	}

	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), InputExtension) {
			files = append(files, path)
		}
		return nil
	})

	return New(files, config, logger), nil
}

// SetDetector installs a fallback language detector for records without a
// language tag. Without one such records are skipped.
func (c *Compiler) SetDetector(d LanguageDetector) {
	c.detector = d
}

// FileCount returns the number of discovered input files.
func (c *Compiler) FileCount() int {
	return len(c.files)
}

// Compile processes every file concurrently, prunes rare words once all
// merges have landed, and hands the finished table to the caller. Per-file
// failures are logged and skipped, never fatal.
func (c *Compiler) Compile() corpus.LanguageMap {
	fileCount := len(c.files)
	var completed atomic.Int64

	var wg sync.WaitGroup
	jobs := make(chan string, fileCount)

	for w := 1; w <= c.workerCount; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for path := range jobs {
				c.processFile(id, path)

				done := completed.Add(1)
				if done%progressInterval == 0 || done == int64(fileCount) {
					fmt.Printf("%d/%d (%.2f%%)\n", done, fileCount, float64(done)/float64(fileCount)*100)
				}
			}
		}(w)
	}

	for _, path := range c.files {
		jobs <- path
	}
	close(jobs)

	// Pruning before this barrier would discard words that pending merges
	// could still push over the threshold.
	wg.Wait()

	c.aggregator.Prune(c.pruneThreshold)
	return c.aggregator.Into()
}

// processFile decodes one file, aggregates its tweets into a local table,
// and merges that table into the global one.
func (c *Compiler) processFile(id int, path string) {
	tweets, err := reader.ReadFile(path)
	if err != nil {
		c.logger.Warn("skipping file", "worker_id", id, "path", path, "error", err)
		return
	}
	c.aggregator.Merge(c.aggregateTweets(tweets))
}

// aggregateTweets counts qualifying words per language into a table scoped to
// one file. Touching the global table once per file instead of once per token
// keeps lock traffic low.
func (c *Compiler) aggregateTweets(tweets []models.Tweet) corpus.LanguageMap {
	local := make(corpus.LanguageMap)
	for _, tweet := range tweets {
		lang := tweet.Lang
		if lang == "" {
			if c.detector == nil {
				continue
			}
			detected, ok := c.detector.Detect(tweet.Text)
			if !ok {
				continue
			}
			lang = detected
		}

		// Split on the space byte only; other whitespace stays inside
		// tokens and is handled by cleanup.
		for _, token := range strings.Split(tweet.Text, " ") {
			word := words.Cleanup(token)
			if words.Qualifies(word) {
				local.Add(lang, word, 1)
			}
		}
	}
	return local
}
