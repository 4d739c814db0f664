// Package writer serializes a finished corpus to per-language text files.
package writer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dtnitsch/tweet-corpus/pkg/corpus"
)

type wordCount struct {
	word  string
	count uint64
}

// WriteCorpus writes one twitter_corpus_<lang>.txt file per language into
// outputDir, one "word count" pair per line, most frequent words first. The
// directory is created if it does not exist.
func WriteCorpus(outputDir string, languages corpus.LanguageMap) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for lang, wordMap := range languages {
		if err := writeLanguage(outputDir, lang, wordMap); err != nil {
			return err
		}
	}
	return nil
}

func writeLanguage(outputDir, lang string, wordMap corpus.WordMap) error {
	entries := make([]wordCount, 0, len(wordMap))
	for word, count := range wordMap {
		entries = append(entries, wordCount{word: word, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	path := filepath.Join(outputDir, fmt.Sprintf("twitter_corpus_%s.txt", lang))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range entries {
		fmt.Fprintf(w, "%s %d\n", entry.word, entry.count)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
