// Package corpus holds the per-language word frequency tables and the
// aggregator that accumulates them across files.
package corpus

import "sync"

// WordMap maps a normalized word to its occurrence count.
type WordMap map[string]uint64

// LanguageMap maps a language tag to that language's word counts. The same
// shape serves as both the per-file local table and the shared global table.
type LanguageMap map[string]WordMap

// Add increments the count for word under lang, creating entries on first sight.
func (m LanguageMap) Add(lang, word string, count uint64) {
	wordMap, ok := m[lang]
	if !ok {
		wordMap = make(WordMap)
		m[lang] = wordMap
	}
	wordMap[word] += count
}

// Aggregator owns the global language map. Many workers merge their local
// tables into it concurrently; each merge is atomic with respect to the others.
type Aggregator struct {
	mu        sync.RWMutex
	languages LanguageMap
}

// NewAggregator returns an aggregator with an empty global table.
func NewAggregator() *Aggregator {
	return &Aggregator{languages: make(LanguageMap)}
}

// Merge folds a per-file local table into the global table, summing counts.
// Safe for concurrent use.
func (a *Aggregator) Merge(local LanguageMap) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for lang, wordMap := range local {
		for word, count := range wordMap {
			a.languages.Add(lang, word, count)
		}
	}
}

// Prune removes every word whose global count is strictly below threshold,
// independently per language. It must only run once all merges have landed;
// the compiler enforces that by joining its workers first.
func (a *Aggregator) Prune(threshold uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, wordMap := range a.languages {
		for word, count := range wordMap {
			if count < threshold {
				delete(wordMap, word)
			}
		}
	}
}

// Into hands the global table to the caller. The aggregator must not be used
// afterwards.
func (a *Aggregator) Into() LanguageMap {
	a.mu.Lock()
	defer a.mu.Unlock()
	languages := a.languages
	a.languages = nil
	return languages
}
