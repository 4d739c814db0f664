// Package langid guesses a language tag for tweets that arrive without one.
package langid

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua language detector behind the tag format the corpus
// uses (lowercase ISO 639-1, matching Twitter's lang field).
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over all languages lingua supports. Building
// is expensive, so the compiler shares one instance across workers; detection
// itself is safe for concurrent use.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Detect returns the lowercase ISO 639-1 code for text, or false when lingua
// cannot settle on a language.
func (d *Detector) Detect(text string) (string, bool) {
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}
