// Package words decides which tokens of a tweet count as real text.
package words

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// quotationMarks covers typographic and CJK quote glyphs in addition to ASCII.
	quotationMarks = "„“‟”‟’’❝❞〝〞〟＂'‚‘❛❜`\""

	// trimSymbols is the ASCII symbol punctuation stripped from token edges.
	trimSymbols = "!$%^&*()_-+=<,>.?/{}[]\\|~\t\r\n"

	// rejectSymbols is the set a token must consist entirely of to be rejected.
	// Unlike trimSymbols it includes markers and quotes that never get trimmed.
	rejectSymbols = "!@#$%^&*()_-+=<,>.?/'\"{[}]\\|`~\t\r\n"
)

// zalgoMinRatio is the fraction of combining marks above which a token is
// considered zalgo noise rather than text.
const zalgoMinRatio = 0.75

var urlPrefixes = []string{"http://", "https://", "ftp://", "sftp://", "data:"}

// Cleanup strips noise from both ends of a token: first whitespace, then
// quotation marks, then symbol punctuation. Each class is trimmed
// independently and only from the outer edges.
func Cleanup(word string) string {
	word = strings.TrimFunc(word, unicode.IsSpace)
	word = strings.Trim(word, quotationMarks)
	return strings.Trim(word, trimSymbols)
}

// Qualifies reports whether a cleaned token is worth counting. A token is
// rejected when any of the noise checks below matches.
func Qualifies(word string) bool {
	switch {
	// Empty or short strings
	case utf8.RuneCountInString(word) <= 1:
		return false
	// Mentions
	case strings.HasPrefix(word, "@"):
		return false
	// Hashtags
	case strings.HasPrefix(word, "#"):
		return false
	// URLs
	case isURL(word):
		return false
	// Numeric strings
	case allRunes(word, unicode.IsNumber):
		return false
	// Emoji strings
	case allRunes(word, isEmoji):
		return false
	// Control character strings
	case allRunes(word, isASCIIControl):
		return false
	// HTML escapes
	case strings.HasPrefix(word, "&") && strings.HasSuffix(word, ";"):
		return false
	// Symbol strings
	case allRunes(word, isRejectSymbol):
		return false
	// Zalgo
	case isZalgo(word):
		return false
	// Retweet marker
	case word == "RT":
		return false
	}
	return true
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// isURL matches well-formed absolute URLs plus a handful of literal prefixes
// that catch malformed-but-recognizable URLs the strict parser rejects.
func isURL(s string) bool {
	if u, err := url.Parse(s); err == nil && u.Scheme != "" {
		return true
	}
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// isEmoji matches the emoji block U+1F600-U+1F64F and the fitzpatrick skin
// tone modifiers U+1F3FB-U+1F3FF.
func isEmoji(r rune) bool {
	return (r >= 0x1F3FB && r <= 0x1F3FF) || (r >= 0x1F600 && r <= 0x1F64F)
}

func isASCIIControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}

func isRejectSymbol(r rune) bool {
	return strings.ContainsRune(rejectSymbols, r)
}

// isZalgo reports whether combining marks make up more than zalgoMinRatio of
// the token's runes.
func isZalgo(s string) bool {
	var total, combining int
	for _, r := range s {
		total++
		if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
			combining++
		}
	}
	if total == 0 {
		return false
	}
	return float64(combining)/float64(total) > zalgoMinRatio
}
