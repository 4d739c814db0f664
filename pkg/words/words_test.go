package words

import "testing"

func TestQualifies(t *testing.T) {
	tests := []struct {
		name string
		word string
		want bool
	}{
		// Length
		{name: "empty string", word: "", want: false},
		{name: "single ascii char", word: "a", want: false},
		{name: "single multibyte char", word: "ü", want: false},
		{name: "two letters", word: "ab", want: true},

		// Mentions and hashtags
		{name: "mention", word: "@alice", want: false},
		{name: "mention-like word", word: "alice", want: true},
		{name: "hashtag", word: "#topic", want: false},
		{name: "word containing hash", word: "c#", want: true},

		// URLs
		{name: "http url", word: "http://x.co", want: false},
		{name: "https url", word: "https://example.com/path", want: false},
		{name: "ftp url", word: "ftp://host", want: false},
		{name: "data uri", word: "data:text/plain;base64,aGk=", want: false},
		{name: "scheme only parses as url", word: "mailto:bob@example.com", want: false},
		{name: "bare domain is not a url", word: "x.co", want: true},
		{name: "malformed http prefix", word: "http://%zz", want: false},

		// Numbers
		{name: "digits", word: "12345", want: false},
		{name: "arabic-indic digits", word: "٤٢", want: false},
		{name: "digits with letter", word: "12a45", want: true},

		// Emoji
		{name: "single emoji", word: "\U0001F600", want: false},
		{name: "emoji run", word: "\U0001F601\U0001F602", want: false},
		{name: "emoji with fitzpatrick modifier", word: "\U0001F64F\U0001F3FD", want: false},
		{name: "emoji outside block", word: "\U0001F680\U0001F680", want: true},

		// Control characters
		{name: "control run", word: "\x01\x02\x03", want: false},

		// HTML escapes
		{name: "html entity", word: "&amp;", want: false},
		{name: "ampersand word", word: "&other", want: true},

		// Symbol strings
		{name: "only symbols", word: "?!...", want: false},
		{name: "symbols around letter", word: "?a!", want: true},

		// Zalgo
		{name: "zalgo text", word: "é̂̃̄", want: false},
		{name: "stacked marks on two letters", word: "hé̂̃̄̅̆̇", want: false},
		{name: "accented word", word: "café", want: true},

		// Retweet marker
		{name: "retweet marker", word: "RT", want: false},
		{name: "lowercase rt variant", word: "Rt", want: true},

		// Plain words
		{name: "ordinary word", word: "hello", want: true},
		{name: "cyrillic word", word: "привет", want: true},
		{name: "cjk word", word: "你好", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualifies(tt.word); got != tt.want {
				t.Errorf("Qualifies(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "plain word untouched", word: "hello", want: "hello"},
		{name: "surrounding whitespace", word: " hello\t", want: "hello"},
		{name: "ascii quotes", word: "\"hello\"", want: "hello"},
		{name: "typographic quotes", word: "“hello”", want: "hello"},
		{name: "cjk quotes", word: "〝hello〟", want: "hello"},
		{name: "quotes then punctuation", word: "\"hello,\"", want: "hello"},
		{name: "trailing punctuation run", word: "hello!!!", want: "hello"},
		{name: "interior punctuation kept", word: "it's", want: "it's"},
		{name: "interior hyphen kept", word: "so-so", want: "so-so"},
		{name: "markers not trimmed", word: "@alice", want: "@alice"},
		{name: "hash not trimmed", word: "#topic", want: "#topic"},
		{name: "everything trimmed away", word: "\"...\"", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cleanup(tt.word)
			if got != tt.want {
				t.Errorf("Cleanup(%q) = %q, want %q", tt.word, got, tt.want)
			}
			// A second pass over already-clean output must be a no-op.
			if again := Cleanup(got); again != got {
				t.Errorf("Cleanup(Cleanup(%q)) = %q, not idempotent", tt.word, again)
			}
		})
	}
}
