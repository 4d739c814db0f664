package compiler

import (
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/dtnitsch/tweet-corpus/models"
	"github.com/dtnitsch/tweet-corpus/pkg/corpus"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(threshold uint64) *models.CompileConfig {
	return &models.CompileConfig{
		WorkerCount:    4,
		PruneThreshold: threshold,
	}
}

func TestFromDirectoryDiscovery(t *testing.T) {
	c, err := FromDirectory(filepath.Join("testdata", "input"), testConfig(1), testLogger())
	if err != nil {
		t.Fatalf("FromDirectory failed: %v", err)
	}

	var names []string
	for _, path := range c.files {
		names = append(names, filepath.Base(path))
	}
	sort.Strings(names)

	// notes.txt must be ignored; nested dumps must be found.
	want := []string{"corrupt.bz2", "more.bz2", "posts.bz2"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("discovered %v, want %v", names, want)
	}
}

func TestFromDirectoryMissingRoot(t *testing.T) {
	if _, err := FromDirectory(filepath.Join("testdata", "no-such-root"), testConfig(1), testLogger()); err == nil {
		t.Error("expected error for missing root, got nil")
	}
}

// The input directory holds one file with two english posts, one german file
// in a nested directory, and one corrupt file. The corrupt file must be
// skipped without failing the run.
func TestCompile(t *testing.T) {
	tests := []struct {
		name      string
		threshold uint64
		want      corpus.LanguageMap
	}{
		{
			name:      "threshold one keeps all qualifying words",
			threshold: 1,
			want: corpus.LanguageMap{
				"en": corpus.WordMap{"hello": 2, "world": 1},
				"de": corpus.WordMap{"hallo": 2, "welt": 1},
			},
		},
		{
			name:      "threshold two prunes singletons",
			threshold: 2,
			want: corpus.LanguageMap{
				"en": corpus.WordMap{"hello": 2},
				"de": corpus.WordMap{"hallo": 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromDirectory(filepath.Join("testdata", "input"), testConfig(tt.threshold), testLogger())
			if err != nil {
				t.Fatalf("FromDirectory failed: %v", err)
			}
			if got := c.Compile(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compile() = %v, want %v", got, tt.want)
			}
		})
	}
}

type stubDetector struct {
	lang string
}

func (d stubDetector) Detect(string) (string, bool) {
	return d.lang, d.lang != ""
}

func TestCompileDetectorFallback(t *testing.T) {
	files := []string{filepath.Join("testdata", "nolang.bz2")}

	// Without a detector the untagged record is skipped entirely.
	c := New(files, testConfig(1), testLogger())
	got := c.Compile()
	want := corpus.LanguageMap{"en": corpus.WordMap{"hi": 1, "there": 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() without detector = %v, want %v", got, want)
	}

	// With a detector the record lands under the detected tag.
	c = New(files, testConfig(1), testLogger())
	c.SetDetector(stubDetector{lang: "fr"})
	got = c.Compile()
	want = corpus.LanguageMap{
		"fr": corpus.WordMap{"bonjour": 2},
		"en": corpus.WordMap{"hi": 1, "there": 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() with detector = %v, want %v", got, want)
	}
}
