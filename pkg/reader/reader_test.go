package reader

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dtnitsch/tweet-corpus/models"
)

func TestReadFile(t *testing.T) {
	// tweets.bz2 holds five lines: a record with extra fields, a malformed
	// line, a second record, a blank line, and a third record.
	tweets, err := ReadFile(filepath.Join("testdata", "tweets.bz2"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	want := []models.Tweet{
		{Lang: "en", Text: "hello world hello"},
		{Lang: "de", Text: "hallo welt"},
		{Lang: "en", Text: "@bob hello"},
	}
	if !reflect.DeepEqual(tweets, want) {
		t.Errorf("ReadFile = %v, want %v", tweets, want)
	}
}

func TestReadFileCorrupt(t *testing.T) {
	if _, err := ReadFile(filepath.Join("testdata", "corrupt.bz2")); err == nil {
		t.Error("expected error for corrupt bzip2 stream, got nil")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join("testdata", "no-such-file.bz2")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
