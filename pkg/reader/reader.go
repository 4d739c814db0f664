// Package reader decodes bzip2-compressed, newline-delimited tweet dumps.
package reader

import (
	"compress/bzip2"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtnitsch/tweet-corpus/models"
)

// ReadFile decompresses an entire dump file into memory and decodes it line
// by line. A line that is not valid JSON is skipped; only an open or
// decompression failure fails the file as a whole.
func ReadFile(path string) ([]models.Tweet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	contents, err := io.ReadAll(bzip2.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}

	var tweets []models.Tweet
	for _, line := range strings.Split(string(contents), "\n") {
		if line == "" {
			continue
		}
		var tweet models.Tweet
		if err := json.Unmarshal([]byte(line), &tweet); err != nil {
			continue
		}
		tweets = append(tweets, tweet)
	}
	return tweets, nil
}
