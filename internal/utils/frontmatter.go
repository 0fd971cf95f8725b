package utils

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

var frontMatterDelim = []byte("---")

// SplitFrontMatter splits a content document into its leading front-matter
// block and the body text. The document must start with a "---" line; the
// header runs until the next "---" line. The delimiters are not included in
// either part.
func SplitFrontMatter(raw []byte) (header []byte, body string, err error) {
	// Normalize line endings so Windows-authored content parses the same
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	trimmed := bytes.TrimLeft(raw, "\n")
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return nil, "", fmt.Errorf("content has no front matter block")
	}

	rest := trimmed[len(frontMatterDelim):]
	if !bytes.HasPrefix(rest, []byte("\n")) {
		return nil, "", fmt.Errorf("malformed front matter opening delimiter")
	}
	rest = rest[1:]

	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, "", fmt.Errorf("front matter block is not terminated")
	}

	header = rest[:end]
	tail := rest[end+len("\n---"):]
	if i := bytes.IndexByte(tail, '\n'); i >= 0 {
		tail = tail[i+1:]
	} else {
		tail = nil
	}

	return header, strings.TrimSpace(string(tail)), nil
}

// EstimateReadTime derives a reading-time label from the body word count at
// the given pace, rounded up to a whole minute with a minimum of one.
func EstimateReadTime(body string, wordsPerMinute int) string {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}
	words := len(strings.Fields(body))
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}
