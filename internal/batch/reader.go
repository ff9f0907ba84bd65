// Package batch reads vocabulary import files.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/vocabmt/internal/vocabulary"
)

// ReadFile reads vocabulary entries from filename.
// Supported line format:
//   - "term = definition" (the first '=' separates the two)
//   - "# comment" and blank lines are ignored
//
// Lines without '=' or with an empty side are skipped.
func ReadFile(filename string) ([]vocabulary.Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads vocabulary entries from r
func Parse(r io.Reader) ([]vocabulary.Entry, error) {
	var entries []vocabulary.Entry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		term, definition, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		term = strings.TrimSpace(term)
		definition = strings.TrimSpace(definition)
		if term == "" || definition == "" {
			continue
		}

		entries = append(entries, vocabulary.Entry{Term: term, Definition: definition})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan vocabulary file: %w", err)
	}

	return entries, nil
}
