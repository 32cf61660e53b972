// Package wordlist reads plain-text word lists: one word per line, UTF-8.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

var (
	// ErrEmpty is returned when a list contains no words.
	ErrEmpty = errors.New("wordlist: no words")

	// ErrMalformed is returned when a line is not valid UTF-8.
	ErrMalformed = errors.New("wordlist: malformed")
)

const bom = "\ufeff"

// Load reads the word list at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: cannot open %s: %w", path, err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Parse reads one word per line from r. Surrounding whitespace is trimmed,
// blank lines and a leading byte order mark are skipped, and repeated words
// keep only their first occurrence.
func Parse(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", ErrMalformed, lineNo)
		}

		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read failed at line %d: %w", lineNo+1, err)
	}

	words = lo.Uniq(words)
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}
