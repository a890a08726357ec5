package codec

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnbalanced is returned by Split for text that is not a sequence of
// complete records.
var ErrUnbalanced = errors.New("unbalanced record text")

// Concat writes records back to back. Empty records are skipped.
func Concat(records []string) string {
	var b strings.Builder

	for _, r := range records {
		b.WriteString(r)
	}

	return b.String()
}

// Split cuts concatenated records apart by matching braces. Braces and
// quotes inside string literals do not count, and escapes inside strings
// are honored, including escaped backslashes right before a quote.
func Split(text string) ([]string, error) {
	var (
		records  []string
		depth    int
		start    int
		inString bool
		escaped  bool
	)

	for i, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}

			continue
		}

		switch {
		case r == '"':
			if depth == 0 {
				return nil, ErrUnbalanced
			}

			inString = true
		case r == '{':
			if depth == 0 {
				start = i
			}

			depth++
		case r == '}':
			depth--

			switch {
			case depth < 0:
				return nil, ErrUnbalanced
			case depth == 0:
				records = append(records, text[start:i+1])
			}
		case depth == 0 && !unicode.IsSpace(r):
			return nil, ErrUnbalanced
		}
	}

	if depth != 0 || inString {
		return nil, ErrUnbalanced
	}

	return records, nil
}
