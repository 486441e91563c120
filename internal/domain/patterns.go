package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPatternList is returned for configured lists that cannot be used
// as exact names or extensions.
var ErrInvalidPatternList = errors.New("invalid pattern list")

// forbiddenPatternChars would turn an exact name into a path or a wildcard.
const forbiddenPatternChars = `/\*?[]{}`

// ParseList splits raw on separator. Consecutive separators yield empty
// tokens and tokens are not trimmed; consumers decide how to treat both.
func ParseList(raw string, separator rune) []string {
	return strings.Split(raw, string(separator))
}

// ValidateList checks that every non-empty token of raw is a plain name.
func ValidateList(raw string, separator rune) error {
	for i, token := range ParseList(raw, separator) {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}

		if name == "." || name == ".." {
			return fmt.Errorf("%w: entry %d %q is a relative path", ErrInvalidPatternList, i+1, name)
		}

		if strings.ContainsAny(name, forbiddenPatternChars) {
			return fmt.Errorf("%w: entry %d %q contains a path separator or wildcard", ErrInvalidPatternList, i+1, name)
		}
	}

	return nil
}
