// Package slugx turns arbitrary human input (client names, property names,
// accented French labels) into lowercase URL-safe slugs.
package slugx

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength caps slugs so derived tokens stay comfortably below column limits.
const MaxLength = 50

// stripMarks decomposes characters and drops combining marks, so "é" becomes
// "e" and "ü" becomes "u" before the ASCII filter runs.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts s into a slug: lowercased, diacritics stripped, every run of
// non-alphanumeric characters collapsed into a single hyphen, leading and
// trailing hyphens removed, capped at MaxLength. An input with no usable
// characters yields the empty string; callers that need a non-empty base must
// substitute their own default.
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	out := b.String()
	if len(out) > MaxLength {
		out = strings.TrimRight(out[:MaxLength], "-")
	}
	return out
}
