package normalize

import (
	"strings"
	"unicode/utf8"
)

// dropByte reports whether an ASCII byte should be removed from prompt input.
// Tabs and line breaks survive, every other control byte and DEL go
func dropByte(b byte) bool {
	if b >= 0x20 && b != 0x7F {
		return false
	}
	return b != '\n' && b != '\r' && b != '\t'
}

// Sanitize strips control characters that would leak into a model prompt:
// ASCII controls (keeping '\n', '\r', '\t'), DEL, the C1 range
// U+0080..U+009F, and invalid UTF-8 bytes.
// Returns s unchanged when it is already clean
func Sanitize(s string) string {
	if s == "" {
		return s
	}

	// scan for the first offending byte so clean input costs no allocation
	dirty := -1
scan:
	for i := 0; i < len(s); {
		b := s[i]
		if b < 0x80 {
			if dropByte(b) {
				dirty = i
				break scan
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || (r >= 0x80 && r <= 0x9F) {
			dirty = i
			break scan
		}
		i += size
	}
	if dirty < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:dirty])

	for i := dirty; i < len(s); {
		c := s[i]
		if c < 0x80 {
			if !dropByte(c) {
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++ // invalid byte, drop it
			continue
		}
		if r >= 0x80 && r <= 0x9F {
			i += size // C1 control, drop it
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}

	return b.String()
}
