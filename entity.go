package htmlkit

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/markuptree/htmlkit/internal/entity"
)

// decodeEntities scans s for named, decimal numeric, and hexadecimal
// numeric character references and replaces each with its expansion.
// A reference that fails to resolve (unknown name, bad numeric value, or
// a bare '&' with no valid terminator) is passed through verbatim — the
// decoder never errors and always makes progress.
func decodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] != '&' {
			i++
			continue
		}
		b.WriteString(s[:i])
		s = s[i:]
		i = 0

		if repl, n, ok := decodeOneReference(s); ok {
			b.WriteString(repl)
			s = s[n:]
			i = 0
			continue
		}

		// Bare '&' that doesn't start a valid reference: emit it and
		// move past it so we never get stuck at this position.
		b.WriteByte('&')
		s = s[1:]
		i = 0
	}
	b.WriteString(s)
	return b.String()
}

// decodeOneReference attempts to match a character reference at the start
// of s (which itself starts with '&'). It returns the replacement text,
// the number of bytes of s consumed, and whether a reference matched.
func decodeOneReference(s string) (repl string, n int, ok bool) {
	if len(s) < 2 || s[0] != '&' {
		return "", 0, false
	}

	if s[1] == '#' {
		return decodeNumericReference(s)
	}
	return decodeNamedReference(s)
}

func decodeNamedReference(s string) (repl string, n int, ok bool) {
	j := 1
	for j < len(s) && isAlnum(s[j]) {
		j++
	}
	if j == 1 || j >= len(s) || s[j] != ';' {
		return "", 0, false
	}
	name := s[1:j]
	expansion, found := entity.Table[name]
	if !found {
		return "", 0, false
	}
	return expansion, j + 1, true
}

func decodeNumericReference(s string) (repl string, n int, ok bool) {
	// s[0:2] == "&#"
	rest := s[2:]
	hex := false
	if len(rest) > 0 && (rest[0] == 'x' || rest[0] == 'X') {
		hex = true
		rest = rest[1:]
	}

	j := 0
	for j < len(rest) {
		if hex && isHexDigit(rest[j]) {
			j++
			continue
		}
		if !hex && isAsciiDigit(rest[j]) {
			j++
			continue
		}
		break
	}
	if j == 0 || j >= len(rest) || rest[j] != ';' {
		return "", 0, false
	}

	digits := rest[:j]
	base := 10
	if hex {
		base = 16
	}
	consumed := 2 + j + 1 // "&#" + digits (+ "x") + ";"
	if hex {
		consumed++
	}

	val, err := strconv.ParseUint(digits, base, 32)
	if err != nil || val > utf8.MaxRune {
		return "", 0, false
	}
	r := rune(val)
	if !utf8.ValidRune(r) {
		return "", 0, false
	}
	return string(r), consumed, true
}

func isAlnum(b byte) bool {
	return isAsciiLetter(b) || isAsciiDigit(b)
}
