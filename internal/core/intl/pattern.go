package intl

import (
	"strings"
	"unicode/utf8"
)

// token is either a run of one pattern letter or literal text
type token struct {
	field byte
	width int
	text  string
}

type pattern []token

// interval is a range pattern split where its first field repeats
type interval struct {
	first, second pattern
}

func isPatternLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// parsePattern tokenises CLDR pattern syntax: letter runs are fields, text in
// single quotes is literal and '' is an apostrophe
func parsePattern(s string) pattern {
	var (
		out pattern
		lit strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, token{text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\'':
			if i+1 < len(s) && s[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			i++
			for i < len(s) {
				if s[i] == '\'' {
					if i+1 < len(s) && s[i+1] == '\'' {
						lit.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				lit.WriteByte(s[i])
				i++
			}
		case isPatternLetter(c):
			flush()
			j := i
			for j < len(s) && s[j] == c {
				j++
			}
			out = append(out, token{field: c, width: j - i})
			i = j
		default:
			_, size := utf8.DecodeRuneInString(s[i:])
			lit.WriteString(s[i : i+size])
			i += size
		}
	}
	flush()
	return out
}

// fieldClass folds letters that name the same calendar field
func fieldClass(c byte) byte {
	switch c {
	case 'L':
		return 'M'
	case 'H', 'k', 'K':
		return 'h'
	}
	return c
}

// splitInterval cuts p at the first field seen twice; the literal before it
// stays with the first half
func splitInterval(p pattern) (interval, bool) {
	seen := make(map[byte]bool, len(p))
	for i, tok := range p {
		if tok.field == 0 {
			continue
		}
		c := fieldClass(tok.field)
		if seen[c] {
			return interval{first: p[:i], second: p[i:]}, true
		}
		seen[c] = true
	}
	return interval{}, false
}
