package game

import (
	"sort"
	"strings"
)

// Modifiers is an immutable set of two letter modifier codes.
type Modifiers struct {
	codes []string
}

// ParseModifiers accepts "SS,PM", "SS PM" and "SSPM".
func ParseModifiers(s string) Modifiers {
	fields := strings.FieldsFunc(strings.ToUpper(s), func(r rune) bool {
		return r == ',' || r == ' ' || r == ';' || r == '\t'
	})
	seen := map[string]bool{}
	codes := []string{}
	for _, f := range fields {
		parts := []string{f}
		if len(f) > 2 && len(f)%2 == 0 {
			parts = parts[:0]
			for i := 0; i < len(f); i += 2 {
				parts = append(parts, f[i:i+2])
			}
		}
		for _, p := range parts {
			if !seen[p] {
				seen[p] = true
				codes = append(codes, p)
			}
		}
	}
	sort.Strings(codes)
	return Modifiers{codes: codes}
}

func NewModifiers(codes ...string) Modifiers {
	return ParseModifiers(strings.Join(codes, ","))
}

func (m Modifiers) Has(code string) bool {
	code = strings.ToUpper(code)
	i := sort.SearchStrings(m.codes, code)
	return i < len(m.codes) && m.codes[i] == code
}

// HasAny reports whether at least one of codes is active.
func (m Modifiers) HasAny(codes []string) bool {
	for _, c := range codes {
		if m.Has(c) {
			return true
		}
	}
	return false
}

func (m Modifiers) Codes() []string {
	return append([]string(nil), m.codes...)
}

func (m Modifiers) Empty() bool {
	return len(m.codes) == 0
}

func (m Modifiers) String() string {
	return strings.Join(m.codes, ",")
}
