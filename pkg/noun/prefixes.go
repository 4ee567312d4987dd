package noun

import (
	"fmt"
	"strings"
)

// PrefixSet selects the global candidate table used when no class is
// supplied.
type PrefixSet int

const (
	// PrefixSetFull includes the consonant-initial variants that appear
	// when the initial vowel is dropped (e.g. "zin", "si", "lw", "m").
	PrefixSetFull PrefixSet = iota

	// PrefixSetVowelInitial is exactly the union of the catalog forms.
	PrefixSetVowelInitial
)

// Both tables are ordered by descending length so that the longest
// possible match is always attempted first. Ties keep their literal order.
var (
	fullPrefixes = []string{
		// 4
		"izin", "izim",
		// 3
		"zin", "zim",
		"iin", "iim", "isi", "izi", "ili", "ama", "imi", "aba", "ulu", "ulw", "ubu", "uku",
		// 2
		"si", "zi", "li", "ma", "mi", "ba", "lu", "lw", "bu", "ku",
		"um", "oo", "is", "iz", "in", "im", "ii",
		// 1
		"m", "s", "z", "n",
		"u", "i",
	}

	vowelInitialPrefixes = []string{
		"izin",
		"iin", "iim", "isi", "izi", "ili", "ama", "imi", "aba", "ulu", "ubu", "uku",
		"um", "oo", "is", "iz", "in", "im", "ii",
		"u", "i",
	}
)

var prefixSetNames = map[PrefixSet]string{
	PrefixSetFull:         "full",
	PrefixSetVowelInitial: "vowel-initial",
}

// Candidates returns a copy of the table for s.
func (s PrefixSet) Candidates() []string {
	src := s.table()
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func (s PrefixSet) table() []string {
	if s == PrefixSetVowelInitial {
		return vowelInitialPrefixes
	}
	return fullPrefixes
}

func (s PrefixSet) String() string {
	if name, ok := prefixSetNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PrefixSet(%d)", int(s))
}

// ParsePrefixSet decodes "full" or "vowel-initial".
func ParsePrefixSet(name string) (PrefixSet, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	for set, n := range prefixSetNames {
		if n == key {
			return set, nil
		}
	}
	return PrefixSetFull, fmt.Errorf("unknown prefix set: %q", name)
}

func (s PrefixSet) MarshalText() ([]byte, error) {
	if _, ok := prefixSetNames[s]; !ok {
		return nil, fmt.Errorf("unknown prefix set: %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *PrefixSet) UnmarshalText(text []byte) error {
	v, err := ParsePrefixSet(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
