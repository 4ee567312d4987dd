package noun

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Options control how a noun is matched against its candidate prefixes.
type Options struct {
	// CaseInsensitive compares runes under simple Unicode case folding.
	// Offsets are always taken from the original text, so folding never
	// changes what is cut off.
	CaseInsensitive bool `json:"caseInsensitive" yaml:"case_insensitive"`

	// TrimLeadingHyphens removes leading '-' before matching, so that
	// "-ntu" style citation forms are handled. The hyphens are not part
	// of the returned base.
	TrimLeadingHyphens bool `json:"trimLeadingHyphens" yaml:"trim_leading_hyphens"`

	// ConsumeHyphens treats '-' as a morpheme boundary marker: a single
	// hyphen between two prefix letters is skipped while matching
	// ("i-si-to") and a hyphen right after the prefix is consumed
	// ("isi-to" gives "to", not "-to").
	ConsumeHyphens bool `json:"consumeHyphens" yaml:"consume_hyphens"`

	// PrefixSet is the global table used when no class is supplied.
	PrefixSet PrefixSet `json:"prefixSet" yaml:"prefix_set"`
}

// DefaultOptions is the richest behaviour: case-insensitive matching,
// hyphen tolerance and the full prefix table.
var DefaultOptions = Options{
	CaseInsensitive:    true,
	TrimLeadingHyphens: true,
	ConsumeHyphens:     true,
	PrefixSet:          PrefixSetFull,
}

// GuessBase returns noun with its class prefix removed, using
// DefaultOptions.
//
// When class is Unknown every known prefix is tried, longest first.
// Nouns without a recognizable prefix are returned unchanged (after NFC
// normalization).
func GuessBase(noun string, class NounClass) string {
	base, _ := extract(noun, class, DefaultOptions)
	return base
}

// extract normalizes noun and strips the best matching candidate. It
// returns the base and the matched candidate ("" when nothing matched).
func extract(noun string, class NounClass, opts Options) (string, string) {
	word := norm.NFC.String(noun)
	if opts.TrimLeadingHyphens {
		word = strings.TrimLeft(word, "-")
	}

	candidates := class.forms()
	if candidates == nil {
		candidates = opts.PrefixSet.table()
	}
	return trimBestMatch(word, candidates, opts)
}

// trimBestMatch removes the first candidate that prefixes word. The
// candidates must already be ordered longest first.
func trimBestMatch(word string, candidates []string, opts Options) (string, string) {
	for _, prefix := range candidates {
		if prefix == "" {
			continue
		}
		end, ok := matchPrefix(word, prefix, opts)
		if !ok {
			continue
		}
		if opts.ConsumeHyphens && end < len(word) && word[end] == '-' {
			end++
		}
		return word[end:], prefix
	}
	return word, ""
}

// matchPrefix reports whether word starts with prefix and returns the
// byte offset in word right after it.
func matchPrefix(word, prefix string, opts Options) (int, bool) {
	i := 0
	for k, want := range prefix {
		if k > 0 && opts.ConsumeHyphens && i < len(word) && word[i] == '-' {
			i++
		}
		if i >= len(word) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(word[i:])
		if got != want && !(opts.CaseInsensitive && equalFold(got, want)) {
			return 0, false
		}
		i += size
	}
	return i, true
}

// equalFold reports whether a and b are equal under simple case folding.
func equalFold(a, b rune) bool {
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
