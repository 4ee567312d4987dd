package lexicon

import (
	"fmt"
	"strings"
)

// MergeMode controls how multiple sources are combined when the same
// noun appears in more than one source.
type MergeMode int

const (
	// MergeModeAppend keeps every distinct (noun, class) pair.
	MergeModeAppend MergeMode = iota

	// MergeModeNoOverride does not change nouns that already exist in
	// the lexicon. New entries are only added for nouns that are not
	// present yet.
	MergeModeNoOverride

	// MergeModeReplace replaces the classes of nouns that already exist
	// in the lexicon. As soon as a noun appears in a new source, its
	// existing classes are discarded and the new ones are kept. The noun
	// keeps its original position.
	MergeModeReplace
)

// Kind identifies the "type" of loader used.
// It is mostly informational but can be useful for debugging or
// for selecting a particular loader in user code.
type Kind string

const (
	// KindGob identifies a gob-encoded []noun.Entry.
	KindGob Kind = "gob"

	// KindTabbed identifies the tab-separated text format:
	//   <noun>\t<class label or alias>[\t<ignored columns>]
	KindTabbed Kind = "tabbed"

	// KindPlain identifies a bare word list, one noun per line.
	KindPlain Kind = "plain"
)

// sniffLen defines the size of the block used to sniff the type.
const sniffLen = 4 * 1024 // a few kilobytes, like http.DetectContentType

// unknownClassMarks are accepted in the class column for "no class".
var unknownClassMarks = map[string]struct{}{
	"":  {},
	"?": {},
	"-": {},
}

var mergeModeNames = map[MergeMode]string{
	MergeModeAppend:     "append",
	MergeModeNoOverride: "no-override",
	MergeModeReplace:    "replace",
}

func (m MergeMode) String() string {
	if name, ok := mergeModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MergeMode(%d)", int(m))
}

// ParseMergeMode decodes "append", "no-override" or "replace".
func ParseMergeMode(name string) (MergeMode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if key == "" {
		return MergeModeAppend, nil
	}
	for m, n := range mergeModeNames {
		if n == key {
			return m, nil
		}
	}
	return MergeModeAppend, fmt.Errorf("unknown merge mode: %q", name)
}
