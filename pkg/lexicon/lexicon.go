// Package lexicon loads and merges noun lists to be stripped in batch.
//
// It supports multiple input formats via pluggable Loader
// implementations that are selected by sniffing the first bytes of each
// source, and exposes a functional API for line-based textual formats.
package lexicon

import "github.com/temporal-IPA/ibizo/pkg/noun"

// Lexicon is an ordered collection of nouns and their known classes.
//
// Nouns keep the position of their first appearance. A noun listed
// without a class is recorded with noun.Unknown until a source gives it
// a real class.
type Lexicon struct {
	order   []string
	classes map[string][]noun.NounClass

	// preloaded holds the nouns brought by previously loaded sources.
	preloaded map[string]struct{}
}

// New creates an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{
		classes:   make(map[string][]noun.NounClass),
		preloaded: make(map[string]struct{}),
	}
}

// Len returns the number of entries (noun, class pairs).
func (l *Lexicon) Len() int {
	n := 0
	for _, cs := range l.classes {
		n += len(cs)
	}
	return n
}

// Nouns returns the distinct nouns in first-seen order.
func (l *Lexicon) Nouns() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Classes returns the classes recorded for n.
func (l *Lexicon) Classes(n string) []noun.NounClass {
	cs := l.classes[n]
	out := make([]noun.NounClass, len(cs))
	copy(out, cs)
	return out
}

// Entries flattens the lexicon, one Entry per (noun, class) pair.
func (l *Lexicon) Entries() []noun.Entry {
	out := make([]noun.Entry, 0, len(l.order))
	for _, n := range l.order {
		for _, c := range l.classes[n] {
			out = append(out, noun.Entry{Noun: n, Class: c})
		}
	}
	return out
}

// Add records e with append semantics.
func (l *Lexicon) Add(e noun.Entry) {
	cs, exists := l.classes[e.Noun]
	if !exists {
		l.order = append(l.order, e.Noun)
	}
	for _, c := range cs {
		if c == e.Class {
			return
		}
	}
	switch {
	case e.Class == noun.Unknown && len(cs) > 0:
		// A known class already says more.
		return
	case len(cs) == 1 && cs[0] == noun.Unknown:
		l.classes[e.Noun] = []noun.NounClass{e.Class}
	default:
		l.classes[e.Noun] = append(cs, e.Class)
	}
}

// reset drops the classes of n but keeps its position.
func (l *Lexicon) reset(n string) {
	if _, ok := l.classes[n]; ok {
		l.classes[n] = nil
	}
}
