package lexicon

import (
	"encoding/gob"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/temporal-IPA/ibizo/pkg/noun"
)

// GobLoader handles gob-encoded []noun.Entry lexicons, as written by
// WriteGob.
type GobLoader struct{}

// Kind reports the loader kind identifier for gob lexicons.
func (g *GobLoader) Kind() Kind { return KindGob }

// Sniff identifies gob payloads using binary heuristics: the sniff
// bytes are not valid UTF-8 or contain NUL bytes. This avoids
// misclassifying regular text word lists as gob.
func (g *GobLoader) Sniff(sniff []byte, isEOF bool) bool {
	if len(sniff) == 0 {
		return false
	}
	if !isEOF {
		sniff = trimPartialRune(sniff)
	}
	if !utf8.Valid(sniff) {
		return true
	}
	for _, b := range sniff {
		if b == 0 {
			return true
		}
	}
	return false
}

// trimPartialRune drops a multi-byte rune cut by the end of the sniff
// window.
func trimPartialRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			break
		}
	}
	return b
}

// LoadAll deserializes the whole entry list.
func (g *GobLoader) LoadAll(r io.Reader) ([]noun.Entry, error) {
	var entries []noun.Entry
	if err := gob.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode gob: %w", err)
	}
	return entries, nil
}

// Load decodes a gob-encoded entry list and emits all entries.
func (g *GobLoader) Load(r io.Reader, emit OnEntryFunc) error {
	entries, err := g.LoadAll(r)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Noun == "" {
			continue
		}
		if err := emit(e); err != nil {
			return err
		}
	}
	return nil
}
