package lexicon

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/temporal-IPA/ibizo/pkg/noun"
)

// WriteGob encodes entries in the format read by GobLoader.
func WriteGob(w io.Writer, entries []noun.Entry) error {
	if err := gob.NewEncoder(w).Encode(entries); err != nil {
		return fmt.Errorf("encode gob: %w", err)
	}
	return nil
}

// WriteTabbed writes entries in the tab-separated text format, using
// "?" for nouns of unknown class.
func WriteTabbed(w io.Writer, entries []noun.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		label := e.Class.Number()
		if label == "" {
			label = "?"
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", e.Noun, label); err != nil {
			return err
		}
	}
	return bw.Flush()
}
