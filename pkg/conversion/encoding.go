// Package conversion resolves the encodings of noun list sources.
//
// Older Zulu and Xhosa word lists are commonly found in Latin-1 or
// Windows code pages, or exported as UTF-16 by spreadsheet tools. The
// decoding itself is done by textual; this package adds the short names
// people actually type and keeps UTF-8 sources byte-exact.
package conversion

import (
	"io"
	"strings"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"
)

// aliases maps informal names to the canonical names textual knows.
var aliases = map[string]string{
	"":        "utf-8",
	"latin1":  "iso-8859-1",
	"latin-1": "iso-8859-1",
	"latin9":  "iso-8859-15",
	"cp1252":  "windows-1252",
	"utf16le": "utf-16le",
	"utf16be": "utf-16be",
}

// ParseEncoding returns the textual.EncodingID for name, case-insensitively.
// The empty name means UTF-8.
func ParseEncoding(name string) (textual.EncodingID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	return textual.ParseEncoding(key)
}

// NewReader wraps r so that it yields UTF-8.
//
// UTF-8 sources are returned as is: running them through a decoder would
// replace invalid bytes and corrupt binary (gob) lexicons.
func NewReader(r io.Reader, src textual.EncodingID) (io.Reader, error) {
	if src == textual.UTF8 {
		return r, nil
	}
	return textual.NewUTF8Reader(r, src)
}
