package lexicon

import (
	"strings"

	"github.com/temporal-IPA/ibizo/pkg/noun"
)

// sniffTabbed detects the tab-separated format:
//
//	<noun>\t<class>
//
// Only the first data line is inspected; comments are skipped.
func sniffTabbed(sniff []byte, isEOF bool) bool {
	line, ok := firstDataLine(sniff)
	if !ok {
		return false
	}
	nounCol, classCol, found := strings.Cut(line, "\t")
	if !found {
		return false
	}
	return strings.TrimSpace(nounCol) != "" && strings.TrimSpace(classCol) != ""
}

// parseTabbedLine parses a single line of the tab-separated format:
//
//	<noun>\t<class>
//	<noun>\t<class>\t<gloss or anything else>
//
// The class column holds a label ("10", "1a") or an alias ("Izin").
// "?", "-" or an empty column mean the class is not known.
func parseTabbedLine(line string) (noun.Entry, error) {
	cols := strings.SplitN(line, "\t", 3)
	e := noun.Entry{Noun: strings.TrimSpace(cols[0])}
	if e.Noun == "" || len(cols) < 2 {
		return e, nil
	}
	label := strings.TrimSpace(cols[1])
	if _, ok := unknownClassMarks[label]; ok {
		return e, nil
	}
	class, err := noun.ParseLabel(label)
	if err != nil {
		return noun.Entry{}, err
	}
	e.Class = class
	return e, nil
}
