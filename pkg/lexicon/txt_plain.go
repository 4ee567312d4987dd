package lexicon

import (
	"strings"

	"github.com/temporal-IPA/ibizo/pkg/noun"
)

// sniffPlain detects a bare word list: the first data line holds no tab.
func sniffPlain(sniff []byte, isEOF bool) bool {
	line, ok := firstDataLine(sniff)
	if !ok {
		return false
	}
	return !strings.Contains(line, "\t")
}

// parsePlainLine takes the whole line as a noun of unknown class.
func parsePlainLine(line string) (noun.Entry, error) {
	return noun.Entry{Noun: strings.TrimSpace(line)}, nil
}
