package lexicon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"

	"github.com/temporal-IPA/ibizo/pkg/noun"
)

// LineParser is a per-line parser for text-based formats.
//
// It receives a single logical line (with surrounding whitespace and
// inline comments already stripped by the loader). If the line should
// be ignored, it can return an Entry with an empty Noun.
type LineParser func(line string) (noun.Entry, error)

// NewLineLoader constructs a Loader that reads a text source line by
// line and delegates actual parsing to the provided LineParser. This
// makes it easy to support additional textual formats (e.g. CSV exports
// of dictionary apps).
func NewLineLoader(
	kind Kind,
	sniff func(sniff []byte, isEOF bool) bool,
	parser LineParser,
) Loader {
	return &lineLoader{
		kind:      kind,
		sniffFunc: sniff,
		parseLine: parser,
	}
}

// lineLoader is a generic implementation for textual formats where
// each entry fits on a single line.
type lineLoader struct {
	kind      Kind
	sniffFunc func(sniff []byte, isEOF bool) bool
	parseLine LineParser
}

func (p *lineLoader) Kind() Kind { return p.kind }

func (p *lineLoader) Sniff(sniff []byte, isEOF bool) bool {
	if p.sniffFunc == nil {
		return false
	}
	return p.sniffFunc(sniff, isEOF)
}

func (p *lineLoader) LoadAll(r io.Reader) ([]noun.Entry, error) {
	var entries []noun.Entry
	err := p.Load(r, func(e noun.Entry) error {
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// Load splits r into lines with a textual.IOReaderProcessor and parses
// each of them. Line numbers come from the textual result index.
func (p *lineLoader) Load(r io.Reader, emit OnEntryFunc) error {
	src := &readErrRecorder{r: r}
	lines := textual.NewIOReaderProcessor(textual.NewChain(), src)
	lines.SetContext(context.Background())
	defer lines.Stop()

	for res := range lines.Start() {
		line := stripComment(string(res.Text))
		if line == "" {
			continue
		}
		e, err := p.parseLine(line)
		if err != nil {
			return fmt.Errorf("(%s): line %d %q: %w", p.kind, res.Index+1, line, err)
		}
		if e.Noun == "" {
			continue
		}
		if err := emit(e); err != nil {
			return err
		}
	}
	return src.err
}

// readErrRecorder keeps the first read error, which the line scanner
// of IOReaderProcessor does not report.
type readErrRecorder struct {
	r   io.Reader
	err error
}

func (e *readErrRecorder) Read(b []byte) (int, error) {
	n, err := e.r.Read(b)
	if err != nil && err != io.EOF && e.err == nil {
		e.err = err
	}
	return n, err
}

// stripComment drops everything from the first '#' and trims the rest.
// Blank and comment-only lines give "".
func stripComment(line string) string {
	line, _, _ = strings.Cut(line, "#")
	return strings.TrimSpace(line)
}

// firstDataLine returns the first line of sniff that is neither blank
// nor a comment.
func firstDataLine(sniff []byte) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(string(sniff)))
	for scanner.Scan() {
		if line := stripComment(scanner.Text()); line != "" {
			return line, true
		}
	}
	return "", false
}
