package noun

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"
)

var _ textual.Processor = (*TextualProcessor)(nil)

// TextualProcessor strips noun-class prefixes inside a textual pipeline.
//
// It implements textual.Processor so that it can be used directly in
// textual.Chain, Router or IOReaderProcessor. Each incoming Result is one
// noun list line, "<noun>" or "<noun>\t<class>", where '#' starts a
// comment. The outgoing Result keeps the original Text and carries a
// single Fragment spanning the noun, whose Transformed value is the base;
// Render therefore yields the line with the prefix removed.
//
// Lines without a noun are forwarded with no fragment. A class column
// that names no class sets Result.Error.
type TextualProcessor struct {
	extractor *Extractor
	// class is used for lines without a class column.
	class NounClass
}

// NewTextualProcessor wraps e. Lines that carry no class column use class.
func NewTextualProcessor(e *Extractor, class NounClass) *TextualProcessor {
	if e == nil {
		e = NewExtractor()
	}
	return &TextualProcessor{extractor: e, class: class}
}

// Apply implements the textual.Processor interface.
func (p *TextualProcessor) Apply(ctx context.Context, in <-chan textual.Result) <-chan textual.Result {
	if ctx == nil {
		ctx = context.Background()
	}

	out := make(chan textual.Result)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				// Drain upstream so that senders do not block.
				for range in {
				}
				return
			case res, ok := <-in:
				if !ok {
					return
				}

				processed := p.process(res)

				select {
				case <-ctx.Done():
					return
				case out <- processed:
				}
			}
		}
	}()

	return out
}

// Result rebuilds the extraction Result of a line emitted by Apply. It
// reports false for lines that carried no noun.
func (p *TextualProcessor) Result(tr textual.Result) (Result, bool) {
	if len(tr.Fragments) == 0 {
		return Result{}, false
	}
	f := tr.Fragments[0]
	runes := []rune(string(tr.Text))
	if f.Pos < 0 || f.Len <= 0 || f.Pos+f.Len > len(runes) {
		return Result{}, false
	}
	noun := string(runes[f.Pos : f.Pos+f.Len])
	return p.extractor.Extract(noun, NounClass(f.Variant)), true
}

func (p *TextualProcessor) process(res textual.Result) textual.Result {
	out := res
	out.Fragments = make([]textual.Fragment, 0, 1)

	entry, pos, err := p.parseLine(string(res.Text))
	if err != nil {
		out.Error = fmt.Errorf("line %d: %w", res.Index+1, err)
		return out
	}
	if entry.Noun == "" {
		return out
	}

	r := p.extractor.Extract(entry.Noun, entry.Class)
	frag := textual.Fragment{
		Transformed: textual.UTF8String(r.Base),
		Pos:         pos,
		Len:         utf8.RuneCountInString(entry.Noun),
		Variant:     int(entry.Class),
	}
	if r.Matched() {
		frag.Confidence = 1
	}
	out.Fragments = append(out.Fragments, frag)
	return out
}

// parseLine returns the entry of line and the rune offset of its noun.
func (p *TextualProcessor) parseLine(line string) (Entry, int, error) {
	content, _, _ := strings.Cut(line, "#")
	cols := strings.SplitN(content, "\t", 3)
	noun := strings.TrimSpace(cols[0])
	if noun == "" {
		return Entry{}, 0, nil
	}

	e := Entry{Noun: noun, Class: p.class}
	if len(cols) > 1 {
		switch label := strings.TrimSpace(cols[1]); label {
		case "", "?", "-":
		default:
			c, err := ParseLabel(label)
			if err != nil {
				return Entry{}, 0, err
			}
			e.Class = c
		}
	}
	return e, utf8.RuneCountInString(content[:strings.Index(content, noun)]), nil
}
