package noun

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"
)

func runTextual(t *testing.T, p textual.Processor, input string) []textual.Result {
	t.Helper()
	ioProc := textual.NewIOReaderProcessor(p, strings.NewReader(input))
	ioProc.SetContext(context.Background())

	var out []textual.Result
	for res := range ioProc.Start() {
		out = append(out, res)
	}
	return out
}

func TestTextualProcessorRender(t *testing.T) {
	p := NewTextualProcessor(NewExtractor(), Unknown)
	input := "izinkomo\t10 # cattle\n  Abantu\n\n# comment\nisitsha\tIsi\tdish\nkomo\n"
	want := []string{
		"komo\t10 # cattle",
		"  ntu",
		"",
		"# comment",
		"tsha\tIsi\tdish",
		"komo",
	}

	results := runTextual(t, p, input)
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, res := range results {
		if res.Error != nil {
			t.Fatalf("line %d: unexpected error %v", i+1, res.Error)
		}
		if res.Index != i {
			t.Errorf("result %d has index %d", i, res.Index)
		}
		if got := string(res.Render()); got != want[i] {
			t.Errorf("line %d rendered %q, want %q", i+1, got, want[i])
		}
	}
}

func TestTextualProcessorResult(t *testing.T) {
	p := NewTextualProcessor(NewExtractor(), Isi)
	results := runTextual(t, p, "isitsha\n\nizinkomo\t10\nUkudla\t?\n")

	var got []Result
	for _, res := range results {
		if r, ok := p.Result(res); ok {
			got = append(got, r)
		}
	}
	if len(got) != 3 {
		t.Fatalf("got %d noun results, want 3", len(got))
	}

	if got[0].Noun != "isitsha" || got[0].Class != Isi || got[0].Base != "tsha" || got[0].Prefix != "isi" {
		t.Errorf("unexpected result for isitsha: %+v", got[0])
	}
	if got[1].Class != Izin || got[1].Base != "komo" {
		t.Errorf("class column should win over the default: %+v", got[1])
	}
	// "?" falls back to the processor's default class.
	if got[2].Noun != "Ukudla" || got[2].Class != Isi || got[2].Base != "Ukudla" {
		t.Errorf("unexpected result for Ukudla: %+v", got[2])
	}
	if _, ok := p.Result(results[1]); ok {
		t.Error("blank line should not yield a result")
	}
}

func TestTextualProcessorFragment(t *testing.T) {
	p := NewTextualProcessor(NewExtractor(), Unknown)
	results := runTextual(t, p, "  ukudl\u00e1\nkomo\n")

	f := results[0].Fragments[0]
	if f.Pos != 2 || f.Len != 6 || f.Confidence != 1 || string(f.Transformed) != "dl\u00e1" {
		t.Errorf("unexpected fragment %+v", f)
	}
	if f := results[1].Fragments[0]; f.Confidence != 0 || string(f.Transformed) != "komo" {
		t.Errorf("unmatched noun should have zero confidence: %+v", f)
	}
}

func TestTextualProcessorBadClass(t *testing.T) {
	p := NewTextualProcessor(NewExtractor(), Unknown)
	results := runTextual(t, p, "abantu\t2\ninja\tbogus\n")

	if results[0].Error != nil {
		t.Fatalf("unexpected error on line 1: %v", results[0].Error)
	}
	err := results[1].Error
	if !errors.Is(err, ErrUnrecognizedLabel) {
		t.Fatalf("expected ErrUnrecognizedLabel, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the line: %v", err)
	}
}

func TestTextualProcessorChain(t *testing.T) {
	upper := textual.ProcessorFunc(func(ctx context.Context, in <-chan textual.Result) <-chan textual.Result {
		out := make(chan textual.Result)
		go func() {
			defer close(out)
			for res := range in {
				res.Text = textual.UTF8String(strings.ToUpper(string(res.Text)))
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}()
		return out
	})

	chain := textual.NewChain(upper, NewTextualProcessor(NewExtractor(), Unknown))
	results := runTextual(t, chain, "izinkomo\n")
	if got := string(results[0].Render()); got != "KOMO" {
		t.Fatalf("rendered %q, want %q", got, "KOMO")
	}
}

func TestTextualProcessorCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan textual.Result)
	close(in)
	out := NewTextualProcessor(nil, Unknown).Apply(ctx, in)
	for range out {
	}
}
