package noun

import "context"

// Extractor strips noun-class prefixes using a fixed set of Options.
//
// The zero value is not usable; build one with NewExtractor or
// NewExtractorWithOptions. An Extractor is safe for concurrent use as
// long as SetOptions is not called at the same time.
type Extractor struct {
	// options is the configuration used by Base / Extract / Apply.
	options Options
}

// Ensure Extractor implements the pipeline interfaces.
var (
	_ Processor            = (*Extractor)(nil)
	_ CancellableProcessor = (*Extractor)(nil)
)

// NewExtractor creates an Extractor configured with DefaultOptions.
func NewExtractor() *Extractor {
	return NewExtractorWithOptions(DefaultOptions)
}

// NewExtractorWithOptions creates an Extractor configured with opts.
func NewExtractorWithOptions(opts Options) *Extractor {
	return &Extractor{options: opts}
}

// Options returns the current options of the Extractor.
func (e *Extractor) Options() Options {
	return e.options
}

// SetOptions changes the options used by subsequent calls.
func (e *Extractor) SetOptions(opts Options) {
	e.options = opts
}

// Base returns noun with its class prefix removed. It is the
// configurable counterpart of GuessBase.
func (e *Extractor) Base(noun string, class NounClass) string {
	base, _ := extract(noun, class, e.options)
	return base
}

// Extract strips noun and reports which prefix was removed and which
// classes could have produced it.
func (e *Extractor) Extract(noun string, class NounClass) Result {
	base, prefix := extract(noun, class, e.options)
	res := Result{
		Noun:   noun,
		Class:  class,
		Prefix: prefix,
		Base:   base,
	}
	if prefix == "" {
		return res
	}
	if class.Valid() {
		res.Candidates = []NounClass{class}
	} else {
		res.Candidates = ClassesForPrefix(prefix)
	}
	return res
}

// Apply implements the Processor interface.
func (e *Extractor) Apply(entry Entry) Result {
	return e.Extract(entry.Noun, entry.Class)
}

// StreamApply implements the CancellableProcessor interface.
//
// Results are emitted in input order. Cancellation is observed between
// entries; the channel is closed when all entries are processed or ctx
// is done, whichever comes first.
func (e *Extractor) StreamApply(ctx context.Context, entries []Entry) <-chan Result {
	out := make(chan Result)

	go func() {
		defer close(out)

		for _, entry := range entries {
			select {
			case <-ctx.Done():
				return
			default:
			}

			res := e.Apply(entry)

			select {
			case <-ctx.Done():
				return
			case out <- res:
			}
		}
	}()

	return out
}
