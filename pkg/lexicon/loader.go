package lexicon

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"

	"github.com/temporal-IPA/ibizo/pkg/conversion"
	"github.com/temporal-IPA/ibizo/pkg/noun"
)

func init() {
	// Built-in loaders, ordered from most specific to most generic.
	gobLoader := &GobLoader{}
	tabbed := NewLineLoader(
		KindTabbed,
		sniffTabbed,
		parseTabbedLine,
	)
	plain := NewLineLoader(
		KindPlain,
		sniffPlain,
		parsePlainLine,
	)

	builtinLoaders = []Loader{
		gobLoader,
		tabbed,
		plain,
	}

	// Fallback to the plain word list when sniffing is inconclusive.
	defaultLoader = plain
}

// OnEntryFunc is called by a Loader for each lexicon entry.
type OnEntryFunc func(e noun.Entry) error

// Loader parses a lexicon source (file or bytes) and emits entries
// through the provided callback.
type Loader interface {
	// Kind returns a short identifier for the loader.
	Kind() Kind

	// Sniff inspects a prefix of the input (sniff) and decides whether
	// this loader is appropriate for the source.
	//
	// - sniff: initial bytes of the source (up to a few KB).
	// - isEOF: true if sniff contains the full source.
	Sniff(sniff []byte, isEOF bool) bool

	// Load parses the entire source from r and calls emit for each entry found.
	Load(r io.Reader, emit OnEntryFunc) error

	// LoadAll loads the entire source into memory.
	LoadAll(r io.Reader) ([]noun.Entry, error)
}

// SourceInfo describes one loaded source.
type SourceInfo struct {
	// Name is the file path, or "blob <i>" for in-memory sources.
	Name    string
	Kind    Kind
	Entries int
}

// LoadOptions control how sources are decoded and merged.
type LoadOptions struct {
	Mode     MergeMode
	Encoding textual.EncodingID

	// OnSource, when set, is called after each source is loaded.
	OnSource func(SourceInfo)
}

var (
	builtinLoaders []Loader
	defaultLoader  Loader
)

// RegisterLoader allows external code to add additional Loaders.
// Loaders are consulted in registration order during sniffing, after
// the built-in ones.
func RegisterLoader(p Loader) {
	if p == nil {
		return
	}
	builtinLoaders = append(builtinLoaders, p)
}

// selectLoader chooses the first loader whose Sniff method returns true.
// If none match, it falls back to defaultLoader (the plain word list).
func selectLoader(sniff []byte, isEOF bool) Loader {
	for _, p := range builtinLoaders {
		if p.Sniff(sniff, isEOF) {
			return p
		}
	}
	return defaultLoader
}

// LoadPaths loads and merges lexicons from a sequence of file paths.
// The order of paths is respected.
func LoadPaths(fsys fs.FS, opts LoadOptions, paths ...string) (*Lexicon, error) {
	lex := New()
	if err := LoadInto(fsys, lex, opts, paths...); err != nil {
		return nil, err
	}
	return lex, nil
}

// LoadBlobs loads and merges lexicons from in-memory byte slices.
//
// Each blob is treated like a separate source, and the merge mode is
// applied between these sources in the same way as for files.
func LoadBlobs(opts LoadOptions, blobs ...[]byte) (*Lexicon, error) {
	lex := New()
	for i, blob := range blobs {
		if len(blob) == 0 {
			continue
		}
		if err := loadFromReader(lex, fmt.Sprintf("blob %d", i), bytes.NewReader(blob), opts); err != nil {
			return nil, fmt.Errorf("blob %d: %w", i, err)
		}
	}
	return lex, nil
}

// LoadInto loads and merges lexicons from a sequence of file paths into
// an existing Lexicon.
func LoadInto(fsys fs.FS, lex *Lexicon, opts LoadOptions, paths ...string) error {
	if lex == nil {
		return fmt.Errorf("nil lexicon")
	}
	for _, p := range paths {
		path := strings.TrimSpace(p)
		if path == "" {
			continue
		}
		if err := loadFromFile(fsys, lex, path, opts); err != nil {
			return err
		}
	}
	return nil
}

// loadFromFile opens a file and hands it to loadFromReader.
func loadFromFile(fsys fs.FS, lex *Lexicon, path string, opts LoadOptions) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := loadFromReader(lex, path, f, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// loadFromReader decodes r to UTF-8, sniffs its format and runs the
// matching loader.
func loadFromReader(lex *Lexicon, name string, r io.Reader, opts LoadOptions) error {
	src, err := conversion.NewReader(r, opts.Encoding)
	if err != nil {
		return err
	}

	buf := make([]byte, sniffLen)
	n, readErr := io.ReadFull(src, buf)
	if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
		return fmt.Errorf("sniff: %w", readErr)
	}
	buf = buf[:n]
	isEOF := readErr == io.EOF || readErr == io.ErrUnexpectedEOF || n == 0

	pl := selectLoader(buf, isEOF)
	n, err = runLoader(pl, opts.Mode, io.MultiReader(bytes.NewReader(buf), src), lex)
	if err != nil {
		return err
	}
	if opts.OnSource != nil {
		opts.OnSource(SourceInfo{Name: name, Kind: pl.Kind(), Entries: n})
	}
	return nil
}

// runLoader executes a loader, applying MergeMode semantics across
// sources. It returns the number of entries read from the source.
func runLoader(pl Loader, mode MergeMode, r io.Reader, lex *Lexicon) (int, error) {
	if pl == nil {
		return 0, fmt.Errorf("no loader")
	}
	read := 0
	sourceNouns := make(map[string]struct{})
	replaced := make(map[string]struct{}) // used only in MergeModeReplace

	emit := func(e noun.Entry) error {
		e.Noun = strings.TrimSpace(e.Noun)
		if e.Noun == "" {
			return nil
		}
		sourceNouns[e.Noun] = struct{}{}
		read++

		_, pre := lex.preloaded[e.Noun]
		switch mode {
		case MergeModeNoOverride:
			if pre {
				return nil
			}
		case MergeModeReplace:
			if _, already := replaced[e.Noun]; pre && !already {
				lex.reset(e.Noun)
				replaced[e.Noun] = struct{}{}
			}
		}

		lex.Add(e)
		return nil
	}

	if err := pl.Load(r, emit); err != nil {
		return 0, fmt.Errorf("load (%s): %w", pl.Kind(), err)
	}

	// After consuming the full source, record its nouns as "preloaded"
	// for future merges.
	for n := range sourceNouns {
		lex.preloaded[n] = struct{}{}
	}
	return read, nil
}
