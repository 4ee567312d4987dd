package lexicon

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporal-IPA/ibizo/pkg/noun"
)

func TestParseTabbedLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want noun.Entry
	}{
		{"label", "izinkomo\t10", noun.Entry{Noun: "izinkomo", Class: noun.Izin}},
		{"alias", "isitsha\tIsi", noun.Entry{Noun: "isitsha", Class: noun.Isi}},
		{"gloss column ignored", "umuntu\t1\tperson", noun.Entry{Noun: "umuntu", Class: noun.Class1Um}},
		{"unknown mark", "inja\t?", noun.Entry{Noun: "inja"}},
		{"dash mark", "inja\t-", noun.Entry{Noun: "inja"}},
		{"no class column", "inja", noun.Entry{Noun: "inja"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTabbedLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseTabbedLine("inja\t12")
	assert.ErrorIs(t, err, noun.ErrUnrecognizedLabel)
}

func TestSniffers(t *testing.T) {
	tabbed := []byte("# Zulu nouns\n\nizinkomo\t10\n")
	plain := []byte("# Zulu nouns\nizinkomo\nabantu\n")

	assert.True(t, sniffTabbed(tabbed, true))
	assert.False(t, sniffPlain(tabbed, true))
	assert.True(t, sniffPlain(plain, true))
	assert.False(t, sniffTabbed(plain, true))

	g := &GobLoader{}
	assert.False(t, g.Sniff(tabbed, true))
	assert.True(t, g.Sniff([]byte{0x12, 0x00, 0xff}, true))

	// A rune cut by the sniff window is still text.
	cut := []byte("ukudl\u00e1")
	cut = cut[:len(cut)-1]
	assert.False(t, g.Sniff(cut, false))
	assert.True(t, g.Sniff(cut, true))

	assert.Equal(t, KindTabbed, selectLoader(tabbed, true).Kind())
	assert.Equal(t, KindPlain, selectLoader(plain, true).Kind())
	assert.Equal(t, KindPlain, selectLoader(nil, true).Kind())
}

func TestLineLoaderRemovesComments(t *testing.T) {
	content := `
# global comment
izinkomo	10   # cattle
abantu	2## people
`
	loader := NewLineLoader(KindTabbed, sniffTabbed, parseTabbedLine)
	entries, err := loader.LoadAll(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, []noun.Entry{
		{Noun: "izinkomo", Class: noun.Izin},
		{Noun: "abantu", Class: noun.Aba},
	}, entries)
}

func TestLineLoaderReportsBadLine(t *testing.T) {
	loader := NewLineLoader(KindTabbed, sniffTabbed, parseTabbedLine)
	_, err := loader.LoadAll(strings.NewReader("izinkomo\t10\ninja\tbogus\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, noun.ErrUnrecognizedLabel))
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadPathsMergeModes(t *testing.T) {
	fsys := fstest.MapFS{
		"a.tsv": {Data: []byte("umuntu\t1\ninja\t?\nizinkomo\t10\n")},
		"b.tsv": {Data: []byte("umuntu\t3\ninja\t9\nukudla\t15\n")},
	}

	t.Run("append", func(t *testing.T) {
		lex, err := LoadPaths(fsys, LoadOptions{Mode: MergeModeAppend}, "a.tsv", "b.tsv")
		require.NoError(t, err)
		assert.Equal(t, []string{"umuntu", "inja", "izinkomo", "ukudla"}, lex.Nouns())
		assert.Equal(t, []noun.NounClass{noun.Class1Um, noun.Class3Um}, lex.Classes("umuntu"))
		// A real class supersedes Unknown.
		assert.Equal(t, []noun.NounClass{noun.In}, lex.Classes("inja"))
		assert.Equal(t, 5, lex.Len())
	})

	t.Run("no override", func(t *testing.T) {
		lex, err := LoadPaths(fsys, LoadOptions{Mode: MergeModeNoOverride}, "a.tsv", "b.tsv")
		require.NoError(t, err)
		assert.Equal(t, []noun.NounClass{noun.Class1Um}, lex.Classes("umuntu"))
		assert.Equal(t, []noun.NounClass{noun.Unknown}, lex.Classes("inja"))
		assert.Equal(t, []noun.NounClass{noun.Uku}, lex.Classes("ukudla"))
	})

	t.Run("replace", func(t *testing.T) {
		lex, err := LoadPaths(fsys, LoadOptions{Mode: MergeModeReplace}, "a.tsv", "b.tsv")
		require.NoError(t, err)
		assert.Equal(t, []string{"umuntu", "inja", "izinkomo", "ukudla"}, lex.Nouns())
		assert.Equal(t, []noun.NounClass{noun.Class3Um}, lex.Classes("umuntu"))
		assert.Equal(t, []noun.NounClass{noun.In}, lex.Classes("inja"))
		assert.Equal(t, []noun.NounClass{noun.Izin}, lex.Classes("izinkomo"))
	})
}

func TestLoadReportsSources(t *testing.T) {
	var gobBuf bytes.Buffer
	require.NoError(t, WriteGob(&gobBuf, []noun.Entry{{Noun: "ukudla", Class: noun.Uku}}))

	fsys := fstest.MapFS{
		"a.tsv": {Data: []byte("# nouns\nizinkomo\t10\ninja\t?\n")},
		"b.txt": {Data: []byte("abantu\n")},
		"c.gob": {Data: gobBuf.Bytes()},
	}

	var got []SourceInfo
	opts := LoadOptions{OnSource: func(info SourceInfo) { got = append(got, info) }}
	_, err := LoadPaths(fsys, opts, "a.tsv", "b.txt", "c.gob")
	require.NoError(t, err)
	assert.Equal(t, []SourceInfo{
		{Name: "a.tsv", Kind: KindTabbed, Entries: 2},
		{Name: "b.txt", Kind: KindPlain, Entries: 1},
		{Name: "c.gob", Kind: KindGob, Entries: 1},
	}, got)

	got = nil
	_, err = LoadBlobs(opts, []byte("abantu\tAba\n"))
	require.NoError(t, err)
	assert.Equal(t, []SourceInfo{{Name: "blob 0", Kind: KindTabbed, Entries: 1}}, got)
}

type failingReader struct{ data *strings.Reader }

func (f *failingReader) Read(b []byte) (int, error) {
	if f.data.Len() == 0 {
		return 0, errors.New("disk on fire")
	}
	return f.data.Read(b)
}

func TestLineLoaderReportsReadError(t *testing.T) {
	loader := NewLineLoader(KindPlain, sniffPlain, parsePlainLine)
	var entries []noun.Entry
	err := loader.Load(&failingReader{data: strings.NewReader("abantu\nizinkomo\n")}, func(e noun.Entry) error {
		entries = append(entries, e)
		return nil
	})
	assert.EqualError(t, err, "disk on fire")
	assert.Len(t, entries, 2)
}

func TestLoadPathsMissingFile(t *testing.T) {
	_, err := LoadPaths(fstest.MapFS{}, LoadOptions{}, "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestLoadPathsLatin1(t *testing.T) {
	raw, err := textual.FromUTF8("ukudl\u00e1\t15\n", textual.ISO8859_1)
	require.NoError(t, err)

	fsys := fstest.MapFS{"latin1.tsv": {Data: raw}}
	lex, err := LoadPaths(fsys, LoadOptions{Encoding: textual.ISO8859_1}, "latin1.tsv")
	require.NoError(t, err)
	assert.Equal(t, []noun.Entry{{Noun: "ukudl\u00e1", Class: noun.Uku}}, lex.Entries())
}

func TestGobRoundTrip(t *testing.T) {
	entries := []noun.Entry{
		{Noun: "izinkomo", Class: noun.Izin},
		{Noun: "inja"},
		{Noun: "umuntu", Class: noun.Class1Um},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteGob(&buf, entries))

	lex, err := LoadBlobs(LoadOptions{}, buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, entries, lex.Entries())
}

func TestWriteTabbedReadsBack(t *testing.T) {
	entries := []noun.Entry{
		{Noun: "izinkomo", Class: noun.Izin},
		{Noun: "inja"},
		{Noun: "unyawo", Class: noun.Ulu},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTabbed(&buf, entries))
	assert.Equal(t, "izinkomo\t10\ninja\t?\nunyawo\t11\n", buf.String())

	lex, err := LoadBlobs(LoadOptions{}, buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, entries, lex.Entries())
}

func TestLoadBlobsPlain(t *testing.T) {
	lex, err := LoadBlobs(LoadOptions{}, []byte("abantu\n\nizinkomo\nabantu\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, []noun.Entry{{Noun: "abantu"}, {Noun: "izinkomo"}}, lex.Entries())
}

func TestLoadIntoNilLexicon(t *testing.T) {
	assert.Error(t, LoadInto(fstest.MapFS{}, nil, LoadOptions{}, "a.txt"))
}

func TestParseMergeMode(t *testing.T) {
	for _, m := range []MergeMode{MergeModeAppend, MergeModeNoOverride, MergeModeReplace} {
		got, err := ParseMergeMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMergeMode("NO_OVERRIDE")
	require.NoError(t, err)
	assert.Equal(t, MergeModeNoOverride, got)

	got, err = ParseMergeMode("")
	require.NoError(t, err)
	assert.Equal(t, MergeModeAppend, got)

	_, err = ParseMergeMode("prepend")
	assert.Error(t, err)
}
