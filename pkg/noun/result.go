package noun

// Entry is a noun to process, with its class when known.
type Entry struct {
	Noun  string    `json:"noun" yaml:"noun" msgpack:"noun"`
	Class NounClass `json:"class,omitempty" yaml:"class,omitempty" msgpack:"class,omitempty"`
}

// Result is the outcome of stripping one noun.
type Result struct {
	// Noun is the input as given.
	Noun string `json:"noun" yaml:"noun" msgpack:"noun"`

	// Class is the supplied class, Unknown when the prefix was guessed.
	Class NounClass `json:"class,omitempty" yaml:"class,omitempty" msgpack:"class,omitempty"`

	// Prefix is the candidate form that was stripped, empty when nothing matched.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty" msgpack:"prefix,omitempty"`
	Base   string `json:"base" yaml:"base" msgpack:"base"`

	// Candidates lists the classes that can realise Prefix.
	Candidates []NounClass `json:"candidates,omitempty" yaml:"candidates,omitempty" msgpack:"candidates,omitempty"`
}

// Matched reports whether a prefix was stripped.
func (r Result) Matched() bool { return r.Prefix != "" }
