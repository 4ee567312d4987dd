// Package noun strips the noun-class prefix from Zulu (and closely
// related Bantu) nouns to recover their base, optionally guided by a
// known noun class.
//
// The catalog and the prefix tables are immutable package data, so every
// function in this package is safe for concurrent use.
package noun

import (
	"errors"
	"fmt"
	"strings"
)

// NounClass is a noun class. Variants are named by the longest
// conventional prefix, and by the class number when the prefix alone is
// ambiguous.
//
// Tags are stable and numbered from 1 in declaration order. The zero
// value, Unknown, stands for "no class supplied".
type NounClass uint8

const (
	// Unknown is not a class: it asks the engine to guess among all prefixes.
	Unknown NounClass = iota

	Class1Um
	Aba

	U
	Oo

	Class3Um
	Imi

	Ili
	Ama

	Isi
	Izi

	In
	Izin

	Ulu
	Ubu
	Uku
)

var (
	// ErrUnrecognizedTag is returned when a numeric tag does not name a class.
	ErrUnrecognizedTag = errors.New("unrecognized class tag")

	// ErrUnrecognizedLabel is returned when a label or alias does not name a class.
	ErrUnrecognizedLabel = errors.New("unrecognized class label")
)

// Prefix holds the possible surface forms of a class prefix.
type Prefix struct {
	// Forms in descending order of length.
	Forms []string `json:"forms" yaml:"forms"`
}

type classRecord struct {
	name   string
	number string
	forms  []string
}

// catalog is indexed by tag; entry 0 is the Unknown placeholder.
var catalog = [...]classRecord{
	Unknown: {name: "Unknown"},

	Class1Um: {name: "Class1Um", number: "1", forms: []string{"um"}},
	Aba:      {name: "Aba", number: "2", forms: []string{"aba"}},

	U:  {name: "U", number: "1a", forms: []string{"u"}},
	Oo: {name: "Oo", number: "2a", forms: []string{"oo"}},

	Class3Um: {name: "Class3Um", number: "3", forms: []string{"um"}},
	Imi:      {name: "Imi", number: "4", forms: []string{"imi"}},

	Ili: {name: "Ili", number: "5", forms: []string{"ili"}},
	Ama: {name: "Ama", number: "6", forms: []string{"ama"}},

	Isi: {name: "Isi", number: "7", forms: []string{"isi", "is"}},
	Izi: {name: "Izi", number: "8", forms: []string{"izi", "iz"}},

	In:   {name: "In", number: "9", forms: []string{"in", "im", "i"}},
	Izin: {name: "Izin", number: "10", forms: []string{"izin", "iin", "iim", "ii"}},

	Ulu: {name: "Ulu", number: "11", forms: []string{"ulu", "u"}},
	Ubu: {name: "Ubu", number: "14", forms: []string{"ubu"}},
	Uku: {name: "Uku", number: "15", forms: []string{"uku"}},
}

// classCount is the number of real classes in the catalog.
const classCount = len(catalog) - 1

// Classes returns every class in declaration order.
func Classes() []NounClass {
	out := make([]NounClass, 0, classCount)
	for tag := 1; tag <= classCount; tag++ {
		out = append(out, NounClass(tag))
	}
	return out
}

// Valid reports whether c names one of the catalog classes.
func (c NounClass) Valid() bool {
	return c >= Class1Um && int(c) <= classCount
}

// Tag returns the stable numeric tag of c.
func (c NounClass) Tag() uint8 { return uint8(c) }

// Prefix returns all possible forms of the prefix of this class.
// Unknown and out-of-range values have no forms.
func (c NounClass) Prefix() Prefix {
	if !c.Valid() {
		return Prefix{}
	}
	forms := catalog[c].forms
	out := make([]string, len(forms))
	copy(out, forms)
	return Prefix{Forms: out}
}

// forms is the allocation-free view used by the engine.
func (c NounClass) forms() []string {
	if !c.Valid() {
		return nil
	}
	return catalog[c].forms
}

// Number returns the class number of c, roughly following Meinhof's
// classification ("1", "1a", ... "15"). It is empty for invalid values.
func (c NounClass) Number() string {
	if !c.Valid() {
		return ""
	}
	return catalog[c].number
}

// String returns the Go variant name, e.g. "Izin".
func (c NounClass) String() string {
	if c == Unknown || c.Valid() {
		return catalog[c].name
	}
	return fmt.Sprintf("NounClass(%d)", uint8(c))
}

// FromTag decodes a numeric tag produced by Tag.
func FromTag(tag uint8) (NounClass, error) {
	c := NounClass(tag)
	if !c.Valid() {
		return Unknown, fmt.Errorf("%w: %d", ErrUnrecognizedTag, tag)
	}
	return c, nil
}

// ParseLabel decodes a class number label ("10", "1a") or a variant
// name alias ("Izin"). Both are matched case-insensitively.
func ParseLabel(label string) (NounClass, error) {
	s := strings.TrimSpace(label)
	for tag := 1; tag <= classCount; tag++ {
		if strings.EqualFold(catalog[tag].number, s) {
			return NounClass(tag), nil
		}
	}
	for tag := 1; tag <= classCount; tag++ {
		if strings.EqualFold(catalog[tag].name, s) {
			return NounClass(tag), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnrecognizedLabel, label)
}
