package noun

import (
	"reflect"
	"testing"
)

func TestClassesForPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   []NounClass
	}{
		{"um", []NounClass{Class1Um, Class3Um}},
		{"u", []NounClass{U, Ulu}},
		{"izin", []NounClass{Izin}},
		{"izim", []NounClass{Izin}},
		{"zin", []NounClass{Izin}},
		{"zim", []NounClass{Izin}},
		{"ulw", []NounClass{Ulu}},
		{"lw", []NounClass{Ulu}},
		{"si", []NounClass{Isi}},
		{"zi", []NounClass{Izi}},
		{"m", []NounClass{Class1Um, Class3Um, In}},
		{"IS", []NounClass{Isi}},
		{"xy", nil},
		{"", nil},
	}

	for _, tt := range tests {
		if got := ClassesForPrefix(tt.prefix); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ClassesForPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestEveryTablePrefixHasAClass(t *testing.T) {
	for _, set := range []PrefixSet{PrefixSetFull, PrefixSetVowelInitial} {
		for _, p := range set.Candidates() {
			if len(ClassesForPrefix(p)) == 0 {
				t.Errorf("%s: prefix %q maps to no class", set, p)
			}
		}
	}
}
