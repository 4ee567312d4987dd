package noun

import "strings"

// variantOf maps prefixes that appear in the full table but in no class
// to the catalog form they are a variant of.
var variantOf = map[string]string{
	"izim": "izin", // before labials
	"ulw":  "ulu",  // before vowels
}

// initialVowels may be dropped from a prefix in compounds and after
// other prefixes ("zin" for "izin").
const initialVowels = "aeiou"

// ClassesForPrefix returns the classes, in declaration order, whose
// forms can realise prefix. Consonant-initial variants are resolved to
// the classes of their vowel-initial forms, so "zin" and "zim" yield
// Izin and "m" yields Class1Um, Class3Um and In.
//
// Unknown prefixes yield nil.
func ClassesForPrefix(prefix string) []NounClass {
	p := strings.ToLower(strings.TrimSpace(prefix))
	if p == "" {
		return nil
	}
	if v, ok := variantOf[p]; ok {
		p = v
	}

	var out []NounClass
	for _, c := range Classes() {
		if realises(c, p) {
			out = append(out, c)
		}
	}
	return out
}

func realises(c NounClass, p string) bool {
	for _, form := range c.forms() {
		if form == p {
			return true
		}
		if strings.ContainsRune(initialVowels, rune(p[0])) {
			continue
		}
		if len(form) == len(p)+1 && form[1:] == p {
			return true
		}
		for _, vowel := range initialVowels {
			if v, ok := variantOf[string(vowel)+p]; ok && v == form {
				return true
			}
		}
	}
	return false
}
