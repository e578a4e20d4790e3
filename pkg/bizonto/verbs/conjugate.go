// Package verbs conjugates English verbs and holds the verb vocabulary the
// statement parser scans for.
//
// Conjugation is table-first: irregular maps are consulted before any
// spelling rule, and the spelling rules run in a fixed priority order.
// Every function is fail-soft and returns lowercase output.
package verbs

import "strings"

// VerbForms is the conjugation triple of one verb. All values are lowercase.
type VerbForms struct {
	Base      string
	PastTense string
	Gerund    string
}

// Forms returns the full conjugation triple for a base verb.
func Forms(base string) VerbForms {
	base = normalize(base)
	return VerbForms{
		Base:      base,
		PastTense: PastTense(base),
		Gerund:    Gerund(base),
	}
}

// PastTense returns the simple past of verb.
//
// Rule order after the irregular table:
//  1. ends in "e" -> +d
//  2. consonant + "y" -> "ied"
//  3. CVC ending, length <= 4, last letter not w/x/y -> double + "ed"
//  4. CVC ending, length 5, stressed suffix (er, ur, it, et, ot, ut, at) -> double + "ed"
//  5. otherwise -> +ed
func PastTense(verb string) string {
	v := normalize(verb)
	if v == "" {
		return ""
	}
	if past, ok := irregularPast[v]; ok {
		return past
	}

	n := len(v)
	last := v[n-1]

	if last == 'e' {
		return v + "d"
	}
	if last == 'y' && n >= 2 && isConsonant(v[n-2]) {
		return v[:n-1] + "ied"
	}
	if endsCVC(v) {
		if n <= 4 && !strings.ContainsRune("wxy", rune(last)) {
			return v + string(last) + "ed"
		}
		if n == 5 && hasStressedSuffix(v) {
			return v + string(last) + "ed"
		}
	}
	return v + "ed"
}

// GerundToBase recovers the base form of a gerund.
//
// Rule order after the irregular table:
//  1. doubled consonant + "ing" -> drop the doubling (planning -> plan);
//     l, s, f and z doublings belong to the base (selling -> sell)
//  2. "-ying" -> "-y" (studying -> study)
//  3. "-ating"/"-izing" -> "-ate"/"-ize" (communicating -> communicate)
//  4. vowel + t/s/v/g/c + "ing" -> strip "ing", append "e" (updating -> update)
//  5. otherwise strip "ing"
//
// Words that are not gerunds come back lowercased and unchanged.
func GerundToBase(gerund string) string {
	g := normalize(gerund)
	if base, ok := irregularGerunds[g]; ok {
		return base
	}
	if len(g) <= 4 || !strings.HasSuffix(g, "ing") {
		return g
	}

	stem := g[:len(g)-3]
	n := len(stem)

	if n >= 2 && stem[n-1] == stem[n-2] && isConsonant(stem[n-1]) &&
		!strings.ContainsRune("lsfz", rune(stem[n-1])) {
		return stem[:n-1]
	}
	if strings.HasSuffix(g, "ying") {
		return stem
	}
	if strings.HasSuffix(g, "ating") || strings.HasSuffix(g, "izing") {
		return stem + "e"
	}
	if n >= 2 && strings.ContainsRune("tsvgc", rune(stem[n-1])) &&
		isVowel(stem[n-2]) && (n == 2 || !isVowel(stem[n-3])) {
		return stem + "e"
	}
	return stem
}

// Gerund builds the "-ing" form of a base verb.
func Gerund(base string) string {
	b := normalize(base)
	if b == "" {
		return ""
	}
	if g, ok := reverseGerunds[b]; ok {
		return g
	}

	n := len(b)
	switch {
	case strings.HasSuffix(b, "ie"):
		return b[:n-2] + "ying"
	case b[n-1] == 'e' && n > 2 && !strings.HasSuffix(b, "ee") &&
		!strings.HasSuffix(b, "ye") && !strings.HasSuffix(b, "oe"):
		return b[:n-1] + "ing"
	case endsCVC(b) && n <= 4 && !strings.ContainsRune("wxy", rune(b[n-1])):
		return b + string(b[n-1]) + "ing"
	case n == 5 && endsCVC(b) && hasStressedSuffix(b):
		return b + string(b[n-1]) + "ing"
	}
	return b + "ing"
}

// reverseGerunds inverts irregularGerunds for true gerunds only.
var reverseGerunds = func() map[string]string {
	out := make(map[string]string, len(irregularGerunds))
	for gerund, base := range irregularGerunds {
		if gerund == base {
			continue
		}
		out[base] = gerund
	}
	return out
}()

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isConsonant(c byte) bool {
	return c >= 'a' && c <= 'z' && !isVowel(c)
}

func endsCVC(w string) bool {
	n := len(w)
	if n < 3 {
		return false
	}
	return isConsonant(w[n-3]) && isVowel(w[n-2]) && isConsonant(w[n-1])
}

func hasStressedSuffix(w string) bool {
	switch w[len(w)-2:] {
	case "er", "ur", "it", "et", "ot", "ut", "at":
		return true
	}
	return false
}
