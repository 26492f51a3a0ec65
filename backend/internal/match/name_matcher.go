package match

import "strings"

// honorifics are stripped from names before comparison (Indian + Western).
var honorifics = map[string]bool{
	"garu": true, "bhau": true, "bhai": true, "amma": true, "anna": true,
	"akka": true, "dada": true, "tai": true, "mavshi": true, "kaka": true,
	"mama": true, "mr": true, "mrs": true, "ms": true, "dr": true,
	"prof": true, "sir": true, "madam": true,
}

// NormalizeName lowercases a name, collapses whitespace and strips
// honorifics ("Srikanth Garu" -> "srikanth", "Mr. John Smith" -> "john smith").
// Idempotent.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}

	words := strings.Fields(strings.ToLower(name))
	filtered := words[:0]
	for _, w := range words {
		if honorifics[strings.TrimRight(w, ".")] {
			continue
		}
		filtered = append(filtered, w)
	}
	return strings.Join(filtered, " ")
}

// Similarity scores two names in [0, 1]. Multi-layer matching for better
// Indian name handling:
//  1. full-string ratio on normalized names
//  2. token-weighted ratio (first name 40%, last name 60%) when both names
//     have at least two tokens
//  3. consonant-skeleton ratio, which tolerates vowel-spelling drift
//     ("Shikarkhane" vs "Shikarkane")
//
// The best of the three wins.
func Similarity(name1, name2 string) float64 {
	n1 := NormalizeName(name1)
	n2 := NormalizeName(name2)

	if n1 == n2 {
		if n1 == "" {
			return 0
		}
		return 1.0
	}

	fullSim := ratio(n1, n2)

	tokenSim := fullSim
	tokens1 := strings.Fields(n1)
	tokens2 := strings.Fields(n2)
	if len(tokens1) >= 2 && len(tokens2) >= 2 {
		firstSim := ratio(tokens1[0], tokens2[0])
		lastSim := ratio(tokens1[len(tokens1)-1], tokens2[len(tokens2)-1])
		tokenSim = firstSim*0.4 + lastSim*0.6
	}

	consonantSim := ratio(stripVowels(n1), stripVowels(n2))

	best := fullSim
	if tokenSim > best {
		best = tokenSim
	}
	if consonantSim > best {
		best = consonantSim
	}
	return best
}

// stripVowels removes vowels and spaces, leaving the consonant skeleton
// ("shikarkhane" -> "shkrkhn" stays close to "shikarkane" -> "shkrkn").
func stripVowels(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', ' ':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone strips all non-digit characters
// ("+1 (408) 444-5555" -> "14084445555").
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhonesMatch reports whether two normalized phone numbers refer to the same
// line: exact match, or - when both carry more than 7 digits - either
// number's last 10 digits suffix the other (tolerates country-code prefixes).
func PhonesMatch(p1, p2 string) bool {
	if p1 == "" || p2 == "" {
		return false
	}
	if p1 == p2 {
		return true
	}
	if len(p1) > 7 && len(p2) > 7 {
		return strings.HasSuffix(p1, lastN(p2, 10)) || strings.HasSuffix(p2, lastN(p1, 10))
	}
	return false
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
