// Package frwords converts integer dinar amounts into the uppercase French
// sentence printed on invoices ("DOUZE MILLE DINARS ET ZÉRO CENTIME").
// Amounts are whole dinars — the domain has no fractional subunit, so the
// centime clause is always zero.
package frwords

import "strings"

var small = [17]string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit",
	"neuf", "dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
}

// tens[2..8]; 70 and 90 are composed from 60 and 80.
var tens = [9]string{2: "vingt", 3: "trente", 4: "quarante", 5: "cinquante", 6: "soixante", 8: "quatre-vingt"}

// Format returns the full uppercase sentence for a non-negative amount.
// The currency word and the zero-centime clause appear exactly once.
func Format(amount int64) string {
	if amount < 0 {
		amount = 0
	}
	return strings.ToUpper(cardinal(amount)) + " DINARS ET ZÉRO CENTIME"
}

// cardinal spells n in lowercase French words (traditional orthography:
// spaces between scale words, hyphens inside 17–99 compounds).
func cardinal(n int64) string {
	if n == 0 {
		return "zéro"
	}

	var parts []string

	if b := n / 1_000_000_000; b > 0 {
		word := "milliard"
		if b > 1 {
			word = "milliards"
		}
		parts = append(parts, under1000(int(b), true), word)
		n %= 1_000_000_000
	}
	if m := n / 1_000_000; m > 0 {
		word := "million"
		if m > 1 {
			word = "millions"
		}
		parts = append(parts, under1000(int(m), true), word)
		n %= 1_000_000
	}
	if k := n / 1000; k > 0 {
		// "mille" is invariable and never takes "un" in front.
		if k == 1 {
			parts = append(parts, "mille")
		} else {
			// "quatre-vingts" and "deux cents" drop the final s before "mille".
			parts = append(parts, under1000(int(k), false), "mille")
		}
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, under1000(int(n), true))
	}

	return strings.Join(parts, " ")
}

// under1000 spells 1..999. final reports whether the number ends the numeral;
// when false the plural s of "cents"/"quatre-vingts" is omitted.
func under1000(n int, final bool) string {
	h, r := n/100, n%100
	if h == 0 {
		return under100(r, final)
	}

	var s string
	if h == 1 {
		s = "cent"
	} else {
		s = small[h] + " cent"
	}
	if r == 0 {
		if h > 1 && final {
			s += "s"
		}
		return s
	}
	return s + " " + under100(r, final)
}

// under100 spells 1..99.
func under100(n int, final bool) string {
	if n < 17 {
		return small[n]
	}
	if n < 20 {
		return "dix-" + small[n-10]
	}

	t, u := n/10, n%10
	// 70–79 and 90–99 build on 60 and 80 with a teen remainder.
	if t == 7 || t == 9 {
		base := tens[t-1]
		rem := n - (t-1)*10
		if t == 7 && rem == 11 {
			return "soixante et onze"
		}
		return base + "-" + under100(rem, final)
	}

	base := tens[t]
	if u == 0 {
		if t == 8 && final {
			return "quatre-vingts"
		}
		return base
	}
	if u == 1 && t != 8 {
		return base + " et un"
	}
	return base + "-" + small[u]
}
