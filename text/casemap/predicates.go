package casemap

import (
	"github.com/tawesoft/utf8x/internal/unicode/tables"
	"github.com/tawesoft/utf8x/ks"
)

const (
	combiningDotAbove = 0x0307
	latinCapitalI     = 0x0049
	latinSmallJ       = 0x006A
	latinCapitalJ     = 0x004A
	latinSmallI       = 0x0069
	iWithOgonekUpper  = 0x012E
	iWithOgonekLower  = 0x012F
)

func isCased(r rune) bool {
	return tables.Of(r)&tables.Cased != 0
}

// caseIgnorable approximates Unicode's Case_Ignorable property: marks and
// formatting characters don't break a run of cased letters for the
// purposes of Final_Sigma's lookaround.
func caseIgnorable(r rune) bool {
	cat := tables.Of(r)
	return cat&(tables.Mark|tables.Format) != 0
}

// precededByCasedLetter implements Final_Sigma's backward half: walking
// left from i, skipping case-ignorable code points, is the first decisive
// code point a cased letter?
func precededByCasedLetter(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if caseIgnorable(runes[j]) {
			continue
		}
		return isCased(runes[j])
	}
	return false
}

// followedByCasedLetter is Final_Sigma's forward half.
func followedByCasedLetter(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if caseIgnorable(runes[j]) {
			continue
		}
		return isCased(runes[j])
	}
	return false
}

// finalSigma reports whether Σ at position i should lowercase to the
// word-final form ς rather than the medial form σ: preceded by a cased
// letter (modulo case-ignorables) and not followed by one.
func finalSigma(runes []rune, i int) bool {
	return precededByCasedLetter(runes, i) && !followedByCasedLetter(runes, i)
}

// isSoftDotted reports whether r is one of the small set of soft-dotted
// letters this module's Lithuanian tailoring cares about (i, j, and i with
// ogonek — Unicode's Soft_Dotted property is broader, but these are the
// only ones spec §4.4/§9 names).
func isSoftDotted(r rune) bool {
	return ks.In(r, latinSmallI, latinSmallJ, iWithOgonekLower)
}

// afterSoftDotted reports whether the code point immediately before i is
// soft-dotted.
func afterSoftDotted(runes []rune, i int) bool {
	return i > 0 && isSoftDotted(runes[i-1])
}

// moreAbove reports whether a combining mark with canonical combining
// class 230 ("above") appears after i before the next starter.
func moreAbove(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		ccc := tables.CCC(runes[j])
		if ccc == 0 {
			return false // reached the next starter
		}
		if ccc == 230 {
			return true
		}
	}
	return false
}

// notBeforeDot reports whether the code point immediately after i is not a
// combining dot above.
func notBeforeDot(runes []rune, i int) bool {
	return !(i+1 < len(runes) && runes[i+1] == combiningDotAbove)
}
