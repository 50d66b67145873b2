// Package casemap implements full Unicode case mapping — upper, lower,
// title, and fold — including the SpecialCasing 1-to-N expansions, the
// context predicates (Final_Sigma, After_Soft_Dotted, More_Above,
// Not_Before_Dot) they depend on, and the Turkish/Azeri and Lithuanian
// locale tailorings. SpecialCasing's separate After_I rule (delete a
// standalone combining dot above that follows a capital I) is folded into
// Not_Before_Dot's lookahead instead of being its own pass: lower() consumes
// the dot above in the same step that maps the I, so a dot above in that
// position is never visited on its own.
package casemap

import (
	"github.com/tawesoft/utf8x/internal/unicode/tables"
	"github.com/tawesoft/utf8x/ks"
	"github.com/tawesoft/utf8x/text/utf8codec"
)

// Operation selects which of the four case transforms to apply.
type Operation int

const (
	Upper Operation = iota
	Lower
	Title
	Fold
)

// Map applies op to src under locale and writes the result to dst,
// following the measure/partial-write/error conventions of
// [github.com/tawesoft/utf8x/text/utf8codec.UTF16ToUTF8]: dst == nil only
// measures; a too-small dst writes every code point that fit and reports
// NotEnoughSpace with the full required length; overlapping src/dst is
// rejected unconditionally.
//
// Malformed UTF-8 in src is decoded as U+FFFD and mapped like any other
// code point; Map does not report InvalidData for it.
//
// The output length is not computable from the input length alone (spec
// §4.4's "Sizing" note) — 1-to-N expansions like ß -> SS and locale
// tailoring can both grow and shrink the byte count.
func Map(dst, src []byte, op Operation, locale Locale) (n int, err error) {
	if dst != nil && len(src) > 0 && utf8codec.Overlaps(dst, src) {
		return 0, utf8codec.OverlappingParameters
	}

	runes := decodeAll(src)
	out := transformRunes(runes, op, locale)

	written := 0
	full := false
	for _, r := range out {
		need := utf8codec.RuneLen(r)
		if dst == nil || full || written+need > len(dst) {
			full = dst != nil
			n += need
		} else {
			utf8codec.EncodeRune(dst[written:written+need], r)
			written += need
			n += need
		}
	}

	if dst != nil && written < n {
		return n, utf8codec.With(utf8codec.NotEnoughSpace, "need %d bytes, have %d", n, len(dst))
	}
	return n, nil
}

func decodeAll(src []byte) []rune {
	runes := make([]rune, 0, len(src))
	for len(src) > 0 {
		r, size, _ := utf8codec.DecodeRune(src)
		runes = append(runes, r)
		src = src[size:]
	}
	return runes
}

// transformRunes is the per-code-point engine shared by all four
// operations. It walks the decoded input once, consulting the context
// predicates and the requested locale's tailoring, and emits the 1-to-N
// expansion for each input code point.
func transformRunes(runes []rune, op Operation, locale Locale) []rune {
	out := make([]rune, 0, len(runes))
	inWord := false // Title: whether we're past the first cased letter of the current word

	i := 0
	for i < len(runes) {
		cp := runes[i]
		consumed := 1

		switch op {
		case Fold:
			out = append(out, fold(runes, i, locale)...)

		case Upper:
			out = append(out, upper(runes, i, locale)...)

		case Lower:
			mapped, n := lower(runes, i, locale)
			out = append(out, mapped...)
			consumed = n

		case Title:
			if tables.Of(cp)&(tables.Letter) == 0 {
				inWord = false
				out = append(out, cp)
			} else if !inWord {
				inWord = true
				out = append(out, upper(runes, i, locale)...)
			} else {
				mapped, n := lower(runes, i, locale)
				out = append(out, mapped...)
				consumed = n
			}

		default:
			ks.Never()
		}

		i += consumed
	}
	return out
}

// fold returns the unconditional case fold of runes[i], tailored for
// Turkish/Azeri (which folds I/İ/ı/i the same way it lowercases them, per
// spec §4.4's "Casefold uses the same I/İ -> ı/i tailoring").
func fold(runes []rune, i int, locale Locale) []rune {
	cp := runes[i]
	if locale == Turkish {
		if m, ok := turkishDotless(cp); ok {
			return m
		}
	}
	return tables.Mapping(cp, tables.MapFold)
}

// upper returns the uppercase mapping of runes[i], tailored for Turkish (i
// -> İ).
func upper(runes []rune, i int, locale Locale) []rune {
	cp := runes[i]
	if locale == Turkish && cp == latinSmallI {
		return []rune{0x0130} // İ
	}
	if locale == Lithuanian && cp == combiningDotAbove && afterSoftDotted(runes, i) {
		return nil // dot above is dropped when uppercasing a soft-dotted letter
	}
	return tables.Mapping(cp, tables.MapUpper)
}

// lower returns the lowercase mapping of runes[i] and how many input code
// points it consumed (more than 1 only for the Turkish I+combining-dot-above
// case, which absorbs the following mark).
func lower(runes []rune, i int, locale Locale) (mapped []rune, consumed int) {
	cp := runes[i]

	if cp == 0x03A3 { // Σ
		if finalSigma(runes, i) {
			return []rune{0x03C2}, 1 // ς
		}
		return []rune{0x03C3}, 1 // σ
	}

	if locale == Turkish {
		if cp == latinCapitalI {
			if !notBeforeDot(runes, i) {
				return []rune{latinSmallI}, 2 // I + 0307 -> i, dot absorbed
			}
			return []rune{0x0131}, 1 // ı
		}
		if cp == 0x0130 { // İ
			return []rune{latinSmallI}, 1
		}
	}

	if locale == Lithuanian {
		switch cp {
		case latinCapitalI, latinCapitalJ, iWithOgonekUpper:
			base := tables.Mapping(cp, tables.MapLower)
			if moreAbove(runes, i) {
				return append(append([]rune{}, base...), combiningDotAbove), 1
			}
			return base, 1
		}
	}

	return tables.Mapping(cp, tables.MapLower), 1
}

// turkishDotless handles the I/İ fold tailoring used by fold; lower's
// Turkish branch applies the same I/İ mapping inline.
func turkishDotless(cp rune) ([]rune, bool) {
	switch cp {
	case latinCapitalI:
		return []rune{0x0131}, true
	case 0x0130:
		return []rune{latinSmallI}, true
	}
	return nil, false
}
