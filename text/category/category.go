// Package category exposes the Unicode general-category bitmask and the
// POSIX-style convenience aliases built on it. It is a thin, re-exporting
// layer over [github.com/tawesoft/utf8x/internal/unicode/tables]: the
// category logic itself lives in that package per this module's "tables
// vs. code" design rule (spec §9) — only naming and the historical
// ISALNUM-family aliases live here.
package category

import (
	"github.com/tawesoft/utf8x/internal/unicode/tables"
	"github.com/tawesoft/utf8x/text/utf8codec"
)

// Category is a bitmask of Unicode General_Category flags.
type Category = tables.Category

const (
	LetterUppercase = tables.LetterUppercase
	LetterLowercase = tables.LetterLowercase
	LetterTitlecase = tables.LetterTitlecase
	LetterModifier  = tables.LetterModifier
	LetterOther     = tables.LetterOther

	MarkNonSpacing = tables.MarkNonSpacing
	MarkSpacing    = tables.MarkSpacing
	MarkEnclosing  = tables.MarkEnclosing

	NumberDecimal = tables.NumberDecimal
	NumberLetter  = tables.NumberLetter
	NumberOther   = tables.NumberOther

	PunctuationConnector = tables.PunctuationConnector
	PunctuationDash      = tables.PunctuationDash
	PunctuationOpen      = tables.PunctuationOpen
	PunctuationClose     = tables.PunctuationClose
	PunctuationInitial   = tables.PunctuationInitial
	PunctuationFinal     = tables.PunctuationFinal
	PunctuationOther     = tables.PunctuationOther

	SymbolMath     = tables.SymbolMath
	SymbolCurrency = tables.SymbolCurrency
	SymbolModifier = tables.SymbolModifier
	SymbolOther    = tables.SymbolOther

	SeparatorSpace     = tables.SeparatorSpace
	SeparatorLine      = tables.SeparatorLine
	SeparatorParagraph = tables.SeparatorParagraph

	Control    = tables.Control
	Format     = tables.Format
	Surrogate  = tables.Surrogate
	PrivateUse = tables.PrivateUse
	Unassigned = tables.Unassigned

	Letter      = tables.Letter
	Mark        = tables.Mark
	Number      = tables.Number
	Punctuation = tables.Punctuation
	Symbol      = tables.Symbol
	Separator   = tables.Separator
	Cased       = tables.Cased
)

// Further convenience aliases from spec §6.4, plus the POSIX-style
// ISALNUM/ISALPHA/... family. The original C library this module descends
// from aliased ISALNUM, ISALPHA, ISUPPER, ISLOWER, ISDIGIT, and ISXDIGIT to
// SEPARATOR_SPACE — almost certainly a copy-paste bug, since none of those
// six names have anything to do with whitespace. Per spec §9's explicit
// redesign instruction, they are defined correctly here instead.
const (
	Print = Letter | Number | Punctuation | Symbol | Separator
	Graph = Letter | Number | Punctuation | Symbol
	Cntrl = Control

	ISALPHA  = Letter
	ISUPPER  = LetterUppercase
	ISLOWER  = LetterLowercase
	ISDIGIT  = NumberDecimal
	ISALNUM  = Letter | NumberDecimal
	ISXDIGIT = NumberDecimal // Unicode has no general category specific to hex digits
	ISCNTRL  = Control
	ISPRINT  = Print
	ISGRAPH  = Graph
	ISPUNCT  = Punctuation | Symbol
	ISSPACE  = SeparatorSpace
	ISBLANK  = SeparatorSpace
)

// Of returns the general category of r.
func Of(r rune) Category {
	return tables.Of(r)
}

// Is reports whether r's category matches any bit set in mask.
func Is(r rune, mask Category) bool {
	return tables.Of(r)&mask != 0
}

// IsCategory returns the number of leading bytes of s whose every decoded
// code point matches mask, stopping at the first code point that doesn't
// (spec §6.4: "the number of leading bytes of input whose every code point
// matches the requested mask").
func IsCategory(s []byte, mask Category) int {
	n := 0
	for len(s) > 0 {
		r, size, _ := utf8codec.DecodeRune(s)
		if !Is(r, mask) {
			break
		}
		n += size
		s = s[size:]
	}
	return n
}
