package tables

import (
	"sort"
	stdunicode "unicode"
)

// MapKind selects which of the four simple case mappings a caller wants.
type MapKind int

const (
	MapUpper MapKind = iota
	MapLower
	MapTitle
	// MapFold is the unconditional, locale-independent case fold used for
	// caseless comparison (full fold, not simple fold: it may expand).
	MapFold
)

type mapRecord struct {
	cp   rune
	kind MapKind
	to   []rune
}

// mappingTable holds the 1-to-N and otherwise-irregular default (root
// locale) case mappings from SpecialCasing.txt and CaseFolding.txt that the
// stdlib unicode package's one-rune-to-one-rune ToUpper/ToLower/ToTitle
// cannot express. Locale-tailored and context-conditional rules (Turkish
// and Lithuanian dotted/dotless I, final sigma, ...) live in
// [github.com/tawesoft/utf8x/text/casemap], which consults this table for
// the untailored default and overrides it when a tailoring rule applies.
var mappingTable = []mapRecord{
	{0x00DF, MapUpper, []rune{0x0053, 0x0053}},         // ß -> SS
	{0x00DF, MapFold, []rune{0x0073, 0x0073}},           // ß -> ss (full fold)
	{0x0130, MapLower, []rune{0x0069, 0x0307}},          // İ -> i + combining dot above (root locale)
	{0x0130, MapFold, []rune{0x0069, 0x0307}},
	{0xFB00, MapUpper, []rune{0x0046, 0x0046}},          // ﬀ -> FF
	{0xFB01, MapUpper, []rune{0x0046, 0x0049}},          // ﬁ -> FI
	{0xFB02, MapUpper, []rune{0x0046, 0x004C}},          // ﬂ -> FL
	{0xFB03, MapUpper, []rune{0x0046, 0x0046, 0x0049}},  // ﬃ -> FFI
	{0xFB04, MapUpper, []rune{0x0046, 0x0046, 0x004C}},  // ﬄ -> FFL
	{0x0390, MapUpper, []rune{0x0399, 0x0308, 0x0301}},  // ΐ -> Ϊ́ (iota with dialytika and tonos)
	{0x03B0, MapUpper, []rune{0x03A5, 0x0308, 0x0301}},  // ΰ -> Ϋ́
}

func init() {
	sort.Slice(mappingTable, func(i, j int) bool {
		if mappingTable[i].cp != mappingTable[j].cp {
			return mappingTable[i].cp < mappingTable[j].cp
		}
		return mappingTable[i].kind < mappingTable[j].kind
	})
}

// Mapping returns the default (untailored, context-free) case mapping of r
// for the given kind. It first checks the irregular 1-to-N table, then
// falls back to the Go standard library's simple one-rune case mapping
// (unicode.ToUpper/ToLower/ToTitle), which is full-BMP, UCD-derived data
// already part of the toolchain. MapFold falls back to simple lower-casing
// when there is no irregular full-fold entry, which is correct for every
// script this module curates except the handful of explicit exceptions
// above.
func Mapping(r rune, kind MapKind) []rune {
	i := sort.Search(len(mappingTable), func(i int) bool {
		if mappingTable[i].cp != r {
			return mappingTable[i].cp >= r
		}
		return mappingTable[i].kind >= kind
	})
	if i < len(mappingTable) && mappingTable[i].cp == r && mappingTable[i].kind == kind {
		return mappingTable[i].to
	}

	switch kind {
	case MapUpper:
		return []rune{stdunicode.ToUpper(r)}
	case MapTitle:
		return []rune{stdunicode.ToTitle(r)}
	case MapLower, MapFold:
		return []rune{stdunicode.ToLower(r)}
	}
	return []rune{r}
}
