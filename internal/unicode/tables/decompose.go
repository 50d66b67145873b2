package tables

import "sort"

// DecompKind classifies a decomposition mapping as it appears in
// UnicodeData.txt: None (no mapping), Canonical (unmarked, participates in
// NFC/NFD), or Compatibility (tagged, e.g. <compat>, participates only in
// NFKC/NFKD).
type DecompKind int

const (
	DecompNone DecompKind = iota
	DecompCanonical
	DecompCompatibility
)

type decompRecord struct {
	cp     rune
	kind   DecompKind
	mapped []rune
}

// decompTable holds single-step (non-recursive) decomposition mappings.
// Decomposition performs the recursive expansion to a fixed point; callers
// should never need to loop this table themselves.
var decompTable = []decompRecord{
	{0x00C0, DecompCanonical, []rune{0x0041, 0x0300}}, // À
	{0x00C1, DecompCanonical, []rune{0x0041, 0x0301}}, // Á
	{0x00C2, DecompCanonical, []rune{0x0041, 0x0302}}, // Â
	{0x00C3, DecompCanonical, []rune{0x0041, 0x0303}}, // Ã
	{0x00C4, DecompCanonical, []rune{0x0041, 0x0308}}, // Ä
	{0x00C5, DecompCanonical, []rune{0x0041, 0x030A}}, // Å
	{0x00C7, DecompCanonical, []rune{0x0043, 0x0327}}, // Ç
	{0x00C8, DecompCanonical, []rune{0x0045, 0x0300}}, // È
	{0x00C9, DecompCanonical, []rune{0x0045, 0x0301}}, // É
	{0x00CA, DecompCanonical, []rune{0x0045, 0x0302}}, // Ê
	{0x00CB, DecompCanonical, []rune{0x0045, 0x0308}}, // Ë
	{0x00CC, DecompCanonical, []rune{0x0049, 0x0300}}, // Ì
	{0x00CD, DecompCanonical, []rune{0x0049, 0x0301}}, // Í
	{0x00CE, DecompCanonical, []rune{0x0049, 0x0302}}, // Î
	{0x00CF, DecompCanonical, []rune{0x0049, 0x0308}}, // Ï
	{0x00D1, DecompCanonical, []rune{0x004E, 0x0303}}, // Ñ
	{0x00D2, DecompCanonical, []rune{0x004F, 0x0300}}, // Ò
	{0x00D3, DecompCanonical, []rune{0x004F, 0x0301}}, // Ó
	{0x00D4, DecompCanonical, []rune{0x004F, 0x0302}}, // Ô
	{0x00D5, DecompCanonical, []rune{0x004F, 0x0303}}, // Õ
	{0x00D6, DecompCanonical, []rune{0x004F, 0x0308}}, // Ö
	{0x00D9, DecompCanonical, []rune{0x0055, 0x0300}}, // Ù
	{0x00DA, DecompCanonical, []rune{0x0055, 0x0301}}, // Ú
	{0x00DB, DecompCanonical, []rune{0x0055, 0x0302}}, // Û
	{0x00DC, DecompCanonical, []rune{0x0055, 0x0308}}, // Ü
	{0x00DD, DecompCanonical, []rune{0x0059, 0x0301}}, // Ý
	{0x00E0, DecompCanonical, []rune{0x0061, 0x0300}}, // à
	{0x00E1, DecompCanonical, []rune{0x0061, 0x0301}}, // á
	{0x00E2, DecompCanonical, []rune{0x0061, 0x0302}}, // â
	{0x00E3, DecompCanonical, []rune{0x0061, 0x0303}}, // ã
	{0x00E4, DecompCanonical, []rune{0x0061, 0x0308}}, // ä
	{0x00E5, DecompCanonical, []rune{0x0061, 0x030A}}, // å
	{0x00E7, DecompCanonical, []rune{0x0063, 0x0327}}, // ç
	{0x00E8, DecompCanonical, []rune{0x0065, 0x0300}}, // è
	{0x00E9, DecompCanonical, []rune{0x0065, 0x0301}}, // é
	{0x00EA, DecompCanonical, []rune{0x0065, 0x0302}}, // ê
	{0x00EB, DecompCanonical, []rune{0x0065, 0x0308}}, // ë
	{0x00EC, DecompCanonical, []rune{0x0069, 0x0300}}, // ì
	{0x00ED, DecompCanonical, []rune{0x0069, 0x0301}}, // í
	{0x00EE, DecompCanonical, []rune{0x0069, 0x0302}}, // î
	{0x00EF, DecompCanonical, []rune{0x0069, 0x0308}}, // ï
	{0x00F1, DecompCanonical, []rune{0x006E, 0x0303}}, // ñ
	{0x00F2, DecompCanonical, []rune{0x006F, 0x0300}}, // ò
	{0x00F3, DecompCanonical, []rune{0x006F, 0x0301}}, // ó
	{0x00F4, DecompCanonical, []rune{0x006F, 0x0302}}, // ô
	{0x00F5, DecompCanonical, []rune{0x006F, 0x0303}}, // õ
	{0x00F6, DecompCanonical, []rune{0x006F, 0x0308}}, // ö
	{0x00F9, DecompCanonical, []rune{0x0075, 0x0300}}, // ù
	{0x00FA, DecompCanonical, []rune{0x0075, 0x0301}}, // ú
	{0x00FB, DecompCanonical, []rune{0x0075, 0x0302}}, // û
	{0x00FC, DecompCanonical, []rune{0x0075, 0x0308}}, // ü
	{0x00FD, DecompCanonical, []rune{0x0079, 0x0301}}, // ý
	{0x00FF, DecompCanonical, []rune{0x0079, 0x0308}}, // ÿ
	{0x0130, DecompCompatibility, []rune{0x0049, 0x0307}}, // İ -> I + combining dot above (compat; only NFKC/NFKD apply it)
	{0x1E60, DecompCanonical, []rune{0x0053, 0x0307}},     // Ṡ LATIN CAPITAL LETTER S WITH DOT ABOVE
	{0x1E61, DecompCanonical, []rune{0x0073, 0x0307}},     // ṡ LATIN SMALL LETTER S WITH DOT ABOVE
	{0x1E62, DecompCanonical, []rune{0x0053, 0x0323}},     // Ṣ LATIN CAPITAL LETTER S WITH DOT BELOW
	{0x1E63, DecompCanonical, []rune{0x0073, 0x0323}},     // ṣ LATIN SMALL LETTER S WITH DOT BELOW
	{0x1E68, DecompCanonical, []rune{0x1E62, 0x0307}},     // Ṩ LATIN CAPITAL LETTER S WITH DOT ABOVE AND DOT BELOW
	{0x1E69, DecompCanonical, []rune{0x1E63, 0x0307}},     // ṩ LATIN SMALL LETTER S WITH DOT ABOVE AND DOT BELOW
	{0x2126, DecompCanonical, []rune{0x03A9}},             // OHM SIGN -> GREEK CAPITAL LETTER OMEGA (singleton)
	{0x212B, DecompCanonical, []rune{0x00C5}},             // ANGSTROM SIGN -> Å (singleton)
}

func init() {
	sort.Slice(decompTable, func(i, j int) bool { return decompTable[i].cp < decompTable[j].cp })
}

func lookupDecomp(r rune) (decompRecord, bool) {
	i := sort.Search(len(decompTable), func(i int) bool { return decompTable[i].cp >= r })
	if i < len(decompTable) && decompTable[i].cp == r {
		return decompTable[i], true
	}
	return decompRecord{}, false
}

// Decomposition returns the single-step decomposition of r and its kind.
// Hangul syllables are handled algorithmically; everything else comes from
// decompTable. ok is false if r has no decomposition mapping (the common
// case for the vast majority of code points).
func Decomposition(r rune) (kind DecompKind, mapped []rune, ok bool) {
	if m, hOk := hangulDecompose(r); hOk {
		return DecompCanonical, m, true
	}
	if rec, tOk := lookupDecomp(r); tOk {
		return rec.kind, rec.mapped, true
	}
	return DecompNone, nil, false
}
