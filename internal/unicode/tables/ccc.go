package tables

import "sort"

type cccRecord struct {
	cp  rune
	ccc uint8
}

// cccTable holds every combining mark this module's curated data set cares
// about. Code points absent from this table default to canonical combining
// class 0 (starter) — correct for the overwhelming majority of Unicode,
// where nonzero-CCC code points are a small, closed set of combining marks.
var cccTable = []cccRecord{
	{0x0300, 230}, // combining grave accent
	{0x0301, 230}, // combining acute accent
	{0x0302, 230}, // combining circumflex accent
	{0x0303, 230}, // combining tilde
	{0x0304, 230}, // combining macron
	{0x0306, 230}, // combining breve
	{0x0307, 230}, // combining dot above
	{0x0308, 230}, // combining diaeresis
	{0x0309, 230}, // combining hook above
	{0x030A, 230}, // combining ring above
	{0x030B, 230}, // combining double acute accent
	{0x030C, 230}, // combining caron
	{0x0323, 220}, // combining dot below
	{0x0324, 220}, // combining diaeresis below
	{0x0325, 220}, // combining ring below
	{0x0326, 220}, // combining comma below
	{0x0327, 202}, // combining cedilla
	{0x0328, 202}, // combining ogonek
	{0x032D, 220}, // combining circumflex accent below
	{0x0330, 220}, // combining tilde below
	{0x0331, 220}, // combining macron below
	{0x0591, 220}, // Hebrew accent etba (representative non-Latin sample)
	{0x05B0, 10},
	{0x05BC, 20},
	{0x0483, 230}, // Cyrillic combining titlo
	{0x0484, 230}, // Cyrillic combining palatalization
	{0x0485, 230}, // Cyrillic combining dasia pneumata
	{0x0486, 230}, // Cyrillic combining psili pneumata
	{0x0487, 230}, // Cyrillic combining pokrytie
}

func init() {
	sort.Slice(cccTable, func(i, j int) bool { return cccTable[i].cp < cccTable[j].cp })
}

// CCC returns the canonical combining class of r, defaulting to 0.
func CCC(r rune) uint8 {
	i := sort.Search(len(cccTable), func(i int) bool { return cccTable[i].cp >= r })
	if i < len(cccTable) && cccTable[i].cp == r {
		return cccTable[i].ccc
	}
	return 0
}
