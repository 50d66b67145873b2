package utf8x

import (
	"github.com/tawesoft/utf8x/text/casemap"
	"github.com/tawesoft/utf8x/text/category"
	"github.com/tawesoft/utf8x/text/normalize"
	"github.com/tawesoft/utf8x/text/seek"
	"github.com/tawesoft/utf8x/text/utf8codec"
)

// Re-exported types so a caller only needs to import this one package for
// the common case.
type (
	Locale          = casemap.Locale
	Category        = category.Category
	Form            = normalize.Form
	NormalizeResult = normalize.Result
	Origin          = seek.Origin
	WideChar        = utf8codec.WideChar
)

const (
	Root       = casemap.Root
	Turkish    = casemap.Turkish
	Lithuanian = casemap.Lithuanian

	NFC  = normalize.NFC
	NFD  = normalize.NFD
	NFKC = normalize.NFKC
	NFKD = normalize.NFKD

	// NormalizeResult values returned by [IsNormalized].
	NormalizeYes   = normalize.Yes
	NormalizeNo    = normalize.No
	NormalizeMaybe = normalize.Maybe

	SET = seek.SET
	CUR = seek.CUR
	END = seek.END
)

// Category bitmask and POSIX-style aliases, re-exported from
// [github.com/tawesoft/utf8x/text/category].
const (
	Letter      = category.Letter
	Mark        = category.Mark
	Number      = category.Number
	Punctuation = category.Punctuation
	Symbol      = category.Symbol
	Separator   = category.Separator
	Cased       = category.Cased

	ISALPHA  = category.ISALPHA
	ISUPPER  = category.ISUPPER
	ISLOWER  = category.ISLOWER
	ISDIGIT  = category.ISDIGIT
	ISALNUM  = category.ISALNUM
	ISXDIGIT = category.ISXDIGIT
	ISCNTRL  = category.ISCNTRL
	ISPRINT  = category.ISPRINT
	ISGRAPH  = category.ISGRAPH
	ISPUNCT  = category.ISPUNCT
	ISSPACE  = category.ISSPACE
	ISBLANK  = category.ISBLANK
)

// Length returns the number of code points represented by s (spec
// §6.1 utf8_length).
func Length(s []byte) int {
	return utf8codec.Length(s)
}

// UTF16ToUTF8 converts src from UTF-16 to UTF-8 (spec §6.1 utf16_to_utf8).
func UTF16ToUTF8(dst []byte, src []uint16) (n int, err error) {
	return utf8codec.UTF16ToUTF8(dst, src)
}

// UTF8ToUTF16 converts src from UTF-8 to UTF-16 (spec §6.1 utf8_to_utf16).
func UTF8ToUTF16(dst []uint16, src []byte) (n int, err error) {
	return utf8codec.UTF8ToUTF16(dst, src)
}

// UTF32ToUTF8 converts src from UTF-32 to UTF-8 (spec §6.1 utf32_to_utf8).
func UTF32ToUTF8(dst []byte, src []rune) (n int, err error) {
	return utf8codec.UTF32ToUTF8(dst, src)
}

// UTF8ToUTF32 converts src from UTF-8 to UTF-32 (spec §6.1 utf8_to_utf32).
func UTF8ToUTF32(dst []rune, src []byte) (n int, err error) {
	return utf8codec.UTF8ToUTF32(dst, src)
}

// WideToUTF8 converts src from the platform "wide" character encoding
// (UTF-16 on Windows, UTF-32 elsewhere) to UTF-8 (spec §6.1 wide_to_utf8).
func WideToUTF8(dst []byte, src []utf8codec.WideChar) (n int, err error) {
	return utf8codec.WideToUTF8(dst, src)
}

// UTF8ToWide converts src from UTF-8 to the platform "wide" character
// encoding (spec §6.1 utf8_to_wide).
func UTF8ToWide(dst []utf8codec.WideChar, src []byte) (n int, err error) {
	return utf8codec.UTF8ToWide(dst, src)
}

// Seek moves cursor by offset code points within text, honoring origin
// (spec §6.1 utf8_seek).
func Seek(text []byte, cursor, offset int, origin Origin) int {
	return seek.Seek(text, cursor, offset, origin)
}

// Upper writes the uppercase mapping of src under locale to dst (spec
// §6.1 utf8_upper).
func Upper(dst, src []byte, locale Locale) (n int, err error) {
	return casemap.Map(dst, src, casemap.Upper, locale)
}

// Lower writes the lowercase mapping of src under locale to dst (spec
// §6.1 utf8_lower).
func Lower(dst, src []byte, locale Locale) (n int, err error) {
	return casemap.Map(dst, src, casemap.Lower, locale)
}

// Title writes the titlecase mapping of src under locale to dst (spec
// §6.1 utf8_title).
func Title(dst, src []byte, locale Locale) (n int, err error) {
	return casemap.Map(dst, src, casemap.Title, locale)
}

// Casefold writes the caseless-comparison fold of src under locale to dst
// (spec §6.1 utf8_casefold).
func Casefold(dst, src []byte, locale Locale) (n int, err error) {
	return casemap.Map(dst, src, casemap.Fold, locale)
}

// IsNormalized reports whether src is already in the given normalization
// form and, when it is not, the byte offset of the first code point
// responsible for that answer; offset is -1 when result is
// [NormalizeYes] (spec §6.1 utf8_is_normalized).
func IsNormalized(src []byte, form Form) (result NormalizeResult, offset int) {
	return normalize.IsNormalized(src, form)
}

// Normalize writes the normalization of src under form to dst (spec §6.1
// utf8_normalize).
func Normalize(dst, src []byte, form Form) (n int, err error) {
	return normalize.Normalize(dst, src, form)
}

// IsCategory returns the number of leading bytes of s whose every code
// point matches mask (spec §6.1 utf8_is_category).
func IsCategory(s []byte, mask Category) int {
	return category.IsCategory(s, mask)
}
