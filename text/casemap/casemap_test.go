package casemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tawesoft/utf8x/text/casemap"
)

func mapString(t *testing.T, s string, op casemap.Operation, locale casemap.Locale) string {
	t.Helper()
	src := []byte(s)
	n, err := casemap.Map(nil, src, op, locale)
	assert.NoError(t, err)
	dst := make([]byte, n)
	written, err := casemap.Map(dst, src, op, locale)
	assert.NoError(t, err)
	assert.Equal(t, n, written)
	return string(dst)
}

// Scenario: "straße" uppercased under Root expands ß to SS.
func TestUpperGermanSharpSExpands(t *testing.T) {
	got := mapString(t, "straße", casemap.Upper, casemap.Root)
	assert.Equal(t, "STRASSE", got)
}

// Scenario: İ (capital dotted I) lowercased under Root produces i
// followed by a combining dot above, not ASCII i alone.
func TestLowerCapitalDottedIDefaultLocale(t *testing.T) {
	got := mapString(t, "İ", casemap.Lower, casemap.Root)
	assert.Equal(t, "i̇", got)
}

// Scenario: ASCII capital I lowercased under Turkish produces dotless
// ı, not ASCII i.
func TestLowerCapitalIInTurkish(t *testing.T) {
	got := mapString(t, "I", casemap.Lower, casemap.Turkish)
	assert.Equal(t, "ı", got)
}

// Scenario: capital I immediately followed by a combining dot above
// lowercases to plain i under Turkish, absorbing the dot.
func TestLowerCapitalIBeforeDotInTurkish(t *testing.T) {
	got := mapString(t, "I\u0307", casemap.Lower, casemap.Turkish)
	assert.Equal(t, "i", got)
}

// Scenario: ASCII lowercase i uppercased under Turkish produces İ
// (dotted capital I), not ASCII I.
func TestUpperLowercaseIInTurkish(t *testing.T) {
	got := mapString(t, "i", casemap.Upper, casemap.Turkish)
	assert.Equal(t, "İ", got)
}

func TestLowerCapitalIInRootIsPlainI(t *testing.T) {
	got := mapString(t, "I", casemap.Lower, casemap.Root)
	assert.Equal(t, "i", got)
}

// Scenario: titlecasing treats runs of non-letters as word separators and
// uppercases only the first cased letter of each word.
func TestTitleNATOAlliance(t *testing.T) {
	got := mapString(t, "NATO alliance", casemap.Title, casemap.Root)
	assert.Equal(t, "Nato Alliance", got)
}

func TestFinalSigmaLowercasesToFinalForm(t *testing.T) {
	got := mapString(t, "ΣΣ", casemap.Lower, casemap.Root)
	assert.Equal(t, "σς", got) // medial sigma then final sigma
}

// The Lithuanian tailoring is narrow: it only fires on I/J/Į followed
// by a combining mark with ccc==230, and otherwise leaves the Root
// mapping untouched.
func TestLithuanianTailoringIsNarrow(t *testing.T) {
	got := mapString(t, "I", casemap.Lower, casemap.Lithuanian)
	assert.Equal(t, "i", got)
}

func TestLithuanianInsertsDotAboveWhenMoreAboveHolds(t *testing.T) {
	// I followed by a combining grave accent (ccc==230, kept decomposed
	// rather than precomposed into a single codepoint) needs the
	// inserted dot above to keep the dotless base visually distinct.
	got := mapString(t, "I\u0300", casemap.Lower, casemap.Lithuanian)
	assert.Equal(t, "i\u0307\u0300", got)
}

// The following vectors are drawn directly from the original C library's
// Turkish titlecasing suite (suite-utf8-totitle-turkish.cpp).

func TestTitleTurkishSingleCapitalI(t *testing.T) {
	got := mapString(t, "I", casemap.Title, casemap.Turkish)
	assert.Equal(t, "I", got)
}

func TestTitleTurkishCapitalIAndDotAbove(t *testing.T) {
	got := mapString(t, "I\u0307", casemap.Title, casemap.Turkish)
	assert.Equal(t, "I\u0307", got)
}

func TestTitleTurkishCapitalIWithDotAbove(t *testing.T) {
	got := mapString(t, "\u0130", casemap.Title, casemap.Turkish)
	assert.Equal(t, "\u0130", got)
}

func TestTitleTurkishCapitalIWithDotAboveAndDotAbove(t *testing.T) {
	got := mapString(t, "\u0130\u0307", casemap.Title, casemap.Turkish)
	assert.Equal(t, "\u0130\u0307", got)
}

func TestTitleTurkishSmallI(t *testing.T) {
	got := mapString(t, "i", casemap.Title, casemap.Turkish)
	assert.Equal(t, "İ", got)
}

func TestTitleTurkishSmallDotlessI(t *testing.T) {
	got := mapString(t, "ı", casemap.Title, casemap.Turkish)
	assert.Equal(t, "I", got)
}

func TestTitleTurkishSmallDotlessIWithDotAbove(t *testing.T) {
	got := mapString(t, "\u0131\u0307", casemap.Title, casemap.Turkish)
	assert.Equal(t, "I\u0307", got)
}

func TestTitleTurkishWordCapitalI(t *testing.T) {
	got := mapString(t, "Imagine", casemap.Title, casemap.Turkish)
	assert.Equal(t, "Imagine", got)
}

func TestMeasureOnlyNeverErrors(t *testing.T) {
	n, err := casemap.Map(nil, []byte("straße"), casemap.Upper, casemap.Root)
	assert.NoError(t, err)
	assert.Equal(t, len("STRASSE"), n)
}

func TestNotEnoughSpaceReportsFullLength(t *testing.T) {
	dst := make([]byte, 2)
	n, err := casemap.Map(dst, []byte("straße"), casemap.Upper, casemap.Root)
	assert.Error(t, err)
	assert.Equal(t, len("STRASSE"), n)
}
