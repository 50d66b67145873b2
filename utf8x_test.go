package utf8x_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tawesoft/utf8x"
)

// Round-trip: every valid byte sequence survives a UTF-8 -> UTF-32 -> UTF-8
// round trip, and a UTF-8 -> UTF-16 -> UTF-8 round trip for code points
// outside the surrogate range.
func TestRoundTripUTF32(t *testing.T) {
	src := []byte("hello éè 中文 \U0001F600")

	n32, err := utf8x.UTF8ToUTF32(nil, src)
	assert.NoError(t, err)
	runes := make([]rune, n32)
	_, err = utf8x.UTF8ToUTF32(runes, src)
	assert.NoError(t, err)

	n8, err := utf8x.UTF32ToUTF8(nil, runes)
	assert.NoError(t, err)
	back := make([]byte, n8)
	_, err = utf8x.UTF32ToUTF8(back, runes)
	assert.NoError(t, err)

	assert.Equal(t, src, back)
}

func TestRoundTripUTF16(t *testing.T) {
	src := []byte("hello éè 中文 \U0001F600")

	n16, err := utf8x.UTF8ToUTF16(nil, src)
	assert.NoError(t, err)
	units := make([]uint16, n16)
	_, err = utf8x.UTF8ToUTF16(units, src)
	assert.NoError(t, err)

	n8, err := utf8x.UTF16ToUTF8(nil, units)
	assert.NoError(t, err)
	back := make([]byte, n8)
	_, err = utf8x.UTF16ToUTF8(back, units)
	assert.NoError(t, err)

	assert.Equal(t, src, back)
}

// Length bound: utf8_length(s) <= size_in_bytes(s), since every code point
// occupies at least one byte.
func TestLengthBound(t *testing.T) {
	samples := [][]byte{
		[]byte("hello"),
		[]byte("éè"),
		[]byte("中文"),
		[]byte("\U0001F600"),
		{},
	}
	for _, s := range samples {
		assert.LessOrEqual(t, utf8x.Length(s), len(s))
	}
}

func TestSeekFacade(t *testing.T) {
	// Scenario: seeking two 2-byte code points forward from the start of
	// a 3-codepoint, 2-bytes-each buffer lands at byte offset 4.
	text := []byte("αβγ") // alpha beta gamma, 2 bytes each
	got := utf8x.Seek(text, 0, 2, utf8x.SET)
	assert.Equal(t, 4, got)
}

func TestSeekSaturates(t *testing.T) {
	got := utf8x.Seek([]byte("abc"), 3, 99, utf8x.SET)
	assert.Equal(t, 3, got)
}

func TestUpperFacade(t *testing.T) {
	n, err := utf8x.Upper(nil, []byte("hello"), utf8x.Root)
	assert.NoError(t, err)
	dst := make([]byte, n)
	_, err = utf8x.Upper(dst, []byte("hello"), utf8x.Root)
	assert.NoError(t, err)
	assert.Equal(t, "HELLO", string(dst))
}

func TestIsCategoryFacade(t *testing.T) {
	n := utf8x.IsCategory([]byte("abc123 def"), utf8x.ISALNUM)
	assert.Equal(t, len("abc123"), n)
}

func TestNormalizeFacade(t *testing.T) {
	n, err := utf8x.Normalize(nil, []byte("Å"), utf8x.NFC)
	assert.NoError(t, err)
	dst := make([]byte, n)
	_, err = utf8x.Normalize(dst, []byte("Å"), utf8x.NFC)
	assert.NoError(t, err)
	assert.Equal(t, "Å", string(dst))
}
