package utf8codec

const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
)

// DecodeUTF16 decodes the first code point from s, a sequence of UTF-16
// code units. A high surrogate not followed by a low surrogate, a lone low
// surrogate, or an empty s all decode as (Replacement, consumed, false)
// with consumed the number of code units inspected (0 only for empty s).
func DecodeUTF16(s []uint16) (r rune, size int, ok bool) {
	if len(s) == 0 {
		return Replacement, 0, false
	}
	u0 := s[0]
	if u0 < highSurrogateMin || u0 > lowSurrogateMax {
		return rune(u0), 1, true
	}
	if u0 > highSurrogateMax {
		return Replacement, 1, false // lone low surrogate
	}
	if len(s) < 2 || s[1] < lowSurrogateMin || s[1] > lowSurrogateMax {
		return Replacement, 1, false // unpaired high surrogate
	}
	r = ((rune(u0-highSurrogateMin) << 10) | rune(s[1]-lowSurrogateMin)) + 0x10000
	return r, 2, true
}

// EncodeUTF16 writes the UTF-16 encoding of r (1 or 2 code units) into dst
// and returns the count written. Invalid scalar values encode as
// [Replacement].
func EncodeUTF16(dst []uint16, r rune) int {
	if !ValidScalar(r) {
		r = Replacement
	}
	if r < 0x10000 {
		dst[0] = uint16(r)
		return 1
	}
	r -= 0x10000
	dst[0] = uint16(highSurrogateMin + (r >> 10))
	dst[1] = uint16(lowSurrogateMin + (r & 0x3FF))
	return 2
}

// UTF16Len returns the number of UTF-16 code units EncodeUTF16 would write.
func UTF16Len(r rune) int {
	if ValidScalar(r) && r >= 0x10000 {
		return 2
	}
	return 1
}

// UTF16ToUTF8 converts src (UTF-16) into dst (UTF-8). If dst is nil, it only
// measures: it returns the number of bytes that would be written and a nil
// error (a measure call never reports NotEnoughSpace). Otherwise it writes
// whole code points until dst is full; if dst was too small it writes every
// code point that fit and returns (bytesNeeded, NotEnoughSpace). If src
// contained malformed UTF-16, it returns InvalidData alongside a completed
// write. Overlapping src/dst is rejected unconditionally.
func UTF16ToUTF8(dst []byte, src []uint16) (n int, err error) {
	if dst != nil && len(src) > 0 && Overlaps(dst, uint16SliceAsBytes(src)) {
		return 0, OverlappingParameters
	}

	invalid := false
	written := 0
	full := false
	for len(src) > 0 {
		r, size, ok := DecodeUTF16(src)
		if !ok {
			invalid = true
		}
		need := RuneLen(r)
		if dst == nil || full || written+need > len(dst) {
			full = dst != nil
			n += need
		} else {
			EncodeRune(dst[written:written+need], r)
			written += need
			n += need
		}
		src = src[size:]
	}

	if dst != nil && written < n {
		return n, With(NotEnoughSpace, "need %d bytes, have %d", n, len(dst))
	}
	if invalid {
		return n, With(InvalidData, "source contained malformed UTF-16")
	}
	return n, nil
}

// UTF8ToUTF16 converts src (UTF-8) into dst (UTF-16 code units), with the
// same measure/partial-write/error semantics as [UTF16ToUTF8].
func UTF8ToUTF16(dst []uint16, src []byte) (n int, err error) {
	if dst != nil && len(dst) > 0 && Overlaps(uint16SliceAsBytes(dst), src) {
		return 0, OverlappingParameters
	}

	invalid := false
	written := 0
	full := false
	for len(src) > 0 {
		r, size, ok := DecodeRune(src)
		if !ok {
			invalid = true
		}
		need := UTF16Len(r)
		if dst == nil || full || written+need > len(dst) {
			full = dst != nil
			n += need
		} else {
			EncodeUTF16(dst[written:written+need], r)
			written += need
			n += need
		}
		src = src[size:]
	}

	if dst != nil && written < n {
		return n, With(NotEnoughSpace, "need %d units, have %d", n, len(dst))
	}
	if invalid {
		return n, With(InvalidData, "source contained malformed UTF-8")
	}
	return n, nil
}
