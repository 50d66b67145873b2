package utf8codec

// DecodeUTF32 decodes the first code point from s, a sequence of UTF-32
// code units (one rune each). ok is false when s[0] is not a valid scalar
// value (out of range, or an encoded surrogate).
func DecodeUTF32(s []rune) (r rune, size int, ok bool) {
	if len(s) == 0 {
		return Replacement, 0, false
	}
	if !ValidScalar(s[0]) {
		return Replacement, 1, false
	}
	return s[0], 1, true
}

// EncodeUTF32 writes r (or [Replacement], if invalid) as a single UTF-32
// code unit into dst and returns 1.
func EncodeUTF32(dst []rune, r rune) int {
	if !ValidScalar(r) {
		r = Replacement
	}
	dst[0] = r
	return 1
}

// UTF32ToUTF8 converts src (UTF-32) into dst (UTF-8), with the same
// measure/partial-write/error semantics as [UTF16ToUTF8].
func UTF32ToUTF8(dst []byte, src []rune) (n int, err error) {
	if dst != nil && len(src) > 0 && Overlaps(dst, runeSliceAsBytes(src)) {
		return 0, OverlappingParameters
	}

	invalid := false
	written := 0
	full := false
	for _, u := range src {
		r, ok := u, ValidScalar(u)
		if !ok {
			r, invalid = Replacement, true
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
	}

	if dst != nil && written < n {
		return n, With(NotEnoughSpace, "need %d bytes, have %d", n, len(dst))
	}
	if invalid {
		return n, With(InvalidData, "source contained an invalid scalar value")
	}
	return n, nil
}

// UTF8ToUTF32 converts src (UTF-8) into dst (UTF-32 code units), with the
// same measure/partial-write/error semantics as [UTF16ToUTF8].
func UTF8ToUTF32(dst []rune, src []byte) (n int, err error) {
	if dst != nil && len(dst) > 0 && Overlaps(runeSliceAsBytes(dst), src) {
		return 0, OverlappingParameters
	}

	invalid := false
	written := 0
	for len(src) > 0 {
		r, size, ok := DecodeRune(src)
		if !ok {
			invalid = true
		}
		if dst == nil || written+1 > len(dst) {
			n++
		} else {
			EncodeUTF32(dst[written:written+1], r)
			written++
			n++
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
