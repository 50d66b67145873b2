package tables

// Hangul syllables decompose algorithmically (UAX #15 §3.12) rather than by
// table lookup: the block is 11172 code points, all generated from 19
// leading consonants (L), 21 vowels (V), and 27+1 trailing consonants (T)
// by simple arithmetic.
const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSCount = hangulLCount * hangulNCount // 11172
)

func isHangulSyllable(r rune) bool {
	return r >= hangulSBase && r < hangulSBase+hangulSCount
}

// hangulDecompose returns the canonical decomposition of a Hangul syllable:
// either [L, V] (if there is no trailing consonant) or [L, V, T].
func hangulDecompose(r rune) ([]rune, bool) {
	if !isHangulSyllable(r) {
		return nil, false
	}
	sIndex := r - hangulSBase
	l := hangulLBase + sIndex/hangulNCount
	v := hangulVBase + (sIndex%hangulNCount)/hangulTCount
	t := hangulTBase + sIndex%hangulTCount
	if t == hangulTBase {
		return []rune{l, v}, true
	}
	return []rune{l, v, t}, true
}

// hangulCompose implements the two stages of Hangul canonical composition:
// L+V -> LV, and LV+T -> LVT. It returns (0, false) if a and b do not
// combine.
func hangulCompose(a, b rune) (rune, bool) {
	if a >= hangulLBase && a < hangulLBase+hangulLCount &&
		b >= hangulVBase && b < hangulVBase+hangulVCount {
		l := a - hangulLBase
		v := b - hangulVBase
		return hangulSBase + (l*hangulVCount+v)*hangulTCount, true
	}
	if isHangulSyllable(a) && b > hangulTBase && b < hangulTBase+hangulTCount {
		sIndex := a - hangulSBase
		if sIndex%hangulTCount == 0 {
			return a + (b - hangulTBase), true
		}
	}
	return 0, false
}
