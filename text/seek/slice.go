package seek

import "golang.org/x/exp/utf8string"

// Slice returns the code-point range [start, end) of text as a string,
// clamping start and end to text's bounds and delegating the actual
// code-point-indexed, bounds-safe extraction to
// [golang.org/x/exp/utf8string.String.Slice] — the same truncation idiom the
// teacher's ks.WrapBlock uses for wrapping a single over-long word to a
// column width.
//
// start and end are code-point offsets from the beginning of text, not
// byte offsets; both saturate to the buffer's bounds the same way Seek
// does.
func Slice(text []byte, start, end int) string {
	s := utf8string.NewString(string(text))
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if end > s.RuneCount() {
		end = s.RuneCount()
	}
	if start > end {
		start = end
	}
	return s.Slice(start, end)
}
