//go:build !windows

package utf8codec

// WideIsUTF16 is false everywhere except Windows: POSIX platforms define
// wchar_t as 32 bits, so "wide" text is UTF-32.
const WideIsUTF16 = false

// WideChar is the platform's native wide character unit.
type WideChar = rune

// WideToUTF8 converts src (native wide-char units, UTF-32 on this
// platform) into UTF-8, delegating to [UTF32ToUTF8].
func WideToUTF8(dst []byte, src []WideChar) (n int, err error) {
	return UTF32ToUTF8(dst, src)
}

// UTF8ToWide converts src (UTF-8) into native wide-char units (UTF-32 on
// this platform), delegating to [UTF8ToUTF32].
func UTF8ToWide(dst []WideChar, src []byte) (n int, err error) {
	return UTF8ToUTF32(dst, src)
}
