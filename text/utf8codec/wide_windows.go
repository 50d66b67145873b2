//go:build windows

package utf8codec

import (
	"golang.org/x/sys/windows"
)

// WideIsUTF16 is true on Windows, where wchar_t is 16 bits and the "wide"
// encoding is UTF-16 (with unpaired surrogates permitted, i.e. potentially
// ill-formed UTF-16 — but this module treats wide text the same as any
// other UTF-16 source, replacing unpaired surrogates with [Replacement]).
const WideIsUTF16 = true

// WideChar is the platform's native wide character unit.
type WideChar = uint16

// WideToUTF8 converts src (native wide-char units, UTF-16 on this
// platform) into UTF-8, with the same measure/partial-write/error
// semantics as [UTF16ToUTF8], which it delegates to directly.
func WideToUTF8(dst []byte, src []WideChar) (n int, err error) {
	return UTF16ToUTF8(dst, src)
}

// UTF8ToWide converts src (UTF-8) into native wide-char units (UTF-16 on
// this platform), delegating to [UTF8ToUTF16].
func UTF8ToWide(dst []WideChar, src []byte) (n int, err error) {
	return UTF8ToUTF16(dst, src)
}

// WidePtrFromUTF8 converts src (valid UTF-8) to a NUL-terminated UTF-16
// pointer suitable for Windows syscalls expecting LPCWSTR, continuing the
// teacher's own dialog-win.go pattern of going straight from a Go string to
// a windows.UTF16PtrFromString argument rather than marshaling by hand.
func WidePtrFromUTF8(src []byte) (*uint16, error) {
	return windows.UTF16PtrFromString(string(src))
}
