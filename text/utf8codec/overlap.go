package utf8codec

import (
	"unsafe"

	"github.com/tawesoft/utf8x/operator/checked"
)

var uintptrLimits = checked.Limits[uintptr]{Min: 0, Max: ^uintptr(0)}

// Overlaps reports whether a and b share any byte of backing storage. It
// follows spec component C2's centre-distance algorithm rather than a
// range-intersection test: each slice is reduced to its doubled midpoint
// (twice its start offset from the lower of the two starts, plus its
// length), and the two ranges overlap iff the distance between doubled
// midpoints is less than the sum of the two lengths. Doubling keeps odd
// lengths exact. A zero-length slice never overlaps anything.
//
// The arithmetic that combines offsets and lengths uses operator/checked
// so that a caller-supplied slice long enough to push a doubled midpoint
// or the length sum past the platform's uintptr range is reported as
// overlapping (the safe answer) instead of wrapping around and silently
// reporting no overlap.
func Overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))

	base := min(aStart, bStart)
	aOff, aOk := uintptrLimits.Mul(aStart-base, 2)
	bOff, bOk := uintptrLimits.Mul(bStart-base, 2)
	if !aOk || !bOk {
		return true
	}
	aCenter, aOk := uintptrLimits.Add(aOff, uintptr(len(a)))
	bCenter, bOk := uintptrLimits.Add(bOff, uintptr(len(b)))
	if !aOk || !bOk {
		return true
	}

	var dist uintptr
	if aCenter >= bCenter {
		dist = aCenter - bCenter
	} else {
		dist = bCenter - aCenter
	}
	extents, ok := uintptrLimits.Add(uintptr(len(a)), uintptr(len(b)))
	if !ok {
		return true
	}
	return dist < extents
}

// uint16SliceAsBytes reinterprets s's backing storage as bytes, purely so
// [Overlaps] can compare it against a []byte range; it is never used to
// read or write code unit values.
func uint16SliceAsBytes(s []uint16) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*2)
}

// runeSliceAsBytes is the []rune (UTF-32 code unit) analogue of
// uint16SliceAsBytes.
func runeSliceAsBytes(s []rune) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*4)
}
