// Package checked re-exports [github.com/tawesoft/utf8x/operator/checked/integer]
// under shorter, type-specific names (Int, Int8, Uint8, ...) for convenience
// at call sites that don't need to name the integer type explicitly.
package checked

import (
    "github.com/tawesoft/utf8x/operator/checked/integer"
    "golang.org/x/exp/constraints"
)

// Limits provides a convenient way to fill the min and max arguments to the
// checked operator functions. The inequality Min <= Max must be satisfied.
type Limits[I constraints.Integer] struct {
    Min I
    Max I
}

// Add calls [Add] with min and max filled in from l.
func (l Limits[I]) Add(a, b I) (I, bool) { return Add(l.Min, l.Max, a, b) }

// Sub calls [Sub] with min and max filled in from l.
func (l Limits[I]) Sub(a, b I) (I, bool) { return Sub(l.Min, l.Max, a, b) }

// Mul calls [Mul] with min and max filled in from l.
func (l Limits[I]) Mul(a, b I) (I, bool) { return Mul(l.Min, l.Max, a, b) }

func limitsOf[I constraints.Integer](l integer.Limits[I]) Limits[I] {
    return Limits[I]{Min: l.Min, Max: l.Max}
}

var (
    Int    = limitsOf(integer.Int)
    Int8   = limitsOf(integer.Int8)
    Int16  = limitsOf(integer.Int16)
    Int32  = limitsOf(integer.Int32)
    Int64  = limitsOf(integer.Int64)
    Uint   = limitsOf(integer.Uint)
    Uint8  = limitsOf(integer.Uint8)
    Uint16 = limitsOf(integer.Uint16)
    Uint32 = limitsOf(integer.Uint32)
    Uint64 = limitsOf(integer.Uint64)
)

// Add is [integer.Add].
func Add[N constraints.Integer](min, max, a, b N) (N, bool) {
    return integer.Add(min, max, a, b)
}

// Sub is [integer.Sub].
func Sub[N constraints.Integer](min, max, a, b N) (N, bool) {
    return integer.Sub(min, max, a, b)
}

// Mul is [integer.Mul].
func Mul[N constraints.Integer](min, max, a, b N) (N, bool) {
    return integer.Mul(min, max, a, b)
}
