// Package ks ("kitchen sink") implements assorted helpful things that don't
// fit anywhere else.
package ks

import (
    "errors"
    "fmt"
)

// FilterError returns err, unless errors.Is(err, i) returns true for any
// i in ignore, in which case it returns nil.
//
// For example,
//
//     // Create a symlink but ignore an error if the file exists.
//     err := FilterError(os.Symlink(oldname, newname), fs.ErrExist)
func FilterError(err error, ignore ... error) error {
    if err == nil { return nil }
    for _, i := range ignore {
        if errors.Is(err, i) { return nil }
    }
    return err
}

// Never panics, reporting an internal invariant violation. It is called from
// branches that table-driven code has proven unreachable (for example, an
// exhaustive switch over a closed enum) so that a future, wrongly-extended
// enum fails loudly instead of silently falling through.
func Never() {
    panic(fmt.Errorf("ks.Never: unreachable code reached"))
}

// In returns true iff x is equal to any of the given values.
func In[T comparable](x T, values ... T) bool {
    for _, v := range values {
        if x == v { return true }
    }
    return false
}
