// Package utf8x is a bytewise, locale-aware Unicode text library: UTF-8,
// UTF-16, UTF-32, and platform "wide" char codecs, code-point-aware
// seeking, full Unicode case mapping (upper/lower/title/fold, with
// Turkish/Azeri and Lithuanian tailoring), Normalization Forms (NFC, NFD,
// NFKC, NFKD), and general-category classification.
//
// This package is a thin facade over the subsystem packages that do the
// actual work — text/utf8codec, text/seek, text/casemap, text/normalize,
// and text/category — exposing their 15 operations as one import for
// callers who don't need the subpackages individually. The tables backing
// general-category, combining-class, decomposition and case data live in
// internal/unicode/tables as a hand-curated subset of Unicode 13.0.0 (the
// skeleton in internal/unicode/gen does not write them).
package utf8x

// Version is this module's release version. There is no C ABI or
// feature-guard surface to version here (spec's UTF8_VERSION_GUARD
// concern doesn't apply to a Go module), so this is documentation, not a
// runtime compatibility check.
const Version = "1.0.0"

// UnicodeVersion is the version of the Unicode Character Database the
// curated tables in internal/unicode/tables were drawn from.
const UnicodeVersion = "13.0.0"
