package tables

type composeKey struct{ a, b rune }

// composePairs is built from decompTable's two-codepoint canonical
// mappings at init time: canonical composition is the inverse of canonical
// decomposition, except for composition exclusions (singletons, like the
// OHM SIGN and ANGSTROM SIGN entries in decompTable, which by construction
// never appear here because they decompose to a single code point, not a
// pair) and the one compatibility mapping (İ), which decomposition marks
// as DecompCompatibility and which this loop therefore skips.
var composePairs = func() map[composeKey]rune {
	m := make(map[composeKey]rune, len(decompTable))
	for _, rec := range decompTable {
		if rec.kind != DecompCanonical || len(rec.mapped) != 2 {
			continue
		}
		m[composeKey{rec.mapped[0], rec.mapped[1]}] = rec.cp
	}
	return m
}()

// Compose returns the primary composite of a starter followed by a
// combining mark, if one exists. Hangul composition (L+V and LV+T) is
// computed algorithmically; everything else is a table lookup of the
// canonical decomposition pairs' inverse.
func Compose(a, b rune) (rune, bool) {
	if r, ok := hangulCompose(a, b); ok {
		return r, ok
	}
	r, ok := composePairs[composeKey{a, b}]
	return r, ok
}

// Combines reports whether b is registered anywhere as the second element
// of a composable pair — i.e. whether it is a combining mark that can
// complete some composition. This drives the NFC/NFKC quick-check Maybe
// classification.
func Combines(b rune) bool {
	if b >= hangulVBase && b < hangulVBase+hangulVCount {
		return true
	}
	if b > hangulTBase && b < hangulTBase+hangulTCount {
		return true
	}
	for k := range composePairs {
		if k.b == b {
			return true
		}
	}
	return false
}
