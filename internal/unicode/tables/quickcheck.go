package tables

// QCResult is the outcome of the quick-check derivation of UAX #15 §8:
// whether a single code point, considered in isolation, is known to already
// be in a given normalization form (Yes), known not to be (No), or requires
// a full normalization to decide because its interaction with neighbouring
// code points matters (Maybe).
type QCResult int

const (
	QCYes QCResult = iota
	QCNo
	QCMaybe
)

// Form identifies a Unicode Normalization Form.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

// QuickCheck classifies r for form without performing a normalization.
//
// The decomposition forms (NFD, NFKD) only ever need Yes/No: a code point
// that has a decomposition of the relevant kind would be expanded by that
// form, so it is No; everything else is already maximally decomposed, so
// Yes.
//
// The composition forms (NFC, NFKC) additionally need Maybe: a combining
// mark that is capable of completing some composition is not wrong by
// itself, but whether it should actually combine depends on the preceding
// starter, which quick-check alone cannot see.
func QuickCheck(r rune, form Form) QCResult {
	kind, mapped, has := Decomposition(r)

	switch form {
	case NFD:
		if has && kind == DecompCanonical {
			return QCNo
		}
		return QCYes
	case NFKD:
		if has && (kind == DecompCanonical || kind == DecompCompatibility) {
			return QCNo
		}
		return QCYes
	case NFKC:
		if has && kind == DecompCompatibility {
			return QCNo
		}
		fallthrough
	case NFC:
		// A canonical singleton (e.g. U+2126 OHM SIGN -> U+03A9, U+212B
		// ANGSTROM SIGN -> U+00C5) is itself the composition's input, not
		// its output: composing never produces it, so it can't be Yes. The
		// same holds for any other composition exclusion, but this curated
		// table only contains singletons among its canonical mappings.
		if has && kind == DecompCanonical && len(mapped) == 1 {
			return QCNo
		}
		if CCC(r) > 0 && Combines(r) {
			return QCMaybe
		}
		return QCYes
	}
	return QCYes
}
