package normalize

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/tawesoft/utf8x/internal/unicode/tables"
)

// Transformer adapts Normalize to golang.org/x/text/transform.Transformer,
// mirroring the teacher's text/dm.Decomposer.Transformer() /
// text/fold.Accents pattern so a normalization form can be composed with
// transform.Chain alongside a casemap.Transformer or an x/text transformer.
type Transformer struct {
	Form Form
}

// Four ready-made transformers, one per form, named after the forms
// themselves as the teacher names its own (fold.Accents, fold.Dashes, ...).
var (
	NFCTransform  = Transformer{Form: NFC}
	NFDTransform  = Transformer{Form: NFD}
	NFKCTransform = Transformer{Form: NFKC}
	NFKDTransform = Transformer{Form: NFKD}
)

func (t Transformer) Reset() {}

func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		// Canonical reordering and composition both look past the current
		// code point (a run of combining marks, a blocking starter), so a
		// mid-sequence chunk boundary can't be normalized correctly yet.
		return 0, 0, transform.ErrShortSrc
	}
	n, normErr := Normalize(dst, src, t.Form)
	if normErr != nil {
		return 0, 0, normErr
	}
	return n, len(src), nil
}

var _ transform.Transformer = Transformer{}

// StripMarks decomposes its input to NFD and removes every combining mark,
// the same two-stage "decompose, then runes.Remove the marks" idiom the
// teacher's fold.Accents uses to strip accents from Latin/Greek/Cyrillic
// text.
var StripMarks = transform.Chain(
	NFDTransform,
	runes.Remove(runes.Predicate(func(r rune) bool {
		return tables.Of(r)&tables.Mark != 0
	})),
)
