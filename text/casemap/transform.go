package casemap

import (
	"golang.org/x/text/transform"
)

// Transformer adapts Map to golang.org/x/text/transform.Transformer, so
// case mapping can be composed with the rest of the x/text pipeline (a
// normalize.Transformer, a reader wrapped in transform.NewReader, etc.) —
// the same pattern the teacher uses to expose its text helpers as
// transform.Transformers rather than one-shot functions only.
type Transformer struct {
	Op     Operation
	Locale Locale
}

// NewTransformer returns a Transformer for op under locale.
func NewTransformer(op Operation, locale Locale) Transformer {
	return Transformer{Op: op, Locale: locale}
}

func (t Transformer) Reset() {}

func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		// Wait for the whole chunk: context predicates such as Final_Sigma
		// and More_Above look ahead past the current code point, and a
		// chunk boundary mid-sequence would give a wrong answer.
		return 0, 0, transform.ErrShortSrc
	}

	n, mapErr := Map(dst, src, t.Op, t.Locale)
	if mapErr != nil {
		return 0, 0, mapErr
	}
	return n, len(src), nil
}

var _ transform.Transformer = Transformer{}
