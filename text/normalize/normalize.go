// Package normalize implements the four Unicode Normalization Forms (NFC,
// NFD, NFKC, NFKD) over UTF-8 byte buffers: recursive decomposition to a
// fixed point, canonical reordering by combining class, and canonical
// composition with the blocking rule, all built on top of
// [github.com/tawesoft/utf8x/internal/unicode/tables]'s curated data
// rather than golang.org/x/text/unicode/norm's own pipeline.
package normalize

import (
	"errors"
	"sort"

	"github.com/tawesoft/utf8x/internal/unicode/tables"
	"github.com/tawesoft/utf8x/operator"
	"github.com/tawesoft/utf8x/text/utf8codec"
)

// Form identifies a Unicode Normalization Form.
type Form = tables.Form

const (
	NFC  = tables.NFC
	NFD  = tables.NFD
	NFKC = tables.NFKC
	NFKD = tables.NFKD
)

// Result is a three-valued quick-check answer: Yes, No, or Maybe. Maybe
// occurs in the per-code-point quick-check flags; [IsNormalized] resolves
// those flags itself and returns only Yes or No.
type Result = tables.QCResult

const (
	Yes   = tables.QCYes
	No    = tables.QCNo
	Maybe = tables.QCMaybe
)

// maxNonStarters bounds the length of a single run of consecutive
// nonzero-CCC code points that [Reorder] will sort, per UAX #15's Stream-
// Safe Text Format (a run of more than 30 non-starters between starters
// cannot occur in well-formed text and is rejected rather than sorted).
// This guards the same pathological-input case the teacher's
// ccc.Reorder/ErrMaxNonStarters does, with the cap UAX #15 itself defines.
const maxNonStarters = 30

// ErrTooManyCombiningMarks is returned when a single run of combining
// marks between starters exceeds [maxNonStarters].
var ErrTooManyCombiningMarks = errors.New("utf8x/normalize: too many combining marks between starters")

func compatibility(form Form) bool { return form == NFKC || form == NFKD }
func composes(form Form) bool      { return form == NFC || form == NFKC }

// Normalize writes the normalization of src under form to dst, following
// the same measure/partial-write/overlap/error conventions as
// [github.com/tawesoft/utf8x/text/utf8codec.UTF16ToUTF8]. Malformed UTF-8
// in src is decoded as U+FFFD and normalized like any other code point;
// Normalize does not report InvalidData for it.
func Normalize(dst, src []byte, form Form) (n int, err error) {
	if dst != nil && len(src) > 0 && utf8codec.Overlaps(dst, src) {
		return 0, utf8codec.OverlappingParameters
	}

	runes := decodeAll(src)
	result, err := normalizeRunes(runes, form)
	if err != nil {
		return 0, err
	}

	written := 0
	full := false
	for _, r := range result {
		need := utf8codec.RuneLen(r)
		if dst == nil || full || written+need > len(dst) {
			full = dst != nil
			n += need
		} else {
			utf8codec.EncodeRune(dst[written:written+need], r)
			written += need
			n += need
		}
	}

	if dst != nil && written < n {
		return n, utf8codec.With(utf8codec.NotEnoughSpace, "need %d bytes, have %d", n, len(dst))
	}
	return n, nil
}

// IsNormalized reports whether src is already in form and, when it is not,
// the byte offset of the first code point responsible for that answer
// (spec §4.5: "report NO/MAYBE and the byte offset of the first offending
// code point"). offset is -1 when result is Yes.
//
// This is the quick-check fast path: a single left-to-right scan using
// per-code-point quick-check flags, the running combining class (to catch
// out-of-canonical-order marks), and — for a code point whose flag is only
// Maybe — the actual composition pair of the nearest preceding unblocked
// starter, which is enough to resolve the common case (e.g. "e" followed
// by a combining acute accent, which *would* compose under [Normalize], so
// the answer is No at the "e") without performing any decomposition or
// allocating a working buffer.
func IsNormalized(src []byte, form Form) (result Result, offset int) {
	var starter rune
	starterOffset := -1
	lastMarkCCC := uint8(0)
	lastCCC := uint8(0)
	pos := 0

	for len(src) > 0 {
		r, size, _ := utf8codec.DecodeRune(src)
		ccc := tables.CCC(r)

		if ccc > 0 && lastCCC > ccc {
			return No, pos // out of canonical order
		}

		switch tables.QuickCheck(r, form) {
		case tables.QCNo:
			return No, pos
		case tables.QCMaybe:
			blocked := ccc != 0 && lastMarkCCC >= ccc
			if starterOffset >= 0 && !blocked {
				if _, ok := tables.Compose(starter, r); ok {
					return No, starterOffset
				}
			}
		}

		if ccc == 0 {
			starter = r
			starterOffset = pos
			lastMarkCCC = 0
		} else {
			lastMarkCCC = ccc
		}
		lastCCC = ccc

		pos += size
		src = src[size:]
	}
	return Yes, -1
}

// Decompose returns src's code points recursively decomposed (canonical
// only, or canonical+compatibility) and canonically reordered, without the
// composition stage. This is NFD when compat is false, NFKD when true.
func Decompose(src []byte, compat bool) ([]rune, error) {
	runes := decodeAll(src)
	decomposed := decomposeAll(runes, compat)
	if err := reorder(decomposed); err != nil {
		return nil, err
	}
	return decomposed, nil
}

// Reorder canonically reorders a decomposed rune sequence in place by
// canonical combining class (a stable sort within each maximal run of
// nonzero-CCC code points, per UAX #15's canonical ordering algorithm) and
// returns it. It returns [ErrTooManyCombiningMarks] if any single run
// exceeds [maxNonStarters] rather than sorting it.
func Reorder(runes []rune) ([]rune, error) {
	if err := reorder(runes); err != nil {
		return nil, err
	}
	return runes, nil
}

// Compose applies the canonical composition algorithm (with blocking) to
// an already-decomposed, canonically-ordered rune sequence and returns the
// composed result. This is NFC given NFD input, or NFKC given NFKD input.
func Compose(runes []rune) []rune {
	return compose(runes)
}

func decodeAll(src []byte) []rune {
	runes := make([]rune, 0, len(src))
	for len(src) > 0 {
		r, size, _ := utf8codec.DecodeRune(src)
		runes = append(runes, r)
		src = src[size:]
	}
	return runes
}

func normalizeRunes(runes []rune, form Form) ([]rune, error) {
	decomposed := decomposeAll(runes, compatibility(form))
	if err := reorder(decomposed); err != nil {
		return nil, err
	}
	if !composes(form) {
		return decomposed, nil
	}
	return compose(decomposed), nil
}

// decomposeAll expands every code point to a fixed point: a code point
// whose decomposition itself decomposes (the ṡ/ṩ-style chains of spec
// scenario 9) is expanded again until no further decomposition applies.
func decomposeAll(runes []rune, compat bool) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		out = append(out, decomposeRune(r, compat)...)
	}
	return out
}

func decomposeRune(r rune, compat bool) []rune {
	kind, mapped, ok := tables.Decomposition(r)
	if !ok {
		return []rune{r}
	}
	if kind == tables.DecompCompatibility && !compat {
		return []rune{r}
	}
	out := make([]rune, 0, len(mapped))
	for _, m := range mapped {
		out = append(out, decomposeRune(m, compat)...)
	}
	return out
}

// reorder stably sorts each maximal run of consecutive nonzero-CCC code
// points by ascending combining class, leaving CCC==0 starters fixed as
// run boundaries — the canonical ordering algorithm of UAX #15 §3.2. A run
// longer than [maxNonStarters] aborts with [ErrTooManyCombiningMarks]
// before sorting anything, so a pathological input can't be used to stack
// unbounded work on a single reorder call.
func reorder(runes []rune) error {
	i := 0
	for i < len(runes) {
		if tables.CCC(runes[i]) == 0 {
			i++
			continue
		}
		j := i
		for j < len(runes) && tables.CCC(runes[j]) != 0 {
			j++
		}
		if j-i > maxNonStarters {
			return ErrTooManyCombiningMarks
		}
		run := runes[i:j]
		sort.SliceStable(run, func(a, b int) bool {
			return operator.LT(tables.CCC(run[a]), tables.CCC(run[b]))
		})
		i = j
	}
	return nil
}

// compose implements the standard one-pass canonical composition
// algorithm with blocking (UAX #15 §3.11): each combining mark, scanned
// left to right, is folded into the most recent starter unless some
// earlier mark already at or above its own combining class stands between
// them (that earlier mark "blocks" it), in which case it is emitted
// unchanged and becomes a participant in blocking decisions itself.
func compose(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	starterPos := -1
	lastCCC := uint8(0)

	for _, r := range runes {
		ccc := tables.CCC(r)
		if starterPos >= 0 {
			blocked := ccc != 0 && lastCCC >= ccc
			if !blocked {
				if composed, ok := tables.Compose(out[starterPos], r); ok {
					out[starterPos] = composed
					continue
				}
			}
		}
		out = append(out, r)
		if ccc == 0 {
			starterPos = len(out) - 1
			lastCCC = 0
		} else {
			lastCCC = ccc
		}
	}
	return out
}
