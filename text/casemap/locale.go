package casemap

import "golang.org/x/text/language"

// Locale selects the handful of language-specific case-mapping tailorings
// spec §4.4 and §9 describe. Only Turkish/Azeri and Lithuanian tailor
// anything; every other language uses Root. This is passed explicitly by
// the caller rather than read from a thread-local, per SPEC_FULL.md §1.2's
// REDESIGN: Go has no portable per-thread locale category, and an explicit
// parameter keeps every transform a pure function of its arguments.
type Locale int

const (
	// Root applies the unconditional SpecialCasing rules plus the
	// locale-independent conditional rules (Final_Sigma).
	Root Locale = iota
	// Turkish applies the dotted/dotless I tailoring (also used for Azeri).
	Turkish
	// Lithuanian applies the soft-dotted-letter dot-above tailoring.
	Lithuanian
)

// LocaleFromTag classifies a BCP 47 language tag into the Locale it maps
// to, continuing the (stubbed, unfinished) intent of the teacher's
// text/nsys.NewFromTag. Unrecognised or unmatched tags return Root.
func LocaleFromTag(tag language.Tag) Locale {
	base, conf := tag.Base()
	if conf == language.No {
		return Root
	}
	switch base.String() {
	case "tr", "az":
		return Turkish
	case "lt":
		return Lithuanian
	default:
		return Root
	}
}
