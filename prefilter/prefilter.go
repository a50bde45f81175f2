// Package prefilter runs a raw speech-to-text utterance through the
// cleanup steps this system relies on before any of it reaches the term
// model: Unicode normalization, homophone canonicalization, and
// filler/article dropping. None of this touches the core matching
// contracts — prefilter runs strictly before termmodel.Stem, and its
// output is plain surface text handed to the existing stem/hash
// pipeline.
//
// Unicode normalization is grounded on this codebase's original
// azcase NFC folding, generalized from a hand-rolled table of six
// Azerbaijani letter pairs to full Unicode NFC via
// golang.org/x/text/unicode/norm, exactly as that original package's own
// doc comment pointed at ("for full NFC, preprocess with
// golang.org/x/text/unicode/norm externally"). Homophone canonicalization
// reuses translit's replacement-table mechanism with a new table for a
// new domain.
package prefilter

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NFC normalizes s to Unicode Normalization Form C. Speech-to-text
// vendors are inconsistent about composed vs. decomposed diacritics;
// running every utterance through NFC first keeps byte offsets and
// stemming behavior identical across equivalent encodings of the same
// glyph.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Confusables canonicalizes common STT homophone substitutions toward
// the spelling the number parser and lexicon expect, e.g. "for" is far
// more often a mis-transcription of "four" than a genuine preposition in
// an ordering utterance. Lookup is case-insensitive; values are already
// in the canonical spelling.
var Confusables = map[string]string{
	"for": "four",
	"to":  "two",
	"too": "two",
	"ate": "eight",
	"won": "one",
}

// ApplyConfusables rewrites term to its canonical spelling if term (after
// lowercasing) is a known homophone substitution; otherwise it returns
// term unchanged.
func ApplyConfusables(term string) string {
	if canon, ok := Confusables[strings.ToLower(term)]; ok {
		return canon
	}
	return term
}

// fillers are articles and disfluencies that carry no matching signal in
// this domain and are dropped before the term reaches the tokenizer.
// Lookup is case-insensitive.
var fillers = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"please": {}, "like": {},
	"um": {}, "uh": {}, "uhh": {}, "umm": {},
}

// IsFiller reports whether term (case-insensitively) is a dropped
// article or disfluency.
func IsFiller(term string) bool {
	_, ok := fillers[strings.ToLower(term)]
	return ok
}

// DropFillers returns terms with every filler word removed, preserving
// order.
func DropFillers(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if !IsFiller(t) {
			out = append(out, t)
		}
	}
	return out
}

// Normalize runs the full prefilter pipeline over a raw utterance: NFC
// normalization, word-span extraction, homophone canonicalization, and
// filler dropping. It returns the cleaned term sequence ready for
// stemming, plus the full byte-offset span breakdown of the
// NFC-normalized text (spaces, punctuation and symbols included) for
// diagnostics.
func Normalize(raw string) (terms []string, spans []Span) {
	normalized := NFC(raw)
	spans = Scan(normalized)

	cleaned := make([]string, 0, len(spans))
	for _, sp := range spans {
		switch sp.Kind {
		case WordSpan:
			cleaned = append(cleaned, ApplyConfusables(sp.Text))
		case NumberSpan:
			cleaned = append(cleaned, sp.Text)
		}
	}

	return DropFillers(cleaned), spans
}
