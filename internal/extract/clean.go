package extract

import (
	"regexp"
	"strings"
)

// ordinalPrefix matches numbering artifacts like "1. " or "12. ".
var ordinalPrefix = regexp.MustCompile(`^[0-9]+\.\s*`)

// cleanWord normalizes one comma-separated word candidate, returning "" when
// the candidate should be discarded. The steps run in a fixed order; each
// operates on the output of the previous one.
func (e *Extractor) cleanWord(word string) string {
	// Surrounding whitespace and quote characters.
	word = strings.Trim(strings.TrimSpace(word), `'"`)

	// Numbering prefixes ("2. BANANA").
	word = ordinalPrefix.ReplaceAllString(word, "")

	// Sentinel tokens some models emit verbatim.
	for _, marker := range e.opts.EOSMarkers {
		word = strings.ReplaceAll(word, marker, "")
	}

	// Parenthetical asides, inline comments, and trailing explanations.
	word = strings.TrimSpace(cutBefore(word, "("))
	word = strings.TrimSpace(cutBefore(word, "//"))
	word = strings.TrimSpace(cutBefore(word, " - "))

	// A remaining colon usually separates a stray label from the real
	// comma-separated payload; the segment richer in commas is the payload.
	if strings.Contains(word, ":") {
		word = commaRichestSegment(strings.Split(word, ":"))
	}

	// A remaining period covers "1.word" leftovers the ordinal prefix missed
	// and label-prefixed words: keep what follows the first period.
	if _, after, found := strings.Cut(word, "."); found {
		word = strings.TrimSpace(after)
	}

	return strings.TrimSpace(word)
}

// cutBefore returns s truncated at the first occurrence of sep.
func cutBefore(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}

// commaRichestSegment returns the segment with the most commas. Ties keep the
// earliest segment.
func commaRichestSegment(segments []string) string {
	best := segments[0]
	bestCount := strings.Count(best, ",")
	for _, seg := range segments[1:] {
		if c := strings.Count(seg, ","); c > bestCount {
			best, bestCount = seg, c
		}
	}
	return best
}
