// Package extract turns raw, inconsistently formatted model output into
// candidate word groups. Model output is adversarial: markdown bullets,
// labeled lines, bracketed lists, numbering, and stray commentary all occur in
// the wild, so extraction degrades gracefully instead of failing.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/puzzlebench/connbench/internal/models"
)

// Options configure an Extractor. Use DefaultOptions or OptionsFromMap; the
// zero value rejects everything.
type Options struct {
	// EOSMarkers are literal sentinel tokens deleted from every word. Some
	// models emit their end-of-sequence marker verbatim.
	EOSMarkers []string `mapstructure:"eos_markers"`

	// MaxGroups caps how many strategy matches are kept per text.
	MaxGroups int `mapstructure:"max_groups"`

	// MaxWordsPerGroup caps how many cleaned words each group keeps.
	MaxWordsPerGroup int `mapstructure:"max_words_per_group"`
}

// DefaultOptions returns the options matching standard four-by-four puzzles.
func DefaultOptions() Options {
	return Options{
		EOSMarkers:       []string{"<eos>"},
		MaxGroups:        models.TotalGroups,
		MaxWordsPerGroup: models.GroupSize,
	}
}

// OptionsFromMap decodes extractor options from a generic config map, keeping
// defaults for absent keys.
func OptionsFromMap(params map[string]any) (Options, error) {
	opts := DefaultOptions()
	if len(params) == 0 {
		return opts, nil
	}
	if err := mapstructure.Decode(params, &opts); err != nil {
		return Options{}, fmt.Errorf("decoding extract options: %w", err)
	}
	if opts.MaxGroups <= 0 || opts.MaxWordsPerGroup <= 0 {
		return Options{}, fmt.Errorf("extract options: max_groups and max_words_per_group must be positive")
	}
	return opts, nil
}

// thinkSpan matches reasoning-trace spans. These are scratch pads, not
// answers, and must never be scanned for group content.
var thinkSpan = regexp.MustCompile(`(?s)<think>.*?</think>`)

// A strategy captures the comma-separated payload following a group label in
// one formatting convention.
type strategy struct {
	name string
	re   *regexp.Regexp

	// minMatches is the match count needed for this strategy to win. 0 marks
	// the unconditional fallback.
	minMatches int
}

// strategies are ordered by observed prevalence across model output styles,
// not by textual position. The first strategy that yields enough matches wins.
var strategies = []strategy{
	{name: "bold-label", re: regexp.MustCompile(`\*\*[^:*]+\*\*:\s*([^\n]+)`), minMatches: models.TotalGroups},
	{name: "bullet-label", re: regexp.MustCompile(`(?m)^-\s*[^:]+:\s*([^\n]+)`), minMatches: models.TotalGroups},
	{name: "plain-label", re: regexp.MustCompile(`(?m)^[A-Z][^:]+:\s*([^\n]+)`), minMatches: models.TotalGroups},
	{name: "bracket-list", re: regexp.MustCompile(`\[(.*?)\]`), minMatches: 0},
}

// Extractor parses raw text blobs into group sets. It is stateless and safe
// to reuse across puzzles.
type Extractor struct {
	opts Options
}

// New returns an Extractor with the given options.
func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// NewDefault returns an Extractor with DefaultOptions.
func NewDefault() *Extractor {
	return New(DefaultOptions())
}

// Extract parses raw model output into up to MaxGroups candidate groups.
// Empty input yields an empty set, never an error.
func (e *Extractor) Extract(text string) models.GroupSet {
	if text == "" {
		return nil
	}
	text = thinkSpan.ReplaceAllString(text, "")

	payloads := selectPayloads(text)
	if len(payloads) > e.opts.MaxGroups {
		payloads = payloads[:e.opts.MaxGroups]
	}

	var groups models.GroupSet
	for _, payload := range payloads {
		if group := e.cleanGroup(payload); len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// selectPayloads evaluates every strategy independently against the full text
// and picks by priority: the first strategy whose match count reaches its
// threshold wins, else the fallback strategy wins regardless of count. When
// the fallback also matched nothing, a partial labeled answer (fewer labeled
// lines than a full puzzle) is still better than discarding everything, so
// the highest-priority strategy with any matches is used.
func selectPayloads(text string) []string {
	collected := make([][]string, 0, len(strategies))
	for _, s := range strategies {
		matches := s.re.FindAllStringSubmatch(text, -1)
		payloads := make([]string, 0, len(matches))
		for _, m := range matches {
			payloads = append(payloads, m[1])
		}
		if s.minMatches > 0 && len(payloads) >= s.minMatches {
			return payloads
		}
		collected = append(collected, payloads)
	}

	if fallback := collected[len(collected)-1]; len(fallback) > 0 {
		return fallback
	}
	for _, payloads := range collected {
		if len(payloads) > 0 {
			return payloads
		}
	}
	return nil
}

// cleanGroup splits a payload on commas and cleans each piece. Pieces that
// clean to empty are dropped, so groups may end up shorter than
// MaxWordsPerGroup; downstream length checks handle that.
func (e *Extractor) cleanGroup(payload string) models.Group {
	var group models.Group
	for _, piece := range strings.Split(payload, ",") {
		word := e.cleanWord(piece)
		if word == "" {
			continue
		}
		group = append(group, word)
		if len(group) == e.opts.MaxWordsPerGroup {
			break
		}
	}
	return group
}
