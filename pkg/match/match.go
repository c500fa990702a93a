// Package match decides whether two listing titles denote the same
// physical product and variant.
package match

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultOverlapThreshold is the minimum share of the original's words that
// must appear in the candidate. Empirical and tunable.
const DefaultOverlapThreshold = 0.35

// RE2 classes are ASCII only, so Unicode letters and spaces are named explicitly.
var (
	nonWord    = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s\p{Z}]`)
	whitespace = regexp.MustCompile(`[\s\p{Z}]+`)
	numbers    = regexp.MustCompile(`\d{2,}`)
)

// Matcher compares titles with a configurable word-overlap threshold.
type Matcher struct {
	threshold float64
}

// New returns a Matcher. A non-positive threshold selects the default.
func New(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultOverlapThreshold
	}
	return &Matcher{threshold: threshold}
}

// IsSameProduct reports whether candidate names the same product as
// original using the default threshold.
func IsSameProduct(original, candidate string) bool {
	return New(DefaultOverlapThreshold).Same(original, candidate)
}

// Same reports whether candidate names the same product as original.
// Every multi-digit number in the original must appear in the candidate;
// the remaining words must overlap by at least the threshold.
func (m *Matcher) Same(original, candidate string) bool {
	a := Normalize(original)
	b := Normalize(candidate)
	if a == "" || b == "" {
		return false
	}

	candNums := make(map[string]struct{})
	for _, n := range numbers.FindAllString(b, -1) {
		candNums[n] = struct{}{}
	}
	for _, n := range numbers.FindAllString(a, -1) {
		if _, ok := candNums[n]; !ok {
			return false
		}
	}

	origWords := significantWords(a)
	if len(origWords) == 0 {
		return false
	}
	candWords := make(map[string]struct{})
	for _, w := range significantWords(b) {
		candWords[w] = struct{}{}
	}

	matches := 0
	for _, w := range origWords {
		if _, ok := candWords[w]; ok {
			matches++
		}
	}

	return float64(matches)/float64(len(origWords)) >= m.threshold
}

// Normalize lowercases s, strips punctuation and collapses whitespace.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func significantWords(s string) []string {
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}
