// Package money parses display-formatted amounts and counts as found on
// storefront pages and search snippets.
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoPrice is returned when a string contains no recognizable amount.
var ErrNoPrice = errors.New("no price found")

var (
	amountRun = regexp.MustCompile(`\d[\d.,'\s\x{00a0}\x{202f}]*\d|\d`)
	digitRun  = regexp.MustCompile(`\d[\d,.]*`)
	floatRun  = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// ParsePrice reads the first amount out of a display string, handling
// currency symbols and both grouping conventions: "₹1,23,456.00",
// "$1,299.99", "1.234,56 €", "12,50".
func ParsePrice(s string) (decimal.Decimal, error) {
	run := amountRun.FindString(s)
	if run == "" {
		return decimal.Zero, fmt.Errorf("%w in %q", ErrNoPrice, s)
	}

	run = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\'', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, run)
	run = strings.TrimRight(run, ".,")

	lastComma := strings.LastIndex(run, ",")
	lastDot := strings.LastIndex(run, ".")

	var normalized string
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			normalized = strings.ReplaceAll(run, ".", "")
			normalized = strings.Replace(normalized, ",", ".", 1)
		} else {
			normalized = strings.ReplaceAll(run, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(run, ",") == 1 && len(run)-lastComma-1 <= 2 {
			normalized = strings.Replace(run, ",", ".", 1)
		} else {
			normalized = strings.ReplaceAll(run, ",", "")
		}
	case lastDot >= 0:
		whole := run[:lastDot]
		if strings.Count(run, ".") > 1 || (len(run)-lastDot-1 == 3 && whole != "0") {
			normalized = strings.ReplaceAll(run, ".", "")
		} else {
			normalized = run
		}
	default:
		normalized = run
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing price %q: %w", s, err)
	}
	return d, nil
}

// ParseCount reads the first integer out of a string such as
// "12,345 ratings".
func ParseCount(s string) (int, error) {
	run := digitRun.FindString(s)
	if run == "" {
		return 0, fmt.Errorf("no count in %q", s)
	}
	if i := strings.IndexAny(run, "."); i >= 0 && strings.Count(run, ".") == 1 && len(run)-i-1 != 3 {
		run = run[:i]
	}
	run = strings.NewReplacer(",", "", ".", "").Replace(run)
	return strconv.Atoi(run)
}

// ParseFloat reads the first decimal number out of a string such as
// "4.3 out of 5 stars". A comma decimal separator is accepted.
func ParseFloat(s string) (float64, error) {
	run := strings.Replace(floatRun.FindString(s), ",", ".", 1)
	if run == "" {
		return 0, fmt.Errorf("no number in %q", s)
	}
	return strconv.ParseFloat(run, 64)
}
