package strategy

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError reports a malformed free-text entry.
type ParseError struct {
	Item   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Item, e.Reason)
}

func splitItems(s string) []string {
	s = strings.ReplaceAll(s, ";", ",")
	var items []string
	for _, it := range strings.Split(s, ",") {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	return items
}

func parseMonth(item, raw string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Item: item, Reason: "month is not an integer"}
	}
	if m < 1 {
		return 0, &ParseError{Item: item, Reason: "month must be >= 1"}
	}
	return m, nil
}

// ParseOverrides reads "month:amount" pairs separated by ',' or ';',
// e.g. "12:1000, 24:2000; 36:500". A repeated month keeps the last amount.
func ParseOverrides(s string) (map[int]float64, error) {
	out := map[int]float64{}
	for _, item := range splitItems(s) {
		parts := strings.Split(item, ":")
		if len(parts) != 2 {
			return nil, &ParseError{Item: item, Reason: "expected month:amount"}
		}
		month, err := parseMonth(item, parts[0])
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return nil, &ParseError{Item: item, Reason: "amount is not a number"}
		}
		out[month] = amount
	}
	return out, nil
}

// ParseOverridesOrEmpty is ParseOverrides with the empty-mapping fallback.
// The error is still returned so the caller can report it.
func ParseOverridesOrEmpty(s string) (map[int]float64, error) {
	m, err := ParseOverrides(s)
	if err != nil {
		return map[int]float64{}, err
	}
	return m, nil
}

// ParseMonths reads a month list such as "12, 24, 36" into a set.
func ParseMonths(s string) (map[int]bool, error) {
	out := map[int]bool{}
	for _, item := range splitItems(s) {
		m, err := parseMonth(item, item)
		if err != nil {
			return nil, err
		}
		out[m] = true
	}
	return out, nil
}
