// Package money parses form-entered rent amounts into cents.
package money

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidAmount reports input that is not a non-negative amount with at
// most two decimal places.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseCents parses "1250", "1250.5", "$1,250.50" and similar into cents.
func ParseCents(raw string) (int64, error) {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "$")
	value = strings.ReplaceAll(value, ",", "")
	if value == "" {
		return 0, ErrInvalidAmount
	}
	whole, frac, hasFrac := strings.Cut(value, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (frac == "" || len(frac) > 2) {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}
	dollars, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if dollars > (1<<63-1-cents)/100 {
		return 0, ErrInvalidAmount
	}
	return int64(dollars*100 + cents), nil
}
