package common

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	CARESDecimals = 6 // amounts are stored in micro-CARES (10^-6)
	caresUnit     = 1_000_000
)

// ErrAmountTooLarge is returned for amounts that do not fit a signed 64-bit micro-CARES value
var ErrAmountTooLarge = errors.New("amount too large")

// MicroToCARES converts micro-CARES to a CARES decimal string without float precision loss.
// Trailing fractional zeros are dropped: 1500000000 -> "1500".
func MicroToCARES(micro uint64) string {
	s := formatWithDecimals(micro, CARESDecimals)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// CARESToMicro converts a CARES decimal string to micro-CARES without float precision loss
// Amounts above math.MaxInt64 micro-CARES are rejected since they are stored as INTEGER.
func CARESToMicro(cares string) (uint64, error) {
	micro, err := parseWithDecimals(cares, CARESDecimals)
	if err != nil {
		return 0, err
	}
	if micro > math.MaxInt64 {
		return 0, ErrAmountTooLarge
	}
	return micro, nil
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 6) = "24.981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("24.981836", 6) = 24981836
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")

	if len(parts) == 1 {
		// ParseUint reports overflow that repeated *10 would wrap
		return strconv.ParseUint(parts[0]+strings.Repeat("0", decimals), 10, 64)
	}

	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := parts[1]
	if whole == "" {
		whole = "0"
	}

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	return strconv.ParseUint(whole+frac, 10, 64)
}

var printer = message.NewPrinter(language.English)

// FormatCARES formats a CARES amount for display: "1500.5" -> "1,500.5 CARES"
func FormatCARES(amount string) string {
	micro, err := CARESToMicro(amount)
	if err != nil || micro == 0 {
		return "0 CARES"
	}

	whole := printer.Sprintf("%d", micro/caresUnit)
	frac := strings.TrimRight(fmt.Sprintf("%06d", micro%caresUnit), "0")
	if frac == "" {
		return whole + " CARES"
	}
	return whole + "." + frac + " CARES"
}

// CalculatePercentage returns current as a percentage of goal, capped at 100
func CalculatePercentage(current, goal uint64) float64 {
	if current == 0 || goal == 0 {
		return 0
	}
	pct := float64(current) / float64(goal) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// DonationOptions returns suggested donation amounts (whole CARES) for a funding goal in micro-CARES
func DonationOptions(goalMicro uint64) []uint64 {
	goal := goalMicro / caresUnit
	switch {
	case goalMicro == 0:
		return []uint64{10, 25, 50, 100, 250}
	case goal < 500:
		return []uint64{5, 10, 25, 50, 100}
	case goal < 1000:
		return []uint64{10, 25, 50, 100, 250}
	case goal < 5000:
		return []uint64{25, 50, 100, 250, 500}
	default:
		return []uint64{50, 100, 250, 500, 1000}
	}
}

// FormatDate formats a date for display, e.g. "March 4, 2025"
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}
