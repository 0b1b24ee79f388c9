package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidAddress is returned when a string is not 0x followed by 40 hex characters
var ErrInvalidAddress = errors.New("invalid wallet address")

const (
	displayPrefixLen = 6
	displaySuffixLen = 4
)

// IsValid reports whether s is an Ethereum-style account address ("0x" + 40 hex characters).
// Mixed case is accepted without checksum verification.
func IsValid(s string) bool {
	// common.IsHexAddress also accepts addresses without the prefix
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// Validate returns ErrInvalidAddress wrapped with the offending value if s is not valid
func Validate(s string) error {
	if !IsValid(s) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return nil
}

// Normalize returns the lower-cased form used for all comparisons.
// Surrounding whitespace is kept, so a padded address never matches.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// Equal compares two addresses case-insensitively. Empty strings never match.
func Equal(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return Normalize(a) == Normalize(b)
}

// Checksum returns the EIP-55 mixed-case form of a valid address
func Checksum(s string) (string, error) {
	if err := Validate(s); err != nil {
		return "", err
	}
	return common.HexToAddress(s).Hex(), nil
}

// FormatForDisplay shortens an address to its first 6 and last 4 characters.
// Example: FormatForDisplay("0x1234567890123456789012345678901234567890") = "0x1234...7890"
func FormatForDisplay(s string) string {
	if s == "" {
		return ""
	}
	if len(s) < displayPrefixLen+displaySuffixLen {
		return s
	}
	return s[:displayPrefixLen] + "..." + s[len(s)-displaySuffixLen:]
}
