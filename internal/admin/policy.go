package admin

import (
	"errors"
	"fmt"
	"slices"

	"github.com/AlexZinkM/share-a-care/internal/address"
)

var (
	ErrDuplicatePublisher  = errors.New("publisher already exists")
	ErrPublisherNotFound   = errors.New("publisher not found")
	ErrCannotRemovePrimary = errors.New("primary admin cannot be removed")
	ErrNotAuthorized       = errors.New("admin role required")
)

// IsAdmin reports whether addr matches a member of allowList, ignoring case.
// An empty address is never an admin.
func IsAdmin(addr string, allowList []string) bool {
	if addr == "" {
		return false
	}
	return slices.ContainsFunc(allowList, func(member string) bool {
		return address.Equal(addr, member)
	})
}

// AddPublisher returns a copy of allowList with candidate appended.
// It does not persist anything; the store must enforce uniqueness itself.
func AddPublisher(allowList []string, candidate string) ([]string, error) {
	if err := address.Validate(candidate); err != nil {
		return nil, err
	}
	if IsAdmin(candidate, allowList) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePublisher, candidate)
	}
	out := make([]string, 0, len(allowList)+1)
	out = append(out, allowList...)
	return append(out, candidate), nil
}

// RemovePublisher returns a copy of allowList without any case variant of candidate.
// The primary address is checked first and can never be removed.
func RemovePublisher(allowList []string, primary, candidate string) ([]string, error) {
	if address.Equal(candidate, primary) {
		return nil, ErrCannotRemovePrimary
	}
	if !IsAdmin(candidate, allowList) {
		return nil, fmt.Errorf("%w: %s", ErrPublisherNotFound, candidate)
	}
	out := make([]string, 0, len(allowList))
	for _, member := range allowList {
		if !address.Equal(member, candidate) {
			out = append(out, member)
		}
	}
	return out, nil
}
