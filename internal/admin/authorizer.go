package admin

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/AlexZinkM/share-a-care/internal/address"
)

// PublisherSource lists the persisted publisher addresses
type PublisherSource interface {
	ListPublisherAddresses(ctx context.Context) ([]string, error)
}

// Authorizer holds the allow-list used for admin classification.
// The primary address is always a member of the list.
type Authorizer struct {
	mu        sync.RWMutex
	primary   string
	allowList []string
}

// NewAuthorizer builds an authorizer from configuration. primary is required and
// is added to the list when seed does not already contain it.
func NewAuthorizer(primary string, seed []string) (*Authorizer, error) {
	if err := address.Validate(primary); err != nil {
		return nil, fmt.Errorf("primary admin: %w", err)
	}
	a := &Authorizer{primary: primary}
	a.allowList = withPrimary(primary, dedupe(seed))
	return a, nil
}

// Classify reports whether addr should be offered admin capabilities.
// It is advisory; mutations are re-checked by Service.
func (a *Authorizer) Classify(addr string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return IsAdmin(addr, a.allowList)
}

// Primary returns the configured primary admin address
func (a *Authorizer) Primary() string {
	return a.primary
}

// AllowList returns a copy of the current allow-list
func (a *Authorizer) AllowList() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.allowList)
}

// Refresh replaces the in-memory list with the persisted publishers.
// On error the previous list is kept.
func (a *Authorizer) Refresh(ctx context.Context, source PublisherSource) error {
	addrs, err := source.ListPublisherAddresses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load publishers: %w", err)
	}
	list := withPrimary(a.primary, dedupe(addrs))

	a.mu.Lock()
	a.allowList = list
	a.mu.Unlock()
	return nil
}

func withPrimary(primary string, list []string) []string {
	if IsAdmin(primary, list) {
		return list
	}
	return append([]string{primary}, list...)
}

// dedupe drops invalid addresses and case-variant duplicates, keeping first occurrence order
func dedupe(addrs []string) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if !address.IsValid(a) || IsAdmin(a, out) {
			continue
		}
		out = append(out, a)
	}
	return out
}
