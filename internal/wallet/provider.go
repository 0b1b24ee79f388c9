package wallet

import (
	"context"
	"errors"
)

var (
	// ErrProviderUnavailable means no wallet software is reachable. It is distinct from "not connected".
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	// ErrUserRejected means the provider refused the account request on the user's behalf
	ErrUserRejected = errors.New("wallet connection rejected by user")
	// ErrNoAccounts means the provider granted access but exposed no accounts
	ErrNoAccounts = errors.New("wallet provider returned no accounts")
)

// Provider is the wallet software the session synchronizes with
type Provider interface {
	// RequestAccounts asks the user to expose accounts (eth_requestAccounts)
	RequestAccounts(ctx context.Context) ([]string, error)
	// Accounts returns already-authorized accounts without prompting (eth_accounts)
	Accounts(ctx context.Context) ([]string, error)
	// SubscribeAccountsChanged registers handler for account-change events.
	// Events are delivered one at a time in emission order.
	SubscribeAccountsChanged(handler func(accounts []string)) (Subscription, error)
}

// Subscription is released with Unsubscribe. Unsubscribe must be safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// Storage is durable key-value state that survives restarts
type Storage interface {
	// Get returns ok=false when key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Persisted keys
const (
	KeyConnected = "walletConnected"
	KeyAddress   = "walletAddress"
)
