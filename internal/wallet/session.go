package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AlexZinkM/share-a-care/internal/address"
)

// State is a snapshot of the session. An empty Address means no account.
type State struct {
	Address   string `json:"address"`
	Connected bool   `json:"connected"`
}

// Session is the single source of truth for which account, if any, is connected.
// It is owned by the application shell and shared with handlers; all methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	state    State
	storage  Storage
	provider Provider
	logger   *slog.Logger

	sub     Subscription
	attempt uint64 // bumped by every session change; stale RequestConnect results are dropped
}

// New creates a disconnected session. provider may be nil when no wallet software is present.
func New(storage Storage, provider Provider, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		storage:  storage,
		provider: provider,
		logger:   logger.With("component", "wallet"),
	}
}

// Initialize restores the persisted session without contacting the provider and
// subscribes to provider account changes. A malformed persisted record is cleared.
func (s *Session) Initialize(ctx context.Context) (State, error) {
	s.mu.Lock()
	restored, err := s.restoreLocked(ctx)
	if err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	s.state = restored
	needsSub := s.provider != nil && s.sub == nil
	s.mu.Unlock()

	if restored.Connected {
		s.logger.Info("restored wallet session", "address", address.FormatForDisplay(restored.Address))
	}

	if needsSub {
		sub, err := s.provider.SubscribeAccountsChanged(s.handleAccountsChanged)
		if err != nil {
			return restored, fmt.Errorf("failed to subscribe to provider: %w", err)
		}
		s.mu.Lock()
		if s.sub != nil {
			// lost a race with a concurrent Initialize
			s.mu.Unlock()
			sub.Unsubscribe()
		} else {
			s.sub = sub
			s.mu.Unlock()
		}
	}

	return restored, nil
}

func (s *Session) restoreLocked(ctx context.Context) (State, error) {
	connected, hasConnected, err := s.storage.Get(ctx, KeyConnected)
	if err != nil {
		return State{}, fmt.Errorf("failed to read %s: %w", KeyConnected, err)
	}
	addr, hasAddr, err := s.storage.Get(ctx, KeyAddress)
	if err != nil {
		return State{}, fmt.Errorf("failed to read %s: %w", KeyAddress, err)
	}

	if !hasConnected && !hasAddr {
		return State{}, nil
	}
	if connected == "true" && hasAddr && address.IsValid(addr) {
		return State{Address: addr, Connected: true}, nil
	}

	s.logger.Warn("discarding malformed persisted session", "walletConnected", connected, "walletAddress", addr)
	if err := s.clearPersistedLocked(ctx); err != nil {
		return State{}, err
	}
	return State{}, nil
}

// Connect validates addr, marks it connected and persists it.
// Reconnecting the current address still rewrites the persisted pair.
func (s *Session) Connect(ctx context.Context, addr string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt++
	if err := s.connectLocked(ctx, addr); err != nil {
		return s.state, err
	}
	return s.state, nil
}

func (s *Session) connectLocked(ctx context.Context, addr string) error {
	if err := address.Validate(addr); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, KeyAddress, addr); err != nil {
		return fmt.Errorf("failed to persist %s: %w", KeyAddress, err)
	}
	if err := s.storage.Set(ctx, KeyConnected, "true"); err != nil {
		return fmt.Errorf("failed to persist %s: %w", KeyConnected, err)
	}

	if !address.Equal(s.state.Address, addr) || !s.state.Connected {
		s.logger.Info("wallet connected", "address", address.FormatForDisplay(addr))
	}
	s.state = State{Address: addr, Connected: true}
	return nil
}

// Disconnect clears the application-level session. It does not revoke the
// provider's own grant, so the provider may still report the account afterwards.
func (s *Session) Disconnect(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt++
	err := s.disconnectLocked(ctx)
	return s.state, err
}

func (s *Session) disconnectLocked(ctx context.Context) error {
	if s.state.Connected {
		s.logger.Info("wallet disconnected", "address", address.FormatForDisplay(s.state.Address))
	}
	// In-memory state is cleared even when storage fails
	s.state = State{}
	return s.clearPersistedLocked(ctx)
}

func (s *Session) clearPersistedLocked(ctx context.Context) error {
	if err := s.storage.Delete(ctx, KeyConnected); err != nil {
		return fmt.Errorf("failed to delete %s: %w", KeyConnected, err)
	}
	if err := s.storage.Delete(ctx, KeyAddress); err != nil {
		return fmt.Errorf("failed to delete %s: %w", KeyAddress, err)
	}
	return nil
}

// OnProviderAccountsChanged reconciles the session with the provider's account list.
// An empty list disconnects, a new first account is adopted, and an unchanged
// first account is a no-op with no persistence write.
func (s *Session) OnProviderAccountsChanged(ctx context.Context, accounts []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt++

	if len(accounts) == 0 {
		return s.disconnectLocked(ctx)
	}
	if s.state.Connected && address.Equal(accounts[0], s.state.Address) {
		return nil
	}
	return s.connectLocked(ctx, accounts[0])
}

func (s *Session) handleAccountsChanged(accounts []string) {
	if err := s.OnProviderAccountsChanged(context.Background(), accounts); err != nil {
		s.logger.Warn("failed to apply provider account change", "accounts", len(accounts), "error", err)
	}
}

// RequestConnect asks the provider for accounts and connects the first one.
// If the session changes in any way while this call is waiting on the provider,
// its result is discarded.
func (s *Session) RequestConnect(ctx context.Context) (State, error) {
	if s.provider == nil {
		return s.Snapshot(), ErrProviderUnavailable
	}

	s.mu.Lock()
	s.attempt++
	attempt := s.attempt
	s.mu.Unlock()

	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("failed to request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return s.Snapshot(), ErrNoAccounts
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.attempt {
		s.logger.Debug("discarding superseded connect attempt", "attempt", attempt)
		return s.state, nil
	}
	if err := s.connectLocked(ctx, accounts[0]); err != nil {
		return s.state, err
	}
	return s.state, nil
}

// Sync probes the provider for already-authorized accounts and applies them
// the same way as an account-change event
func (s *Session) Sync(ctx context.Context) (State, error) {
	if s.provider == nil {
		return s.Snapshot(), ErrProviderUnavailable
	}
	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("failed to read accounts: %w", err)
	}
	if err := s.OnProviderAccountsChanged(ctx, accounts); err != nil {
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

// Snapshot returns the current state
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ProviderAvailable reports whether wallet software is present
func (s *Session) ProviderAvailable() bool {
	return s.provider != nil
}

// Close releases the provider subscription. The session state is kept.
func (s *Session) Close() {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}
