package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/AlexZinkM/share-a-care/internal/wallet"
)

const (
	// codeUserRejected is the EIP-1193 "user rejected the request" error code
	codeUserRejected = 4001

	defaultPollInterval = 2 * time.Second
)

// RPCProvider is a wallet provider reached over Ethereum JSON-RPC.
// Account-change events are produced by polling eth_accounts.
type RPCProvider struct {
	client       *rpc.Client
	url          string
	pollInterval time.Duration
	logger       *slog.Logger
}

// Dial connects to the wallet provider at url. An empty url or a failed dial
// reports wallet.ErrProviderUnavailable.
func Dial(ctx context.Context, url string, pollInterval time.Duration, logger *slog.Logger) (*RPCProvider, error) {
	if url == "" {
		return nil, wallet.ErrProviderUnavailable
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wallet.ErrProviderUnavailable, err)
	}

	return &RPCProvider{
		client:       client,
		url:          url,
		pollInterval: pollInterval,
		logger:       logger.With("component", "provider"),
	}, nil
}

// Close closes the RPC connection
func (p *RPCProvider) Close() {
	p.client.Close()
}

// RequestAccounts calls eth_requestAccounts
func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, mapError(ctx, err)
	}
	return accounts, nil
}

// Accounts calls eth_accounts
func (p *RPCProvider) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, mapError(ctx, err)
	}
	return accounts, nil
}

// ChainID calls eth_chainId
func (p *RPCProvider) ChainID(ctx context.Context) (uint64, error) {
	var id hexutil.Uint64
	if err := p.client.CallContext(ctx, &id, "eth_chainId"); err != nil {
		return 0, mapError(ctx, err)
	}
	return uint64(id), nil
}

// mapError translates RPC failures into the wallet error taxonomy
func mapError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		if rpcErr.ErrorCode() == codeUserRejected {
			return fmt.Errorf("%w: %v", wallet.ErrUserRejected, err)
		}
		return fmt.Errorf("provider error: %w", err)
	}
	// Transport failures: nothing is answering on the other end
	return fmt.Errorf("%w: %v", wallet.ErrProviderUnavailable, err)
}

// SubscribeAccountsChanged starts polling eth_accounts and calls handler
// whenever the list differs from the previous successful poll. The first poll
// only records a baseline. handler runs on the poller goroutine, so events are
// delivered one at a time in the order they were observed.
func (p *RPCProvider) SubscribeAccountsChanged(handler func(accounts []string)) (wallet.Subscription, error) {
	if handler == nil {
		return nil, errors.New("handler is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sub := &pollSubscription{cancel: cancel, done: make(chan struct{})}
	go p.poll(ctx, handler, sub.done)
	return sub, nil
}

func (p *RPCProvider) poll(ctx context.Context, handler func([]string), done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	var last []string
	baseline := false
	for {
		callCtx, cancel := context.WithTimeout(ctx, p.pollInterval)
		accounts, err := p.Accounts(callCtx)
		cancel()

		switch {
		case ctx.Err() != nil:
			return
		case err != nil:
			p.logger.Warn("failed to poll accounts", "url", p.url, "error", err)
		case !baseline:
			last, baseline = accounts, true
		case !slices.Equal(last, accounts):
			last = accounts
			handler(slices.Clone(accounts))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

type pollSubscription struct {
	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
}

// Unsubscribe stops the poller and waits for it to exit
func (s *pollSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}
