package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/model"
	"github.com/AlexZinkM/share-a-care/internal/store"
)

// ErrInvalidInput wraps validation failures of admin request bodies
var ErrInvalidInput = errors.New("invalid input")

// Store is the persistence the admin service mutates
type Store interface {
	PublisherSource
	ListPublishers(ctx context.Context) ([]model.Publisher, error)
	CreatePublisher(ctx context.Context, walletAddress, addedBy string) (*model.Publisher, error)
	DeletePublisher(ctx context.Context, walletAddress string) error

	CreateProject(ctx context.Context, in model.ProjectInput) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, in model.ProjectInput) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateCarePackage(ctx context.Context, in model.CarePackageInput) (*model.CarePackage, error)
	UpdateCarePackage(ctx context.Context, id string, in model.CarePackageInput) (*model.CarePackage, error)
	DeleteCarePackage(ctx context.Context, id string) error
}

// Service performs admin mutations. Every call re-checks the acting address
// against the persisted allow-list before touching the store.
type Service struct {
	auth   *Authorizer
	store  Store
	logger *slog.Logger
}

// NewService creates a new Service
func NewService(auth *Authorizer, st Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		auth:   auth,
		store:  st,
		logger: logger.With("component", "admin"),
	}
}

// Authorizer returns the authorizer the service keeps refreshed
func (s *Service) Authorizer() *Authorizer {
	return s.auth
}

// Bootstrap persists the primary admin and the configured seed addresses,
// skipping ones already stored, then refreshes the allow-list.
func (s *Service) Bootstrap(ctx context.Context, seed []string) error {
	for _, addr := range append([]string{s.auth.Primary()}, seed...) {
		if !address.IsValid(addr) {
			s.logger.Warn("skipping invalid admin seed address", "address", addr)
			continue
		}
		_, err := s.store.CreatePublisher(ctx, addr, "config")
		if err != nil && !errors.Is(err, store.ErrDuplicate) {
			return fmt.Errorf("failed to seed publisher %s: %w", addr, err)
		}
	}
	return s.auth.Refresh(ctx, s.store)
}

// authorize refreshes the allow-list from the store and checks actor against it
func (s *Service) authorize(ctx context.Context, actor string) error {
	if err := s.auth.Refresh(ctx, s.store); err != nil {
		return err
	}
	if !s.auth.Classify(actor) {
		s.logger.Warn("rejected admin operation", "actor", actor)
		return ErrNotAuthorized
	}
	return nil
}

// ListPublishers returns persisted publishers with the primary flagged
func (s *Service) ListPublishers(ctx context.Context, actor string) ([]model.Publisher, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}
	pubs, err := s.store.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pubs {
		pubs[i].Primary = address.Equal(pubs[i].WalletAddress, s.auth.Primary())
	}
	return pubs, nil
}

// AddPublisher grants publisher rights to candidate
func (s *Service) AddPublisher(ctx context.Context, actor, candidate string) (*model.Publisher, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}
	if _, err := AddPublisher(s.auth.AllowList(), candidate); err != nil {
		return nil, err
	}

	pub, err := s.store.CreatePublisher(ctx, candidate, actor)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// lost a race with a concurrent add
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePublisher, candidate)
		}
		return nil, err
	}
	s.logger.Info("publisher added", "publisher", candidate, "actor", actor)
	if err := s.auth.Refresh(ctx, s.store); err != nil {
		// the insert is committed; the next authorize reloads the list
		s.logger.Warn("failed to refresh allow-list after add", "error", err)
	}
	return pub, nil
}

// RemovePublisher revokes publisher rights from candidate
func (s *Service) RemovePublisher(ctx context.Context, actor, candidate string) error {
	if err := s.authorize(ctx, actor); err != nil {
		return err
	}
	if _, err := RemovePublisher(s.auth.AllowList(), s.auth.Primary(), candidate); err != nil {
		return err
	}

	if err := s.store.DeletePublisher(ctx, candidate); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrPublisherNotFound, candidate)
		}
		return err
	}
	s.logger.Info("publisher removed", "publisher", candidate, "actor", actor)
	if err := s.auth.Refresh(ctx, s.store); err != nil {
		s.logger.Warn("failed to refresh allow-list after remove", "error", err)
	}
	return nil
}

func (s *Service) CreateProject(ctx context.Context, actor string, in model.ProjectInput) (*model.Project, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	p, err := s.store.CreateProject(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("project created", "project_id", p.ID, "actor", actor)
	return p, nil
}

func (s *Service) UpdateProject(ctx context.Context, actor, id string, in model.ProjectInput) (*model.Project, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.store.UpdateProject(ctx, id, in)
}

func (s *Service) DeleteProject(ctx context.Context, actor, id string) error {
	if err := s.authorize(ctx, actor); err != nil {
		return err
	}
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.logger.Info("project deleted", "project_id", id, "actor", actor)
	return nil
}

func (s *Service) CreateCarePackage(ctx context.Context, actor string, in model.CarePackageInput) (*model.CarePackage, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.store.CreateCarePackage(ctx, in)
}

func (s *Service) UpdateCarePackage(ctx context.Context, actor, id string, in model.CarePackageInput) (*model.CarePackage, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.store.UpdateCarePackage(ctx, id, in)
}

func (s *Service) DeleteCarePackage(ctx context.Context, actor, id string) error {
	if err := s.authorize(ctx, actor); err != nil {
		return err
	}
	return s.store.DeleteCarePackage(ctx, id)
}
