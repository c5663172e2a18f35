package business

import (
	"context"
	"sync"
)

// Service contains the business logic for tenant management: creating and
// listing businesses and tracking each owner's active selection.
type Service struct {
	repo Repository

	mu       sync.Mutex
	sessions map[int64]*Context // per-owner active-business state
}

// NewService creates a new business service
func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		sessions: make(map[int64]*Context),
	}
}

func (s *Service) session(ownerID int64) *Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.sessions[ownerID]
	if !ok {
		c = NewContext()
		s.sessions[ownerID] = c
	}
	return c
}

// Create creates a new business for the owner. A new business starts with an
// empty customer and transaction set. If the owner had no selection yet the
// new business becomes the active one.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Business, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.session(params.OwnerID).ApplyDefault([]*Business{b})
	return b, nil
}

// ListByOwner returns the owner's businesses, oldest first, and applies the
// default selection rule: when nothing is selected and the list is
// non-empty, the first-created business becomes active.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]*Business, error) {
	businesses, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	s.session(ownerID).ApplyDefault(businesses)
	return businesses, nil
}

// Get retrieves a business and verifies the caller owns it. Tenant
// isolation hinges on this check: every scoped query goes through it.
func (s *Service) Get(ctx context.Context, id string, ownerID int64) (*Business, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return b, nil
}

// SetActive switches the owner's active business after an ownership check.
func (s *Service) SetActive(ctx context.Context, id string, ownerID int64) (*Business, error) {
	b, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	s.session(ownerID).SetActive(b)
	return b, nil
}

// Active returns the owner's currently selected business, if any.
func (s *Service) Active(ownerID int64) (*Business, bool) {
	return s.session(ownerID).Active()
}

// ActiveOrDefault returns the owner's active business, loading their
// businesses and applying the default selection when nothing is selected
// yet. The second return is false only when the owner has no businesses.
func (s *Service) ActiveOrDefault(ctx context.Context, ownerID int64) (*Business, bool, error) {
	if b, ok := s.Active(ownerID); ok {
		return b, true, nil
	}

	businesses, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}

	sess := s.session(ownerID)
	sess.ApplyDefault(businesses)
	b, ok := sess.Active()
	return b, ok, nil
}
