package testutil

import (
	"context"
	"fmt"

	"github.com/subplane/subplane/internal/domain/activation"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/types"
)

// InMemoryActivationStore implements activation.Repository
type InMemoryActivationStore struct {
	*InMemoryStore[*activation.Activation]
}

// NewInMemoryActivationStore creates a new in-memory activation store
func NewInMemoryActivationStore() *InMemoryActivationStore {
	return &InMemoryActivationStore{
		InMemoryStore: NewInMemoryStore[*activation.Activation](),
	}
}

func (s *InMemoryActivationStore) Create(ctx context.Context, a *activation.Activation) error {
	if a == nil {
		return fmt.Errorf("activation cannot be nil")
	}
	return s.InMemoryStore.Create(ctx, a.ID, a)
}

func (s *InMemoryActivationStore) Get(ctx context.Context, id string) (*activation.Activation, error) {
	a, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || a.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("activation not found").
			WithHint("Activation not found").
			WithReportableDetails(map[string]any{"activation_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return a, nil
}
