package activation

import (
	"context"
)

// Repository defines the interface for activation persistence
type Repository interface {
	Create(ctx context.Context, activation *Activation) error
	Get(ctx context.Context, id string) (*Activation, error)
}
