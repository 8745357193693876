package testutil

import (
	"context"

	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/postgres"
)

var _ postgres.IClient = (*MockPostgresClient)(nil) // Ensure MockPostgresClient implements IClient

type txKey struct{}

// InTransaction reports whether ctx carries the mock transaction marker
func InTransaction(ctx context.Context) bool {
	inTx, ok := ctx.Value(txKey{}).(bool)
	return ok && inTx
}

// TxStore is implemented by in-memory stores that participate in mock
// transactions
type TxStore interface {
	Snapshot()
	Restore()
}

// MockPostgresClient is a mock implementation of postgres client for testing.
// Registered stores are snapshotted before the transactional function runs
// and restored when it fails, so rollback behaviour can be asserted.
type MockPostgresClient struct {
	logger *logger.Logger
	stores []TxStore
}

// NewMockPostgresClient creates a new mock postgres client
func NewMockPostgresClient(logger *logger.Logger, stores ...TxStore) *MockPostgresClient {
	return &MockPostgresClient{
		logger: logger,
		stores: stores,
	}
}

// WithTx executes the given function within a mock transaction
func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	// If we're already in a transaction, reuse it
	if inTx, ok := ctx.Value(txKey{}).(bool); ok && inTx {
		return fn(ctx)
	}

	for _, s := range c.stores {
		s.Snapshot()
	}

	err := fn(context.WithValue(ctx, txKey{}, true))
	if err != nil {
		for _, s := range c.stores {
			s.Restore()
		}
	}
	return err
}
