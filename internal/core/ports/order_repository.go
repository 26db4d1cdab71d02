// Package ports defines the contracts between the domain core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are append-and-update only; nothing ever deletes a row, so the
// full history remains available to the wallet ledger.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateWithStatus persists changes to an existing order, conditioned
	// on the stored row still holding expectedStatus. This is the atomic
	// boundary every lifecycle transition runs through: "read status,
	// validate legality, write new status" can never interleave with a
	// concurrent writer on the same order.
	//
	// Returns errs.ConcurrentModificationError when the conditional update
	// affected no rows, i.e. another writer moved the order first. Retry
	// policy belongs to the caller.
	UpdateWithStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByToken retrieves the order holding the given collection token.
	// The token must already be normalized (see order.NormalizeRawToken);
	// matching is exact, never by prefix. Returns errs.ObjectNotFoundError
	// when no order holds the token.
	GetByToken(ctx context.Context, token string) (*order.Order, error)

	// GetAllByShop retrieves one shop's complete order history, including
	// closed orders. This feeds the derived wallet view.
	GetAllByShop(ctx context.Context, shopID kernel.UUID) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
