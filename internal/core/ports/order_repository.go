package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, order *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, order *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInCreatedStatus retrieves one order awaiting allocation.
	// Returns errs.ObjectNotFoundError when no created orders exist.
	GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error)
}
