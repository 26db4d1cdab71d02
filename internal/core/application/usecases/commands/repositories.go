// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence through an atomic
// status-conditional update.
package commands

import (
	"context"

	"giftmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Every lifecycle transition executes as a single atomic unit
// against the order store.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances, one per
	// command execution.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
