// Package payments holds the outbound payment adapter. The engine never
// speaks a gateway wire protocol itself; it only emits refund events for
// declined escrowed orders.
package payments

import (
	"context"
	"log/slog"

	"giftmarket/internal/core/domain/model/kernel"
)

// EventLogGateway records refund events to the structured log. It is the
// integration seam for a real processor: the decline transaction calls
// Refund, and whatever consumes the log (or replaces this adapter)
// settles the money.
type EventLogGateway struct {
	logger *slog.Logger
}

// NewEventLogGateway creates an EventLogGateway writing to logger.
func NewEventLogGateway(logger *slog.Logger) EventLogGateway {
	return EventLogGateway{logger: logger}
}

// Refund emits a refund event for the buyer of the given order.
func (g EventLogGateway) Refund(_ context.Context, orderID kernel.UUID, amount kernel.Money) error {
	g.logger.Info("refund emitted",
		"order_id", orderID.String(),
		"amount", amount.String(),
	)
	return nil
}
