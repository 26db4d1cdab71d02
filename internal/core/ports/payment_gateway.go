package ports

import (
	"context"

	"giftmarket/internal/core/domain/model/kernel"
)

// PaymentGateway is the opaque payment collaborator. The engine never
// speaks the gateway's wire protocol: order creation consumes a "charge
// succeeded" signal upstream, and declining an escrowed order emits a
// refund event through this port.
type PaymentGateway interface {
	// Refund asks the gateway to return the escrowed amount to the buyer.
	// Called inside the decline transaction boundary; how the gateway
	// honors the event is its own concern.
	Refund(ctx context.Context, orderID kernel.UUID, amount kernel.Money) error
}
