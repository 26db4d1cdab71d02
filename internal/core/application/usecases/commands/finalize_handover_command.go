package commands

import (
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/guard"
)

var ErrFinalizeHandoverCommandIsNotConstructed = errors.New(
	"FinalizeHandoverCommand must be created via NewFinalizeHandoverCommand constructor",
)

// FinalizeHandoverCommand closes an order at the moment goods change hands.
// For pickup orders the shop has just verified the buyer's collection token
// and verification carries the modality used (scan or manual). For
// dispatched delivery orders the shop attests the handover to the bound
// courier and verification is VerifiedNone.
//
// photoRef optionally references a photo taken at the counter; it is
// attached best-effort and never blocks finalization.
type FinalizeHandoverCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	verification order.VerificationMethod
	photoRef     string

	guard guard.ConstructorGuard
}

// NewFinalizeHandoverCommand creates a command to finalize an order.
// verification must be a token modality for pickup orders and VerifiedNone
// for the delivery attestation path; the aggregate enforces the pairing.
func NewFinalizeHandoverCommand(
	orderID kernel.UUID,
	verification order.VerificationMethod,
	photoRef string,
) (FinalizeHandoverCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FinalizeHandoverCommand{}, err
	}

	return FinalizeHandoverCommand{
		orderID:      orderID,
		verification: verification,
		photoRef:     photoRef,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeHandoverCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeHandoverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to finalize.
func (c FinalizeHandoverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Verification returns the modality used to verify the collection token,
// or VerifiedNone for the delivery attestation path.
func (c FinalizeHandoverCommand) Verification() order.VerificationMethod {
	return c.verification
}

// PhotoRef returns the optional collection photo reference.
func (c FinalizeHandoverCommand) PhotoRef() string {
	return c.photoRef
}
