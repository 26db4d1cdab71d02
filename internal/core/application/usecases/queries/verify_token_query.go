// Package queries contains read-only operations for the verification and
// dashboard surfaces. Queries bypass the aggregate and read projections
// straight from the database, the read side of the CQRS split.
package queries

import (
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"
)

var ErrVerifyTokenQueryIsNotConstructed = errors.New(
	"VerifyTokenQuery must be created via NewVerifyTokenQuery constructor",
)

// VerifyTokenQuery checks a buyer's collection token at the shop counter.
// Verification is a pure read: it confirms the token belongs to a
// collectable order and surfaces display data, but never moves the order.
// Finalization is a separate, explicit command.
//
// The raw token may come from a scanner feed or from the shop staff typing
// it in; manual input is normalized (trimmed, lowercased) before lookup.
// Matching is full-token only, prefixes never verify.
//
// Example:
//
//	query, err := NewVerifyTokenQuery(rawToken, "manual")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    fmt.Println("unknown token")
//	case errors.Is(err, errs.ErrAlreadyCollected):
//	    fmt.Println("order already collected")
//	}
type VerifyTokenQuery struct {
	token    string
	modality order.VerificationMethod

	guard guard.ConstructorGuard
}

// NewVerifyTokenQuery creates a token verification query. modality is
// "scan" or "manual" and records how the token reached the counter.
func NewVerifyTokenQuery(rawToken, modality string) (VerifyTokenQuery, error) {
	method, err := order.VerificationMethodFromModality(modality)
	if err != nil {
		return VerifyTokenQuery{}, err
	}

	token := order.NormalizeRawToken(rawToken)
	if token == "" {
		return VerifyTokenQuery{}, errs.NewValueIsRequiredError("token")
	}

	return VerifyTokenQuery{
		token:    token,
		modality: method,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q VerifyTokenQuery) Validate() error {
	return q.guard.Validate(ErrVerifyTokenQueryIsNotConstructed)
}

// Token returns the normalized token to look up.
func (q VerifyTokenQuery) Token() string {
	return q.token
}

// Modality returns the verification modality used at the counter.
func (q VerifyTokenQuery) Modality() order.VerificationMethod {
	return q.modality
}

// VerifyTokenQueryResponse carries the display data the shop sees before
// handing goods over.
type VerifyTokenQueryResponse struct {
	OrderID        kernel.UUID
	BuyerName      string
	ItemCount      int
	Total          kernel.Money
	Status         order.Status
	DeliveryMethod kernel.DeliveryMethod
	// LowAssurance flags manually keyed tokens so the shop can apply extra
	// scrutiny before handover.
	LowAssurance bool
}
