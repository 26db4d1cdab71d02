package queries

import (
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/services"
	"giftmarket/internal/pkg/guard"
)

var ErrWalletViewQueryIsNotConstructed = errors.New(
	"WalletViewQuery must be created via NewWalletViewQuery constructor",
)

// WalletViewQuery retrieves a shop's derived balance pair. Balances are
// recomputed from the order history on every read, never stored.
//
// Example:
//
//	query, _ := NewWalletViewQuery(shopID)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("pending %s, available %s\n", view.Pending, view.Available)
type WalletViewQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWalletViewQuery creates a wallet query for the given shop.
func NewWalletViewQuery(shopID kernel.UUID) (WalletViewQuery, error) {
	if err := shopID.Validate(); err != nil {
		return WalletViewQuery{}, err
	}

	return WalletViewQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q WalletViewQuery) Validate() error {
	return q.guard.Validate(ErrWalletViewQueryIsNotConstructed)
}

// ShopID returns the shop whose balances are requested.
func (q WalletViewQuery) ShopID() kernel.UUID {
	return q.shopID
}

// WalletViewQueryResponse carries the derived balances for one shop.
type WalletViewQueryResponse struct {
	ShopID    kernel.UUID
	Pending   kernel.Money
	Available kernel.Money
}

func walletViewResponse(shopID kernel.UUID, view services.WalletView) WalletViewQueryResponse {
	return WalletViewQueryResponse{
		ShopID:    shopID,
		Pending:   view.Pending,
		Available: view.Available,
	}
}
