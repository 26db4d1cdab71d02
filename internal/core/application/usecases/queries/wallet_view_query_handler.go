package queries

import (
	"context"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletViewQueryHandler computes shop balances from the order store.
// Reads only (status, total) projections and hands them to the wallet
// ledger, so the balance rule lives in exactly one place.
type WalletViewQueryHandler struct {
	db     *gorm.DB
	ledger services.WalletLedger
}

// NewWalletViewQueryHandler creates a handler for wallet balance queries.
func NewWalletViewQueryHandler(db *gorm.DB) WalletViewQueryHandler {
	return WalletViewQueryHandler{
		db:     db,
		ledger: services.NewWalletLedger(),
	}
}

// Handle executes the balance computation for one shop. A shop with no
// orders gets two zero balances, not an error.
func (h WalletViewQueryHandler) Handle(
	ctx context.Context,
	query WalletViewQuery,
) (WalletViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return WalletViewQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, total
		FROM orders
		WHERE shop_id = ?
	`, query.ShopID().Bytes()).Rows()
	if err != nil {
		return WalletViewQueryResponse{}, err
	}
	defer rows.Close()

	entries := make([]services.LedgerEntry, 0)
	for rows.Next() {
		var (
			status int
			total  decimal.Decimal
		)
		if err = rows.Scan(&status, &total); err != nil {
			return WalletViewQueryResponse{}, err
		}

		totalMoney, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return WalletViewQueryResponse{}, moneyErr
		}
		entries = append(entries, services.LedgerEntry{
			Status: order.Status(status),
			Total:  totalMoney,
		})
	}
	if err = rows.Err(); err != nil {
		return WalletViewQueryResponse{}, err
	}

	return walletViewResponse(query.ShopID(), h.ledger.BalancesFromEntries(entries)), nil
}
