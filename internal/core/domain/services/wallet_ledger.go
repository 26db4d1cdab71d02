package services

import (
	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
)

// WalletView is a shop's derived balance pair. It is never persisted:
// every read recomputes it from the order history, so a ledger bug can
// never leave a balance permanently wrong.
type WalletView struct {
	// Pending is the sum of totals held in escrow or awaiting collection:
	// orders in Pending, Paid, ReadyForDispatch or Dispatched status.
	Pending kernel.Money

	// Available is the sum of totals released to the shop: orders in
	// Collected status.
	Available kernel.Money
}

// WalletLedger derives shop balances purely from order status. There is no
// separately mutated balance field anywhere in the system; the balance is a
// function of order state and nothing else.
type WalletLedger struct{}

// NewWalletLedger creates a wallet ledger service.
func NewWalletLedger() WalletLedger {
	return WalletLedger{}
}

// LedgerEntry is the minimal projection of one order the ledger needs.
// Read-side callers map (status, total) rows into entries without
// rehydrating full aggregates.
type LedgerEntry struct {
	Status order.Status
	Total  kernel.Money
}

// Balances computes the pending and available balances for one shop from
// the given orders. Orders belonging to other shops are ignored, as are
// Rejected orders (their funds returned to the buyer). Every order must be
// a properly constructed aggregate.
func (l WalletLedger) Balances(shopID kernel.UUID, orders []*order.Order) (WalletView, error) {
	if err := shopID.Validate(); err != nil {
		return WalletView{}, err
	}

	entries := make([]LedgerEntry, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return WalletView{}, err
		}
		if !o.ShopID().IsEqual(shopID) {
			continue
		}
		entries = append(entries, LedgerEntry{Status: o.Status(), Total: o.Totals().Total()})
	}

	return l.BalancesFromEntries(entries), nil
}

// BalancesFromEntries computes balances from pre-filtered entries, all
// assumed to belong to one shop.
func (WalletLedger) BalancesFromEntries(entries []LedgerEntry) WalletView {
	view := WalletView{
		Pending:   kernel.ZeroMoney(),
		Available: kernel.ZeroMoney(),
	}

	for _, entry := range entries {
		switch entry.Status {
		case order.Pending, order.Paid, order.ReadyForDispatch, order.Dispatched:
			view.Pending = view.Pending.Add(entry.Total)
		case order.Collected:
			view.Available = view.Available.Add(entry.Total)
		case order.Rejected, order.Unknown:
			// rejected funds went back to the buyer; nothing accrues
		}
	}

	return view
}
