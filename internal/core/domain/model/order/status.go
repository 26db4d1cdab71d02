package order

import (
	"fmt"

	"giftmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine whose transitions only ever move forward along this graph:
//
//	Pending ──┬──> Paid ──┬──> ReadyForDispatch ──> Dispatched ──> Collected
//	          │           │                                          ▲
//	          │           └──────────(pickup, token-verified)────────┘
//	          └──> Rejected
//
// Pending is the escrow state for carts containing make-to-order items,
// awaiting the shop's accept/decline decision. Instant carts skip it and
// start at Paid. Collected and Rejected are terminal with no outgoing edges.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending means the buyer's funds are escrowed and the order awaits
	// the shop's approval of its make-to-order items.
	Pending

	// Paid means funds are captured (or escrow was approved) and the shop
	// is preparing the order for pickup or dispatch.
	Paid

	// ReadyForDispatch means a delivery order is packed and awaiting a
	// courier binding. Pickup orders never enter this status.
	ReadyForDispatch

	// Dispatched means a courier is bound and carrying the order.
	// Delivery orders only.
	Dispatched

	// Collected is terminal: the goods were handed over and the funds
	// released to the shop's available balance.
	Collected

	// Rejected is terminal: the shop declined the request and the escrowed
	// funds were returned to the buyer. The order stays as closed history.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Pending:          "Pending",
		Paid:             "Paid",
		ReadyForDispatch: "ReadyForDispatch",
		Dispatched:       "Dispatched",
		Collected:        "Collected",
		Rejected:         "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "Pending",
		Paid:             "Paid",
		ReadyForDispatch: "ReadyForDispatch",
		Dispatched:       "Dispatched",
		Collected:        "Collected",
		Rejected:         "Rejected",
	}
}

// Validate checks if the Status value is one of the defined lifecycle
// states. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing edges.
// Collected and Rejected orders remain as immutable history.
func (s Status) IsTerminal() bool {
	return s == Collected || s == Rejected
}

// Accept transitions Pending -> Paid when the shop approves a make-to-order
// request, moving the escrow into the shop's pending wallet bucket.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("accept", s.String())
	}
	return Paid, nil
}

// Decline transitions Pending -> Rejected when the shop refuses a
// make-to-order request. The escrowed funds return to the buyer.
func (s Status) Decline() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("decline", s.String())
	}
	return Rejected, nil
}

// MarkReady transitions Paid -> ReadyForDispatch once the shop has the
// delivery order packed. The Order aggregate additionally enforces that the
// order is a delivery order with a pinned location.
func (s Status) MarkReady() (Status, error) {
	if s != Paid {
		return Unknown, errs.NewInvalidTransitionError("mark ready for dispatch", s.String())
	}
	return ReadyForDispatch, nil
}

// Dispatch transitions ReadyForDispatch -> Dispatched when a courier is
// bound to the order.
func (s Status) Dispatch() (Status, error) {
	if s != ReadyForDispatch {
		return Unknown, errs.NewInvalidTransitionError("dispatch", s.String())
	}
	return Dispatched, nil
}

// Collect transitions Paid -> Collected on a token-verified pickup
// collection. This is the only edge that bypasses the dispatch branch.
func (s Status) Collect() (Status, error) {
	if s != Paid {
		return Unknown, errs.NewInvalidTransitionError("collect", s.String())
	}
	return Collected, nil
}

// ConfirmHandover transitions Dispatched -> Collected when the shop attests
// it handed the order to the bound courier. This path is a shop
// attestation, not a token verification.
func (s Status) ConfirmHandover() (Status, error) {
	if s != Dispatched {
		return Unknown, errs.NewInvalidTransitionError("confirm handover", s.String())
	}
	return Collected, nil
}
