package kernel

import (
	"fmt"

	"giftmarket/internal/pkg/errs"
)

// DeliveryMethod is the collection strategy chosen by the buyer at checkout.
// It is part of the shared language between the fee calculator (zone pricing
// applies to delivery only) and the order lifecycle (the dispatch branch
// exists for delivery only).
type DeliveryMethod int

const (
	// DeliveryMethodUnknown represents an invalid or undefined method.
	DeliveryMethodUnknown DeliveryMethod = iota

	// DeliveryMethodPickup means the buyer's recipient collects at the shop.
	DeliveryMethodPickup

	// DeliveryMethodDelivery means a courier brings the order to a pinned
	// doorstep location.
	DeliveryMethodDelivery
)

func getDeliveryMethodStrings() map[DeliveryMethod]string {
	return map[DeliveryMethod]string{
		DeliveryMethodUnknown:  "Unknown",
		DeliveryMethodPickup:   "Pickup",
		DeliveryMethodDelivery: "Delivery",
	}
}

// DeliveryMethodFromString parses a case-sensitive wire representation
// ("pickup" or "delivery") into a DeliveryMethod.
func DeliveryMethodFromString(s string) (DeliveryMethod, error) {
	switch s {
	case "pickup":
		return DeliveryMethodPickup, nil
	case "delivery":
		return DeliveryMethodDelivery, nil
	default:
		return DeliveryMethodUnknown, errs.NewValueIsInvalidErrorWithCause("delivery method",
			fmt.Errorf("%q is not a valid delivery method", s))
	}
}

// Validate checks that the method is one of the defined values.
func (m DeliveryMethod) Validate() error {
	if m != DeliveryMethodPickup && m != DeliveryMethodDelivery {
		return errs.NewValueIsInvalidErrorWithCause("delivery method",
			fmt.Errorf("%d is not a valid delivery method", m))
	}
	return nil
}

// String returns the human-readable name of the method.
func (m DeliveryMethod) String() string {
	if str, ok := getDeliveryMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
