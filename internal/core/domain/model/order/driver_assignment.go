package order

import (
	"errors"

	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"
)

// ErrDriverAssignmentIsNotConstructed is returned when a DriverAssignment
// was not created via the NewDriverAssignment constructor.
var ErrDriverAssignmentIsNotConstructed = errors.New(
	"DriverAssignment must be created via NewDriverAssignment constructor")

// DriverAssignment is the courier descriptor bound to a delivery order at
// dispatch. It is absent until the Dispatch Coordinator records the binding.
// Driver selection itself is external; this value only captures who carries
// the order.
type DriverAssignment struct { //nolint:recvcheck //using for validation
	name    string
	vehicle string
	plate   string
	phone   string

	guard guard.ConstructorGuard
}

// NewDriverAssignment creates a driver descriptor. All four fields are
// required so the buyer can recognize and reach the courier.
func NewDriverAssignment(name, vehicle, plate, phone string) (DriverAssignment, error) {
	assignment := DriverAssignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setField(&assignment.name, name, "driver name"),
		assignment.setField(&assignment.vehicle, vehicle, "driver vehicle"),
		assignment.setField(&assignment.plate, plate, "driver plate"),
		assignment.setField(&assignment.phone, phone, "driver phone"),
	); err != nil {
		return DriverAssignment{}, err
	}

	return assignment, nil
}

// Validate checks that the assignment was created through its constructor.
func (d DriverAssignment) Validate() error {
	return d.guard.Validate(ErrDriverAssignmentIsNotConstructed)
}

// Name returns the courier's name.
func (d DriverAssignment) Name() string {
	return d.name
}

// Vehicle returns the vehicle descriptor (e.g. "white van").
func (d DriverAssignment) Vehicle() string {
	return d.vehicle
}

// Plate returns the vehicle's license plate.
func (d DriverAssignment) Plate() string {
	return d.plate
}

// Phone returns the courier's contact number.
func (d DriverAssignment) Phone() string {
	return d.phone
}

func (d *DriverAssignment) setField(target *string, value, paramName string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*target = value
	return nil
}
