package order

import (
	"errors"
	"fmt"
	"time"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/pricing"
	"giftmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the fulfillment engine. It owns the
// lifecycle from checkout through preparation, optional dispatch, and
// collection, and snapshots everything needed to regenerate the buyer's
// receipt: line items with captured prices and the full fee breakdown.
//
// Order maintains these invariants:
//   - at least one line item; prices are never recomputed from a live catalog
//   - totals satisfy total = subtotal + platformFee + deliveryFee + processingFee
//   - status transitions move strictly forward; terminal states never change
//   - the collection token is unique to the order and set at creation
//   - collectedOn is set exactly once; the verification method is set at
//     most once, at collection
//
// Orders are never deleted; closed orders remain as immutable history, which
// is what the wallet ledger derives shop balances from.
type Order struct {
	id        kernel.UUID
	buyerID   kernel.UUID
	buyerName string
	shopID    kernel.UUID

	items  []LineItem
	totals pricing.Totals

	status         Status
	token          CollectionToken
	deliveryMethod kernel.DeliveryMethod

	driver           *DriverAssignment
	deliveryLocation *kernel.GeoPoint
	scheduledReady   *time.Time

	verification VerificationMethod
	photoRef     string

	createdAt   time.Time
	collectedOn *time.Time

	isConstructed bool
}

// NewOrder creates an order at checkout completion. The caller has already
// received the payment collaborator's opaque "charge succeeded" signal for
// totals.Total(), so the order starts in an after-payment state:
// Pending (escrow) when any line item is make-to-order, Paid otherwise.
//
// A fresh collection token is generated here. deliveryLocation is the
// buyer's pinned doorstep coordinate and may be nil at creation (it can be
// pinned later, but is required before the order can be marked ready for
// dispatch). scheduledReady optionally records when the shop promised the
// order to be prepared.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	buyerName string,
	shopID kernel.UUID,
	items []LineItem,
	totals pricing.Totals,
	deliveryMethod kernel.DeliveryMethod,
	deliveryLocation *kernel.GeoPoint,
	scheduledReady *time.Time,
) (*Order, error) {
	o := &Order{
		token:          NewCollectionToken(),
		scheduledReady: scheduledReady,
		createdAt:      time.Now().UTC(),
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyer(buyerID, buyerName),
		o.setShopID(shopID),
		o.setItems(items),
		o.setTotals(totals),
		o.setDeliveryMethod(deliveryMethod),
		o.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	o.status = Paid
	if o.hasMakeToOrderItems() {
		o.status = Pending
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation policy. The stored status, token, timestamps and optional
// bindings are taken as-is after consistency validation.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	buyerName string,
	shopID kernel.UUID,
	items []LineItem,
	totals pricing.Totals,
	status Status,
	token CollectionToken,
	deliveryMethod kernel.DeliveryMethod,
	driver *DriverAssignment,
	deliveryLocation *kernel.GeoPoint,
	scheduledReady *time.Time,
	verification VerificationMethod,
	photoRef string,
	createdAt time.Time,
	collectedOn *time.Time,
) (*Order, error) {
	o := &Order{
		scheduledReady: scheduledReady,
		photoRef:       photoRef,
		createdAt:      createdAt,
		collectedOn:    collectedOn,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyer(buyerID, buyerName),
		o.setShopID(shopID),
		o.setItems(items),
		o.setTotals(totals),
		o.setDeliveryMethod(deliveryMethod),
		o.setDeliveryLocation(deliveryLocation),
		status.Validate(),
		token.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.token = token
	o.verification = verification

	if driver != nil {
		if err := driver.Validate(); err != nil {
			return nil, err
		}
		o.driver = driver
	}

	if err := o.validateConsistency(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// BuyerName returns the buyer's display name for verification screens.
func (o *Order) BuyerName() string {
	return o.buyerName
}

// ShopID returns the identifier of the shop fulfilling the order.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Totals returns the fee breakdown snapshotted at creation.
func (o *Order) Totals() pricing.Totals {
	return o.totals
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Token returns the collection token generated at creation.
func (o *Order) Token() CollectionToken {
	return o.token
}

// DeliveryMethod returns the collection strategy chosen at checkout.
func (o *Order) DeliveryMethod() kernel.DeliveryMethod {
	return o.deliveryMethod
}

// Driver returns the bound courier descriptor, or nil before dispatch.
func (o *Order) Driver() *DriverAssignment {
	return o.driver
}

// DeliveryLocation returns the buyer's pinned doorstep coordinate, or nil.
func (o *Order) DeliveryLocation() *kernel.GeoPoint {
	return o.deliveryLocation
}

// ScheduledReady returns the shop's promised preparation time, or nil.
func (o *Order) ScheduledReady() *time.Time {
	return o.scheduledReady
}

// Verification returns the modality recorded at collection.
// VerifiedNone for uncollected orders and courier handovers.
func (o *Order) Verification() VerificationMethod {
	return o.verification
}

// PhotoRef returns the optional collection photo reference, or "".
func (o *Order) PhotoRef() string {
	return o.photoRef
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CollectedOn returns when the order was collected, or nil. Set exactly
// once.
func (o *Order) CollectedOn() *time.Time {
	return o.collectedOn
}

// Accept approves an escrowed make-to-order request: Pending -> Paid.
// The order's total moves into the shop's pending wallet bucket.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Decline refuses an escrowed request: Pending -> Rejected. The caller is
// responsible for emitting the refund to the payment collaborator. The
// order is kept as closed history, never deleted.
func (o *Order) Decline() error {
	newStatus, err := o.status.Decline()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// PinDeliveryLocation records the buyer's doorstep coordinate. Only
// delivery orders still in Pending or Paid can be pinned; the pin is a
// prerequisite of MarkReadyForDispatch.
func (o *Order) PinDeliveryLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if o.deliveryMethod != kernel.DeliveryMethodDelivery {
		return errs.NewInvalidTransitionErrorWithCause("pin delivery location", o.status.String(),
			fmt.Errorf("order is a %s order", o.deliveryMethod))
	}
	if o.status != Pending && o.status != Paid {
		return errs.NewInvalidTransitionError("pin delivery location", o.status.String())
	}

	o.deliveryLocation = &location
	return nil
}

// MarkReadyForDispatch flags a packed delivery order for courier binding:
// Paid -> ReadyForDispatch. It fails with an invalid-transition error for
// pickup orders and for delivery orders whose buyer has not yet pinned a
// doorstep coordinate.
func (o *Order) MarkReadyForDispatch() error {
	if o.deliveryMethod != kernel.DeliveryMethodDelivery {
		return errs.NewInvalidTransitionErrorWithCause("mark ready for dispatch", o.status.String(),
			fmt.Errorf("order is a %s order", o.deliveryMethod))
	}
	if o.deliveryLocation == nil {
		return errs.NewInvalidTransitionErrorWithCause("mark ready for dispatch", o.status.String(),
			errors.New("delivery location is not pinned"))
	}

	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDriver binds a courier to the order: ReadyForDispatch ->
// Dispatched. The descriptor is persisted with the order so the buyer can
// recognize the courier.
func (o *Order) AssignDriver(driver DriverAssignment) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driver = &driver
	return nil
}

// Collect closes a pickup order through token verification: Paid ->
// Collected. The verification modality is recorded exactly once, together
// with the collection timestamp; funds move to the shop's available
// balance. Delivery orders must go through dispatch and ConfirmHandover
// instead.
func (o *Order) Collect(method VerificationMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if o.deliveryMethod != kernel.DeliveryMethodPickup {
		return errs.NewInvalidTransitionErrorWithCause("collect", o.status.String(),
			fmt.Errorf("order is a %s order", o.deliveryMethod))
	}

	newStatus, err := o.status.Collect()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.verification = method
	o.markCollected()
	return nil
}

// ConfirmHandover closes a delivery order on the shop's attestation that it
// handed the goods to the bound courier: Dispatched -> Collected. No token
// verification is involved and no verification method is recorded.
func (o *Order) ConfirmHandover() error {
	newStatus, err := o.status.ConfirmHandover()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.markCollected()
	return nil
}

// AttachCollectionPhoto records an optional photo reference taken before
// finalization. It never blocks collection: an empty reference is simply
// ignored, and attaching is allowed right up to the closing transition.
func (o *Order) AttachCollectionPhoto(photoRef string) {
	if photoRef == "" {
		return
	}
	if o.photoRef == "" {
		o.photoRef = photoRef
	}
}

func (o *Order) markCollected() {
	if o.collectedOn == nil {
		now := time.Now().UTC()
		o.collectedOn = &now
	}
}

func (o *Order) hasMakeToOrderItems() bool {
	for _, item := range o.items {
		if item.MakeToOrder() {
			return true
		}
	}
	return false
}

// validateConsistency cross-checks restored state against the lifecycle
// rules that creation and transitions would have enforced.
func (o *Order) validateConsistency() error {
	if o.driver != nil && o.status != Dispatched && o.status != Collected {
		return errs.NewValueIsInvalidErrorWithCause("driver",
			fmt.Errorf("%s is not a valid status to have a driver", o.status))
	}
	if o.status == Dispatched && o.driver == nil {
		return errs.NewValueIsInvalidErrorWithCause("driver",
			errors.New("a dispatched order must have a driver"))
	}
	if o.status == Collected && o.collectedOn == nil {
		return errs.NewValueIsInvalidErrorWithCause("collectedOn",
			errors.New("a collected order must have a collection time"))
	}
	if o.status != Collected && o.collectedOn != nil {
		return errs.NewValueIsInvalidErrorWithCause("collectedOn",
			fmt.Errorf("%s is not a valid status to have a collection time", o.status))
	}
	if o.verification != VerifiedNone && o.status != Collected {
		return errs.NewValueIsInvalidErrorWithCause("verification",
			fmt.Errorf("%s is not a valid status to have a verification method", o.status))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyer(buyerID kernel.UUID, buyerName string) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if buyerName == "" {
		return errs.NewValueIsRequiredError("buyer name")
	}
	o.buyerID = buyerID
	o.buyerName = buyerName
	return nil
}

func (o *Order) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	o.shopID = shopID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotals(totals pricing.Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	o.totals = totals
	return nil
}

func (o *Order) setDeliveryMethod(method kernel.DeliveryMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.deliveryMethod = method
	return nil
}

func (o *Order) setDeliveryLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	if o.deliveryMethod != kernel.DeliveryMethodDelivery && o.deliveryMethod != kernel.DeliveryMethodUnknown {
		return errs.NewValueIsInvalidErrorWithCause("delivery location",
			errors.New("pickup orders cannot carry a delivery location"))
	}
	o.deliveryLocation = location
	return nil
}
