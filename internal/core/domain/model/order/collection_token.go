package order

import (
	"strings"

	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrCollectionTokenIsNotConstructed is returned when a CollectionToken was
// not created via NewCollectionToken or RestoreCollectionToken.
var ErrCollectionTokenIsNotConstructed = errs.NewValueIsRequiredError(
	"CollectionToken must be created via NewCollectionToken or RestoreCollectionToken")

// CollectionToken is the opaque credential identifying one order's right to
// collection. It is generated at order creation, unique per order, and never
// reused. The same value serves both modalities: rendered as a scannable
// code for the buyer's recipient and typeable by hand at the counter.
type CollectionToken struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewCollectionToken generates a fresh token for a new order.
func NewCollectionToken() CollectionToken {
	return CollectionToken{
		value: uuid.NewString(),
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreCollectionToken reconstructs a token from persistence.
func RestoreCollectionToken(value string) (CollectionToken, error) {
	if strings.TrimSpace(value) == "" {
		return CollectionToken{}, errs.NewValueIsRequiredError("collection token")
	}

	return CollectionToken{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NormalizeRawToken canonicalizes operator-supplied token input: surrounding
// whitespace is trimmed and the hex digits lowercased. Normalization never
// shortens the token; a manual entry must still match in full.
func NormalizeRawToken(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Validate checks that the token was created through a constructor.
func (t CollectionToken) Validate() error {
	return t.guard.Validate(ErrCollectionTokenIsNotConstructed)
}

// Value returns the token string.
func (t CollectionToken) Value() string {
	return t.value
}

// IsEqual reports whether two tokens carry the same value.
func (t CollectionToken) IsEqual(other CollectionToken) bool {
	return t.value == other.value
}

// String implements fmt.Stringer.
func (t CollectionToken) String() string {
	return t.value
}
