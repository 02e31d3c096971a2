package kernel

import (
	"fmt"
	"strconv"

	"console/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through NewOrderID. This error is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

// OrderID is a value object wrapping the numeric order identifier assigned by the
// external order service. Identifiers are positive and immutable; the zero value is
// invalid and must be constructed through NewOrderID.
type OrderID struct {
	id int64
}

// NewOrderID creates an OrderID from a raw numeric identifier.
// Returns an error if the identifier is not positive.
func NewOrderID(id int64) (OrderID, error) {
	if id <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%d is not greater than 0", id),
		)
	}
	return OrderID{id: id}, nil
}

// Int64 returns the raw numeric identifier.
func (o OrderID) Int64() int64 {
	return o.id
}

// String returns the decimal representation of the identifier.
func (o OrderID) String() string {
	return strconv.FormatInt(o.id, 10)
}

// IsEqual compares two order identifiers for equality.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate checks that the OrderID was created through NewOrderID.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (o OrderID) Validate() error {
	if o.id <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
