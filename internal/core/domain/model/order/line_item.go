package order

import (
	"fmt"

	"console/internal/core/domain/model/kernel"
	"console/internal/pkg/errs"
)

// LineItem is one position of the order: a vehicle type and version at a unit
// price and quantity. The subtotal is derived; the order total is reconciled
// server-side and carried on the aggregate as-is.
type LineItem struct {
	vehicleType string
	version     string
	unitPrice   kernel.Money
	quantity    int
}

// RestoreLineItem reconstructs a line item from the server aggregate.
func RestoreLineItem(vehicleType, version string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	if vehicleType == "" {
		return LineItem{}, errs.NewValueIsRequiredError("vehicle type")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return LineItem{
		vehicleType: vehicleType,
		version:     version,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

// VehicleType returns the vehicle type of the position.
func (i LineItem) VehicleType() string {
	return i.vehicleType
}

// Version returns the vehicle version/trim.
func (i LineItem) Version() string {
	return i.version
}

// UnitPrice returns the price of one unit.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.unitPrice.MultiplyBy(i.quantity)
}
