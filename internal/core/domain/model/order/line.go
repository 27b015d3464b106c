package order

import (
	"errors"
	"fmt"

	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

// ErrLineIsNotConstructed indicates that a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one cart position of an order: a catalog item, the ordered quantity,
// and the unit price captured at order time. Lines are immutable value objects;
// price changes in the catalog never affect already-placed orders.
type Line struct {
	itemID    string
	name      string
	quantity  int
	unitPrice int64
	guard     guard.ConstructorGuard
}

// NewLine creates a validated cart line.
// The item id and name must be non-empty, quantity positive, and the unit
// price non-negative (free add-ons are legal).
func NewLine(itemID string, name string, quantity int, unitPrice int64) (Line, error) {
	if itemID == "" {
		return Line{}, errs.NewValueIsRequiredError("item id")
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is negative", unitPrice))
	}

	return Line{
		itemID:    itemID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ItemID returns the catalog identifier of the ordered item.
func (l Line) ItemID() string {
	return l.itemID
}

// Name returns the display name of the ordered item.
func (l Line) Name() string {
	return l.name
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price captured at order time.
func (l Line) UnitPrice() int64 {
	return l.unitPrice
}

// Total returns quantity times unit price.
func (l Line) Total() int64 {
	return int64(l.quantity) * l.unitPrice
}

// Summary returns the "2x Cheese Burger" form used in courier-facing item summaries.
func (l Line) Summary() string {
	return fmt.Sprintf("%dx %s", l.quantity, l.name)
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}
