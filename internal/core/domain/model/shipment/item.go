package shipment

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of a shipment: a product identifier and a positive
// quantity. A shipment holds an ordered sequence of items; the order is
// preserved for response fidelity but carries no business meaning.
// Items are fixed at creation time.
type Item struct {
	product  string
	quantity int

	guard guard.ConstructorGuard
}

// NewItem creates a validated Item. The product identifier must be
// non-empty and the quantity positive.
func NewItem(product string, quantity int) (Item, error) {
	if err := errors.Join(
		requireNonEmpty("product", product),
		validateQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return Item{
		product:  product,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Product returns the product identifier.
func (i Item) Product() string {
	return i.product
}

// Quantity returns the shipped quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
