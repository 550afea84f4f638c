package shipment

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress constructor.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery address value object of a shipment.
// Street, city and zip are all required and the value is immutable once
// attached to a shipment.
type Address struct {
	street string
	city   string
	zip    string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. All three components must be
// non-empty strings; no geocoding or postal validation is performed.
func NewAddress(street, city, zip string) (Address, error) {
	if err := errors.Join(
		requireNonEmpty("street", street),
		requireNonEmpty("city", city),
		requireNonEmpty("zip", zip),
	); err != nil {
		return Address{}, err
	}

	return Address{
		street: street,
		city:   city,
		zip:    zip,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Zip returns the postal code of the address.
func (a Address) Zip() string {
	return a.zip
}

// IsEqual compares two addresses component-wise.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.zip == other.zip
}

func requireNonEmpty(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
