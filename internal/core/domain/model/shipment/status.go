package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// Unlike a classic state machine, the shipment lifecycle enforces no
// transition table: any enumerated status may replace any other, and no
// status is terminal. Created is the only status a newly created shipment
// can have.
//
// Status is a value object providing validation and string conversion for
// persistence and the API boundary.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned when a shipment is created.
	Created

	// Processing indicates the shipment is being prepared in the warehouse.
	Processing

	// Dispatched indicates the shipment was handed over to the carrier.
	Dispatched

	// InTransit indicates the carrier is moving the shipment.
	InTransit

	// WaitingCustomer indicates the shipment awaits customer pickup.
	WaitingCustomer

	// Delivered indicates the shipment reached the receiver.
	Delivered

	// Cancelled indicates the shipment was cancelled.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown, for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Created:         "Created",
		Processing:      "Processing",
		Dispatched:      "Dispatched",
		InTransit:       "InTransit",
		WaitingCustomer: "WaitingCustomer",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// getValidStatusStrings returns the map of valid Status values only.
// Unknown is excluded to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:         "Created",
		Processing:      "Processing",
		Dispatched:      "Dispatched",
		InTransit:       "InTransit",
		WaitingCustomer: "WaitingCustomer",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// Validate checks that the Status is one of the enumerated values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable label of the status.
// Invalid values yield "Unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status label as used on the wire, e.g.
// "InTransit". Returns an error for labels outside the enumeration,
// including "Unknown". Matching is case-sensitive.
func StatusFromString(label string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == label {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", label))
}
