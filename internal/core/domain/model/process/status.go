package process

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Status describes where a confirmed row is in physical handling. This is a
// flat set, not an ordered state machine: any status may be written from any
// other at any time.
type Status string

const (
	// Ordered is the initial status assigned when a process row is created.
	Ordered Status = "ordered"

	// Preparing means the supplier is packing the row.
	Preparing Status = "preparing"

	// OutForDelivery means the boxes left the supplier warehouse.
	OutForDelivery Status = "out_for_delivery"

	// InTransit means the shipment is on its way to the pharmacy.
	InTransit Status = "in_transit"
)

// Validate checks set membership only; there is no transition graph.
func (s Status) Validate() error {
	switch s {
	case Ordered, Preparing, OutForDelivery, InTransit:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a known status", string(s)),
		)
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
