package process

import (
	"errors"
	"fmt"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

var (
	// ErrRowIsNotConstructed is returned when a Row instance was not created
	// through NewRow or RestoreRow.
	ErrRowIsNotConstructed = errors.New("Row must be created via NewRow constructor")
)

// Row tracks the physical handling of one confirmed fulfillment row. It is
// created exactly once per fulfillment row, when that row transitions from
// unconfirmed to confirmed.
//
// Box number and status are independently settable; a partial update of one
// field must not clobber the other.
type Row struct {
	id kernel.UUID

	// fulfillmentID references the confirmed fulfillment row.
	fulfillmentID kernel.UUID

	// orderID is carried alongside so cascading deletes and archival can
	// resolve the full triple without an extra hop.
	orderID kernel.UUID

	rowNumber int
	boxNumber string
	status    Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRow creates a process row in the Ordered status with an empty box
// number.
func NewRow(id, fulfillmentID, orderID kernel.UUID, rowNumber int) (*Row, error) {
	now := time.Now().UTC()
	row := &Row{
		status:        Ordered,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		row.setID(id),
		row.setFulfillmentID(fulfillmentID),
		row.setOrderID(orderID),
		row.setRowNumber(rowNumber),
	); err != nil {
		return nil, err
	}

	return row, nil
}

// RestoreRow reconstructs a row from persistence.
func RestoreRow(
	id, fulfillmentID, orderID kernel.UUID,
	rowNumber int,
	boxNumber string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Row, error) {
	row := &Row{
		boxNumber:     boxNumber,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		row.setID(id),
		row.setFulfillmentID(fulfillmentID),
		row.setOrderID(orderID),
		row.setRowNumber(rowNumber),
		row.setStatus(status),
	); err != nil {
		return nil, err
	}

	return row, nil
}

// Validate ensures the row was created through a constructor.
func (r *Row) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRowIsNotConstructed
	}
	return nil
}

// ID returns the row's unique identifier.
func (r *Row) ID() kernel.UUID {
	return r.id
}

// FulfillmentID returns the referenced fulfillment row id.
func (r *Row) FulfillmentID() kernel.UUID {
	return r.fulfillmentID
}

// OrderID returns the referenced order row id.
func (r *Row) OrderID() kernel.UUID {
	return r.orderID
}

// RowNumber returns the display position copied at confirmation time.
func (r *Row) RowNumber() int {
	return r.rowNumber
}

// BoxNumber returns the free-text box label.
func (r *Row) BoxNumber() string {
	return r.boxNumber
}

// Status returns the current handling status.
func (r *Row) Status() Status {
	return r.status
}

// CreatedAt returns the creation timestamp.
func (r *Row) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (r *Row) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetBoxNumber writes the box label without touching the status.
func (r *Row) SetBoxNumber(boxNumber string) {
	r.boxNumber = boxNumber
	r.updatedAt = time.Now().UTC()
}

// SetStatus writes the handling status without touching the box number.
// Only set membership is validated; any status is reachable from any other.
func (r *Row) SetStatus(status Status) error {
	if err := r.setStatus(status); err != nil {
		return err
	}
	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *Row) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Row) setFulfillmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.fulfillmentID = id
	return nil
}

func (r *Row) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *Row) setRowNumber(rowNumber int) error {
	if rowNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"rowNumber",
			fmt.Errorf("%d is not greater than 0", rowNumber),
		)
	}
	r.rowNumber = rowNumber
	return nil
}

func (r *Row) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
