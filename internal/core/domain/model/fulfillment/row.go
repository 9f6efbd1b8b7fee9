package fulfillment

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

// Row is the supplier-side (Damas) record for one order row. Exactly one Row
// exists per order row once the ledger has been sent downstream; the
// one-to-one relation is enforced by a lookup-before-insert check in the
// send operation.
//
// Final order and bonus are user-entered pack counts that default to zero.
// The derived amounts (final package amount, final unit amount, total price)
// are read-side projections and are never stored on the row.
type Row struct {
	id kernel.UUID

	// orderID is the immutable reference to the originating order row.
	orderID kernel.UUID

	// rowNumber mirrors the order row's position at send time for display.
	rowNumber int

	finalOrder float64
	bonus      float64
	confirmed  bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRow creates a fulfillment row for an order row with zeroed user input
// and confirmed=false.
func NewRow(id, orderID kernel.UUID, rowNumber int) (*Row, error) {
	now := time.Now().UTC()
	row := &Row{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		row.setID(id),
		row.setOrderID(orderID),
		row.setRowNumber(rowNumber),
	); err != nil {
		return nil, err
	}

	return row, nil
}

// RestoreRow reconstructs a row from persistence.
func RestoreRow(
	id, orderID kernel.UUID,
	rowNumber int,
	finalOrder, bonus float64,
	confirmed bool,
	createdAt, updatedAt time.Time,
) (*Row, error) {
	row := &Row{
		finalOrder:    finalOrder,
		bonus:         bonus,
		confirmed:     confirmed,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		row.setID(id),
		row.setOrderID(orderID),
		row.setRowNumber(rowNumber),
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

// OrderID returns the referenced order row id.
func (r *Row) OrderID() kernel.UUID {
	return r.orderID
}

// RowNumber returns the display position copied from the order row.
func (r *Row) RowNumber() int {
	return r.rowNumber
}

// FinalOrder returns the user-entered final order quantity, in packs.
func (r *Row) FinalOrder() float64 {
	return r.finalOrder
}

// Bonus returns the user-entered bonus quantity, in packs.
func (r *Row) Bonus() float64 {
	return r.bonus
}

// Confirmed reports whether the row has been confirmed by the supplier.
func (r *Row) Confirmed() bool {
	return r.confirmed
}

// CreatedAt returns the creation timestamp.
func (r *Row) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (r *Row) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetAmounts writes the user-entered final order and bonus quantities.
func (r *Row) SetAmounts(finalOrder, bonus float64) {
	r.finalOrder = finalOrder
	r.bonus = bonus
	r.updatedAt = time.Now().UTC()
}

// Confirm marks the row as confirmed. Confirming an already confirmed row is
// a no-op, which keeps the batch confirm operation idempotent.
func (r *Row) Confirm() {
	if r.confirmed {
		return
	}
	r.confirmed = true
	r.updatedAt = time.Now().UTC()
}

func (r *Row) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Row) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
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
