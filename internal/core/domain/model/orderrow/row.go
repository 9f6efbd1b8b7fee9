package orderrow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

var (
	// ErrRowIsNotConstructed is returned when a Row instance was not created
	// through NewRow or RestoreRow.
	ErrRowIsNotConstructed = errors.New("Row must be created via NewRow constructor")
)

// Row is one line of the order ledger. The row number is a positive integer
// that is unique among live rows and doubles as the user-visible position;
// it is densely reassigned whenever an urgency toggle reorders the ledger.
//
// Balance and quantity fields are never stored inconsistently: every write
// goes through ApplyQuantities, which recomputes the final balance and the
// unit-level quantities in the same call.
type Row struct {
	id kernel.UUID

	rowNumber int

	// substance references a catalog record. The referenced record may not
	// exist yet; enrichment happens at read time and tolerates the gap.
	substance string

	currentBalance float64
	requestedPacks float64
	confirmedPacks float64

	// Derived, recomputed on every quantity write.
	finalBalance   float64
	requestedUnits float64
	confirmedUnits float64

	urgent bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRow creates an order row and computes its derived quantities from the
// given order-side pack-to-unit factor.
func NewRow(
	id kernel.UUID,
	rowNumber int,
	substance string,
	currentBalance, requestedPacks, confirmedPacks float64,
	unitsPerPackLocal float64,
	urgent bool,
) (*Row, error) {
	now := time.Now().UTC()
	row := &Row{
		urgent:        urgent,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		row.setID(id),
		row.setRowNumber(rowNumber),
		row.setSubstance(substance),
	); err != nil {
		return nil, err
	}

	row.applyQuantities(currentBalance, requestedPacks, confirmedPacks, unitsPerPackLocal)
	return row, nil
}

// RestoreRow reconstructs a row from persistence, trusting the stored derived
// fields.
func RestoreRow(
	id kernel.UUID,
	rowNumber int,
	substance string,
	currentBalance, requestedPacks, confirmedPacks float64,
	finalBalance, requestedUnits, confirmedUnits float64,
	urgent bool,
	createdAt, updatedAt time.Time,
) (*Row, error) {
	row := &Row{
		finalBalance:   finalBalance,
		requestedUnits: requestedUnits,
		confirmedUnits: confirmedUnits,
		urgent:         urgent,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		row.setID(id),
		row.setRowNumber(rowNumber),
		row.setSubstance(substance),
	); err != nil {
		return nil, err
	}

	row.currentBalance = currentBalance
	row.requestedPacks = requestedPacks
	row.confirmedPacks = confirmedPacks
	return row, nil
}

// Validate ensures the row was created through a constructor.
func (r *Row) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRowIsNotConstructed
	}
	return nil
}

// IsEqual compares two rows by identity.
func (r *Row) IsEqual(other *Row) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the row's unique identifier.
func (r *Row) ID() kernel.UUID {
	return r.id
}

// RowNumber returns the current position of the row in the ledger.
func (r *Row) RowNumber() int {
	return r.rowNumber
}

// Substance returns the referenced substance key.
func (r *Row) Substance() string {
	return r.substance
}

// CurrentBalance returns the stock on hand, in packs.
func (r *Row) CurrentBalance() float64 {
	return r.currentBalance
}

// RequestedPacks returns the quantity requested from the supplier, in packs.
func (r *Row) RequestedPacks() float64 {
	return r.requestedPacks
}

// ConfirmedPacks returns the quantity confirmed by the customer, in packs.
func (r *Row) ConfirmedPacks() float64 {
	return r.confirmedPacks
}

// FinalBalance returns current balance plus requested packs.
func (r *Row) FinalBalance() float64 {
	return r.finalBalance
}

// RequestedUnits returns the requested quantity converted to units.
func (r *Row) RequestedUnits() float64 {
	return r.requestedUnits
}

// ConfirmedUnits returns the confirmed quantity converted to units.
func (r *Row) ConfirmedUnits() float64 {
	return r.confirmedUnits
}

// Urgent reports whether the row is flagged urgent.
func (r *Row) Urgent() bool {
	return r.urgent
}

// CreatedAt returns the creation timestamp.
func (r *Row) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (r *Row) UpdatedAt() time.Time {
	return r.updatedAt
}

// ApplyQuantities writes the balance and quantity fields and synchronously
// recomputes every derived field from them.
func (r *Row) ApplyQuantities(currentBalance, requestedPacks, confirmedPacks, unitsPerPackLocal float64) {
	r.applyQuantities(currentBalance, requestedPacks, confirmedPacks, unitsPerPackLocal)
	r.updatedAt = time.Now().UTC()
}

// SetUrgent flips the urgency flag. Renumbering is the responsibility of the
// reorder service, which must run over the full live set afterwards.
func (r *Row) SetUrgent(urgent bool) {
	if r.urgent == urgent {
		return
	}
	r.urgent = urgent
	r.updatedAt = time.Now().UTC()
}

// ChangeSubstance repoints the row at a different catalog substance. Saving
// into an occupied row number replaces the substance in place, keeping the
// row's identity stable for downstream references.
func (r *Row) ChangeSubstance(substance string) error {
	if err := r.setSubstance(substance); err != nil {
		return err
	}
	r.updatedAt = time.Now().UTC()
	return nil
}

// Renumber assigns a new position to the row.
func (r *Row) Renumber(rowNumber int) error {
	if err := r.setRowNumber(rowNumber); err != nil {
		return err
	}
	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *Row) applyQuantities(currentBalance, requestedPacks, confirmedPacks, unitsPerPackLocal float64) {
	r.currentBalance = currentBalance
	r.requestedPacks = requestedPacks
	r.confirmedPacks = confirmedPacks
	r.finalBalance = currentBalance + requestedPacks
	r.requestedUnits = requestedPacks * unitsPerPackLocal
	r.confirmedUnits = confirmedPacks * unitsPerPackLocal
}

func (r *Row) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
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

func (r *Row) setSubstance(substance string) error {
	trimmed := strings.TrimSpace(substance)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("substance")
	}
	r.substance = trimmed
	return nil
}
