package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")
)

// Record is the master-data aggregate for a single substance. It is the sole
// owner of naming and pricing information; order, fulfillment, and process
// rows reference it by substance and are enriched from it at read time.
//
// Record invariants:
//   - Substance is non-empty after trimming and is immutable once set
//   - Pack-to-unit factors are non-negative
//   - Unit price is non-negative
//   - Can only be created through NewRecord or RestoreRecord
type Record struct {
	id kernel.UUID

	// substance is the unique, case-sensitive, whitespace-trimmed key.
	substance string

	name    string
	company string

	// unitsPerPackLocal converts ordered pack counts into units on the
	// order ledger side.
	unitsPerPackLocal float64

	// unitsPerPackSupplier converts fulfilled pack counts into units on the
	// supplier (Damas) side.
	unitsPerPackSupplier float64

	unitPrice decimal.Decimal

	// imageID references an uploaded blob, if any.
	imageID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRecord creates a catalog record with validation. The substance is
// trimmed before it is checked and stored.
func NewRecord(
	id kernel.UUID,
	substance, name, company string,
	unitsPerPackLocal, unitsPerPackSupplier float64,
	unitPrice decimal.Decimal,
	imageID *kernel.UUID,
) (*Record, error) {
	now := time.Now().UTC()
	record := &Record{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setSubstance(substance),
		record.setFields(name, company, unitsPerPackLocal, unitsPerPackSupplier, unitPrice, imageID),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a record from persistence without touching
// timestamps.
func RestoreRecord(
	id kernel.UUID,
	substance, name, company string,
	unitsPerPackLocal, unitsPerPackSupplier float64,
	unitPrice decimal.Decimal,
	imageID *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Record, error) {
	record := &Record{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setSubstance(substance),
		record.setFields(name, company, unitsPerPackLocal, unitsPerPackSupplier, unitPrice, imageID),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// IsEqual compares two records by identity.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// Substance returns the unique substance key.
func (r *Record) Substance() string {
	return r.substance
}

// Name returns the display name.
func (r *Record) Name() string {
	return r.name
}

// Company returns the manufacturer name.
func (r *Record) Company() string {
	return r.company
}

// UnitsPerPackLocal returns the order-side pack-to-unit factor.
func (r *Record) UnitsPerPackLocal() float64 {
	return r.unitsPerPackLocal
}

// UnitsPerPackSupplier returns the supplier-side pack-to-unit factor.
func (r *Record) UnitsPerPackSupplier() float64 {
	return r.unitsPerPackSupplier
}

// UnitPrice returns the price per pack.
func (r *Record) UnitPrice() decimal.Decimal {
	return r.unitPrice
}

// ImageID returns the blob reference of the record's image, or nil.
func (r *Record) ImageID() *kernel.UUID {
	return r.imageID
}

// CreatedAt returns the creation timestamp.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

// ApplyUpdate replaces every mutable field of the record. Identity and
// substance are deliberately not replaceable; an edit that needs a different
// substance is a delete plus create.
func (r *Record) ApplyUpdate(
	name, company string,
	unitsPerPackLocal, unitsPerPackSupplier float64,
	unitPrice decimal.Decimal,
	imageID *kernel.UUID,
) error {
	if err := r.setFields(name, company, unitsPerPackLocal, unitsPerPackSupplier, unitPrice, imageID); err != nil {
		return err
	}

	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setSubstance(substance string) error {
	trimmed := strings.TrimSpace(substance)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("substance")
	}
	r.substance = trimmed
	return nil
}

func (r *Record) setFields(
	name, company string,
	unitsPerPackLocal, unitsPerPackSupplier float64,
	unitPrice decimal.Decimal,
	imageID *kernel.UUID,
) error {
	if unitsPerPackLocal < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitsPerPackLocal",
			fmt.Errorf("%v is negative", unitsPerPackLocal),
		)
	}
	if unitsPerPackSupplier < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitsPerPackSupplier",
			fmt.Errorf("%v is negative", unitsPerPackSupplier),
		)
	}
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	if imageID != nil {
		if err := imageID.Validate(); err != nil {
			return err
		}
	}

	r.name = name
	r.company = company
	r.unitsPerPackLocal = unitsPerPackLocal
	r.unitsPerPackSupplier = unitsPerPackSupplier
	r.unitPrice = unitPrice
	r.imageID = imageID
	return nil
}
