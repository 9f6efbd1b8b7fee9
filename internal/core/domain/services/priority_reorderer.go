package services

import (
	"sort"

	"pharmacy/internal/core/domain/model/orderrow"
)

// PriorityReorderer is a domain service that recomputes the total order of
// the ledger after an urgency flag changes.
//
// The reordering is a stable partition, not a full re-sort: all urgent rows
// precede all non-urgent rows, and within each urgency class the previous
// relative order (by row number) is preserved. Row numbers are then
// reassigned densely starting at 1.
//
// Every row is renumbered, because the row number is the user-visible
// position; callers must persist the complete set in one transaction.
// Applying the same urgency assignment twice yields the same numbering, so
// the operation is idempotent.
type PriorityReorderer struct{}

// NewPriorityReorderer creates a new PriorityReorderer instance.
func NewPriorityReorderer() PriorityReorderer {
	return PriorityReorderer{}
}

// Reorder partitions and renumbers the full live set of order rows in place.
// The slice is reordered to match the new numbering.
func (PriorityReorderer) Reorder(rows []*orderrow.Row) error {
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return err
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Urgent() != rows[j].Urgent() {
			return rows[i].Urgent()
		}
		return rows[i].RowNumber() < rows[j].RowNumber()
	})

	for i, row := range rows {
		if err := row.Renumber(i + 1); err != nil {
			return err
		}
	}

	return nil
}
