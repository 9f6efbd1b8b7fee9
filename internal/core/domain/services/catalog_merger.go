package services

import (
	"strings"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// MergeAction classifies the fate of one candidate record in a merge.
type MergeAction string

const (
	// ActionCreated means the candidate was inserted as a new record.
	ActionCreated MergeAction = "created"

	// ActionUpdated means the candidate carried an edit hint matching an
	// existing record and was applied as a full field replace.
	ActionUpdated MergeAction = "updated"

	// ActionDuplicate means the candidate's substance collides with another
	// row, either earlier in the batch or already in the store.
	ActionDuplicate MergeAction = "duplicate"

	// ActionRejected means the candidate failed field validation. Rejection
	// is reported per row and never aborts the remaining batch.
	ActionRejected MergeAction = "rejected"
)

// Duplicate reasons reported on MergeOutcome.
const (
	ReasonDuplicateInBatch = "duplicate_in_batch"
	ReasonDuplicateInStore = "duplicate_in_store"
)

// Candidate is one incoming catalog row. EditOfRecordID is the optional edit
// hint: when it matches the identity of the record that already owns the
// substance, the candidate is applied as an update instead of being
// classified as a duplicate.
type Candidate struct {
	Substance            string
	Name                 string
	Company              string
	UnitsPerPackLocal    float64
	UnitsPerPackSupplier float64
	UnitPrice            decimal.Decimal
	ImageID              *kernel.UUID
	EditOfRecordID       *kernel.UUID
}

// MergeOutcome is the per-row classification result.
type MergeOutcome struct {
	RecordID  *kernel.UUID
	Substance string
	Action    MergeAction
	Reason    string
}

// MergeSummary aggregates the outcome counts of a merge. Candidates whose
// substance is empty after trimming are skipped and appear in no count.
type MergeSummary struct {
	Created             int
	Updated             int
	Duplicates          int
	DuplicateSubstances []string
}

// MergeResult carries the classification plus the records to persist.
// Inserts and Updates hold ready-to-write aggregates; the caller owns the
// transaction.
type MergeResult struct {
	Outcomes []MergeOutcome
	Summary  MergeSummary
	Inserts  []*catalog.Record
	Updates  []*catalog.Record
}

// CatalogMerger classifies a batch of candidate catalog records against the
// current store contents. Classification is pure: no I/O happens here, so
// the same duplicate policy serves both the single-row edit path and the
// bulk import path.
//
// Duplicate detection is case-sensitive on the trimmed substance. A record
// created earlier in the same batch is immediately visible to later
// candidates, so intra-batch collisions are caught before any write.
type CatalogMerger struct{}

// NewCatalogMerger creates a new CatalogMerger instance.
func NewCatalogMerger() CatalogMerger {
	return CatalogMerger{}
}

// Merge processes candidates in input order against the existing records.
// A duplicate or rejected row never aborts the batch; unaffected rows still
// produce their inserts and updates.
func (CatalogMerger) Merge(existing []*catalog.Record, candidates []Candidate) MergeResult {
	bySubstance := make(map[string]*catalog.Record, len(existing))
	for _, record := range existing {
		bySubstance[record.Substance()] = record
	}

	result := MergeResult{
		Outcomes: make([]MergeOutcome, 0, len(candidates)),
	}
	seenInBatch := make(map[string]bool)

	for _, candidate := range candidates {
		substance := strings.TrimSpace(candidate.Substance)
		if substance == "" {
			continue
		}

		if seenInBatch[substance] {
			result.markDuplicate(substance, nil, ReasonDuplicateInBatch)
			continue
		}
		seenInBatch[substance] = true

		owner, exists := bySubstance[substance]
		if exists {
			if candidate.EditOfRecordID != nil && candidate.EditOfRecordID.IsEqual(owner.ID()) {
				if err := owner.ApplyUpdate(
					candidate.Name,
					candidate.Company,
					candidate.UnitsPerPackLocal,
					candidate.UnitsPerPackSupplier,
					candidate.UnitPrice,
					candidate.ImageID,
				); err != nil {
					result.markRejected(substance, err)
					continue
				}

				id := owner.ID()
				result.Updates = append(result.Updates, owner)
				result.Summary.Updated++
				result.Outcomes = append(result.Outcomes, MergeOutcome{
					RecordID:  &id,
					Substance: substance,
					Action:    ActionUpdated,
				})
				continue
			}

			id := owner.ID()
			result.markDuplicate(substance, &id, ReasonDuplicateInStore)
			continue
		}

		record, err := catalog.NewRecord(
			kernel.NewUUID(),
			substance,
			candidate.Name,
			candidate.Company,
			candidate.UnitsPerPackLocal,
			candidate.UnitsPerPackSupplier,
			candidate.UnitPrice,
			candidate.ImageID,
		)
		if err != nil {
			result.markRejected(substance, err)
			continue
		}

		// Visible to the rest of the batch before any database round trip.
		bySubstance[substance] = record

		id := record.ID()
		result.Inserts = append(result.Inserts, record)
		result.Summary.Created++
		result.Outcomes = append(result.Outcomes, MergeOutcome{
			RecordID:  &id,
			Substance: substance,
			Action:    ActionCreated,
		})
	}

	return result
}

func (r *MergeResult) markDuplicate(substance string, recordID *kernel.UUID, reason string) {
	r.Summary.Duplicates++
	r.Summary.DuplicateSubstances = append(r.Summary.DuplicateSubstances, substance)
	r.Outcomes = append(r.Outcomes, MergeOutcome{
		RecordID:  recordID,
		Substance: substance,
		Action:    ActionDuplicate,
		Reason:    reason,
	})
}

func (r *MergeResult) markRejected(substance string, err error) {
	r.Outcomes = append(r.Outcomes, MergeOutcome{
		Substance: substance,
		Action:    ActionRejected,
		Reason:    err.Error(),
	})
}
