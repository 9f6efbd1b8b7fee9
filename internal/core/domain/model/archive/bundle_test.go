package archive_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/archive"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProcessSnapshot() archive.ProcessSnapshot {
	return archive.ProcessSnapshot{
		ProcessID:          kernel.NewUUID(),
		FulfillmentID:      kernel.NewUUID(),
		OrderID:            kernel.NewUUID(),
		RowNumber:          1,
		Substance:          "paracetamol",
		Name:               "Panadol 500mg",
		BoxNumber:          "B-1",
		Status:             process.Ordered,
		FinalPackageAmount: 11,
		FinalUnitAmount:    264,
	}
}

func TestNewBundle(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create bundle with snapshots and total cost", func(t *testing.T) {
		orders := []archive.OrderSnapshot{{
			OrderID:   kernel.NewUUID(),
			RowNumber: 1,
			Substance: "paracetamol",
		}}
		fulfillments := []archive.FulfillmentSnapshot{{
			FulfillmentID: kernel.NewUUID(),
			OrderID:       orders[0].OrderID,
			RowNumber:     1,
			FinalOrder:    10,
			Bonus:         1,
			TotalPrice:    decimal.NewFromInt(35),
		}}
		processes := []archive.ProcessSnapshot{testProcessSnapshot()}

		bundle, err := archive.NewBundle(validID, orders, fulfillments, processes, decimal.NewFromInt(35), "admin")

		require.NoError(t, err)
		require.NoError(t, bundle.Validate())
		assert.True(t, bundle.ID().IsEqual(validID))
		assert.True(t, bundle.TotalCost().Equal(decimal.NewFromInt(35)))
		assert.Equal(t, "admin", bundle.CreatedBy())
		assert.Len(t, bundle.Orders(), 1)
		assert.Len(t, bundle.Fulfillments(), 1)
		assert.Len(t, bundle.Processes(), 1)
		assert.False(t, bundle.CreatedAt().IsZero())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		bundle, err := archive.NewBundle(invalidID, nil, nil, []archive.ProcessSnapshot{testProcessSnapshot()}, decimal.Zero, "admin")

		require.Error(t, err)
		assert.Nil(t, bundle)
	})

	t.Run("should reject empty process snapshots", func(t *testing.T) {
		bundle, err := archive.NewBundle(validID, nil, nil, nil, decimal.Zero, "admin")

		require.Error(t, err)
		assert.Nil(t, bundle)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "processes")
	})

	t.Run("should reject negative total cost", func(t *testing.T) {
		bundle, err := archive.NewBundle(
			validID, nil, nil,
			[]archive.ProcessSnapshot{testProcessSnapshot()},
			decimal.NewFromInt(-1), "admin",
		)

		require.Error(t, err)
		assert.Nil(t, bundle)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept zero total cost", func(t *testing.T) {
		bundle, err := archive.NewBundle(
			validID, nil, nil,
			[]archive.ProcessSnapshot{testProcessSnapshot()},
			decimal.Zero, "admin",
		)

		require.NoError(t, err)
		assert.True(t, bundle.TotalCost().IsZero())
	})
}

func TestRestoreBundle(t *testing.T) {
	t.Run("should restore with explicit timestamp", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

		bundle, err := archive.RestoreBundle(id, nil, nil, nil, decimal.NewFromInt(7), createdAt, "system")

		require.NoError(t, err)
		require.NoError(t, bundle.Validate())
		assert.Equal(t, createdAt, bundle.CreatedAt())
		assert.Equal(t, "system", bundle.CreatedBy())
	})

	t.Run("should not enforce the non-empty process rule on restore", func(t *testing.T) {
		bundle, err := archive.RestoreBundle(kernel.NewUUID(), nil, nil, nil, decimal.Zero, time.Now().UTC(), "system")

		require.NoError(t, err)
		assert.Empty(t, bundle.Processes())
	})
}

func TestBundle_Validate(t *testing.T) {
	t.Run("should fail for zero value bundle", func(t *testing.T) {
		var bundle archive.Bundle

		assert.ErrorIs(t, bundle.Validate(), archive.ErrBundleIsNotConstructed)
	})

	t.Run("should fail for nil bundle", func(t *testing.T) {
		var bundle *archive.Bundle

		assert.ErrorIs(t, bundle.Validate(), archive.ErrBundleIsNotConstructed)
	})
}
