package fulfillment_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/fulfillment"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRow(t *testing.T) {
	validID := kernel.NewUUID()
	validOrderID := kernel.NewUUID()

	t.Run("should create row with zeroed amounts and unconfirmed", func(t *testing.T) {
		row, err := fulfillment.NewRow(validID, validOrderID, 3)

		require.NoError(t, err)
		assert.NotNil(t, row)
		require.NoError(t, row.Validate())
		assert.True(t, row.ID().IsEqual(validID))
		assert.True(t, row.OrderID().IsEqual(validOrderID))
		assert.Equal(t, 3, row.RowNumber())
		assert.Equal(t, 0.0, row.FinalOrder())
		assert.Equal(t, 0.0, row.Bonus())
		assert.False(t, row.Confirmed())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		row, err := fulfillment.NewRow(invalidID, validOrderID, 1)

		require.Error(t, err)
		assert.Nil(t, row)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidOrderID kernel.UUID

		row, err := fulfillment.NewRow(validID, invalidOrderID, 1)

		require.Error(t, err)
		assert.Nil(t, row)
	})

	t.Run("should fail with non-positive row number", func(t *testing.T) {
		row, err := fulfillment.NewRow(validID, validOrderID, 0)

		require.Error(t, err)
		assert.Nil(t, row)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestRestoreRow(t *testing.T) {
	t.Run("should restore amounts and confirmation flag", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		createdAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

		row, err := fulfillment.RestoreRow(id, orderID, 2, 10, 1.5, true, createdAt, updatedAt)

		require.NoError(t, err)
		require.NoError(t, row.Validate())
		assert.Equal(t, 10.0, row.FinalOrder())
		assert.Equal(t, 1.5, row.Bonus())
		assert.True(t, row.Confirmed())
		assert.Equal(t, createdAt, row.CreatedAt())
		assert.Equal(t, updatedAt, row.UpdatedAt())
	})
}

func TestRow_Validate(t *testing.T) {
	t.Run("should fail for zero value row", func(t *testing.T) {
		var row fulfillment.Row

		assert.ErrorIs(t, row.Validate(), fulfillment.ErrRowIsNotConstructed)
	})

	t.Run("should fail for nil row", func(t *testing.T) {
		var row *fulfillment.Row

		assert.ErrorIs(t, row.Validate(), fulfillment.ErrRowIsNotConstructed)
	})
}

func TestRow_SetAmounts(t *testing.T) {
	t.Run("should store user-entered quantities", func(t *testing.T) {
		row, err := fulfillment.NewRow(kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)

		row.SetAmounts(12, 2)

		assert.Equal(t, 12.0, row.FinalOrder())
		assert.Equal(t, 2.0, row.Bonus())
	})

	t.Run("should allow clearing back to zero", func(t *testing.T) {
		row, err := fulfillment.NewRow(kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)
		row.SetAmounts(12, 2)

		row.SetAmounts(0, 0)

		assert.Equal(t, 0.0, row.FinalOrder())
		assert.Equal(t, 0.0, row.Bonus())
	})
}

func TestRow_Confirm(t *testing.T) {
	t.Run("should mark the row confirmed", func(t *testing.T) {
		row, err := fulfillment.NewRow(kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)

		row.Confirm()

		assert.True(t, row.Confirmed())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		row, err := fulfillment.NewRow(kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)

		row.Confirm()
		first := row.UpdatedAt()
		row.Confirm()

		assert.True(t, row.Confirmed())
		assert.Equal(t, first, row.UpdatedAt())
	})
}
