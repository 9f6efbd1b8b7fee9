package process_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRow(t *testing.T) {
	validID := kernel.NewUUID()
	validFulfillmentID := kernel.NewUUID()
	validOrderID := kernel.NewUUID()

	t.Run("should create row in ordered status with empty box number", func(t *testing.T) {
		row, err := process.NewRow(validID, validFulfillmentID, validOrderID, 4)

		require.NoError(t, err)
		assert.NotNil(t, row)
		require.NoError(t, row.Validate())
		assert.True(t, row.ID().IsEqual(validID))
		assert.True(t, row.FulfillmentID().IsEqual(validFulfillmentID))
		assert.True(t, row.OrderID().IsEqual(validOrderID))
		assert.Equal(t, 4, row.RowNumber())
		assert.Equal(t, process.Ordered, row.Status())
		assert.Empty(t, row.BoxNumber())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		row, err := process.NewRow(invalidID, validFulfillmentID, validOrderID, 1)

		require.Error(t, err)
		assert.Nil(t, row)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid fulfillment id", func(t *testing.T) {
		var invalidFulfillmentID kernel.UUID

		row, err := process.NewRow(validID, invalidFulfillmentID, validOrderID, 1)

		require.Error(t, err)
		assert.Nil(t, row)
	})

	t.Run("should fail with non-positive row number", func(t *testing.T) {
		row, err := process.NewRow(validID, validFulfillmentID, validOrderID, -1)

		require.Error(t, err)
		assert.Nil(t, row)
		assert.Contains(t, err.Error(), "-1 is not greater than 0")
	})
}

func TestRestoreRow(t *testing.T) {
	t.Run("should restore box number and status", func(t *testing.T) {
		id := kernel.NewUUID()
		fulfillmentID := kernel.NewUUID()
		orderID := kernel.NewUUID()
		createdAt := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2026, 5, 3, 8, 0, 0, 0, time.UTC)

		row, err := process.RestoreRow(id, fulfillmentID, orderID, 2, "B-17", process.InTransit, createdAt, updatedAt)

		require.NoError(t, err)
		require.NoError(t, row.Validate())
		assert.Equal(t, "B-17", row.BoxNumber())
		assert.Equal(t, process.InTransit, row.Status())
		assert.Equal(t, createdAt, row.CreatedAt())
		assert.Equal(t, updatedAt, row.UpdatedAt())
	})
}

func TestRow_Validate(t *testing.T) {
	t.Run("should fail for zero value row", func(t *testing.T) {
		var row process.Row

		assert.ErrorIs(t, row.Validate(), process.ErrRowIsNotConstructed)
	})

	t.Run("should fail for nil row", func(t *testing.T) {
		var row *process.Row

		assert.ErrorIs(t, row.Validate(), process.ErrRowIsNotConstructed)
	})
}

func TestRow_SetBoxNumber(t *testing.T) {
	t.Run("should store box number without touching status", func(t *testing.T) {
		row, err := process.NewRow(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)
		require.NoError(t, row.SetStatus(process.Preparing))

		row.SetBoxNumber("A-3")

		assert.Equal(t, "A-3", row.BoxNumber())
		assert.Equal(t, process.Preparing, row.Status())
	})

	t.Run("should allow clearing the box number", func(t *testing.T) {
		row, err := process.NewRow(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)
		row.SetBoxNumber("A-3")

		row.SetBoxNumber("")

		assert.Empty(t, row.BoxNumber())
	})
}

func TestRow_SetStatus(t *testing.T) {
	t.Run("should write any known status from any other", func(t *testing.T) {
		row, err := process.NewRow(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)

		require.NoError(t, row.SetStatus(process.InTransit))
		assert.Equal(t, process.InTransit, row.Status())

		// No transition graph: moving backwards is allowed.
		require.NoError(t, row.SetStatus(process.Ordered))
		assert.Equal(t, process.Ordered, row.Status())
	})

	t.Run("should reject unknown status without touching box number", func(t *testing.T) {
		row, err := process.NewRow(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)
		row.SetBoxNumber("C-9")

		err = row.SetStatus(process.Status("lost"))

		require.Error(t, err)
		assert.Equal(t, process.Ordered, row.Status())
		assert.Equal(t, "C-9", row.BoxNumber())
	})
}
