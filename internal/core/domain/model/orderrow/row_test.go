package orderrow_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/orderrow"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRow(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid row with all valid parameters", func(t *testing.T) {
		row, err := orderrow.NewRow(validID, 1, "paracetamol", 10, 5, 4, 24, false)

		require.NoError(t, err)
		assert.NotNil(t, row)
		require.NoError(t, row.Validate())
		assert.True(t, row.ID().IsEqual(validID))
		assert.Equal(t, 1, row.RowNumber())
		assert.Equal(t, "paracetamol", row.Substance())
		assert.Equal(t, 10.0, row.CurrentBalance())
		assert.Equal(t, 5.0, row.RequestedPacks())
		assert.Equal(t, 4.0, row.ConfirmedPacks())
		assert.False(t, row.Urgent())
	})

	t.Run("should compute derived quantities on creation", func(t *testing.T) {
		row, err := orderrow.NewRow(validID, 1, "paracetamol", 10, 5, 4, 24, false)

		require.NoError(t, err)
		assert.Equal(t, 15.0, row.FinalBalance())
		assert.Equal(t, 120.0, row.RequestedUnits())
		assert.Equal(t, 96.0, row.ConfirmedUnits())
	})

	t.Run("should trim substance", func(t *testing.T) {
		row, err := orderrow.NewRow(validID, 1, "  ibuprofen  ", 0, 0, 0, 0, false)

		require.NoError(t, err)
		assert.Equal(t, "ibuprofen", row.Substance())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		row, err := orderrow.NewRow(invalidID, 1, "paracetamol", 10, 5, 4, 24, false)

		require.Error(t, err)
		assert.Nil(t, row)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero row number", func(t *testing.T) {
		row, err := orderrow.NewRow(validID, 0, "paracetamol", 10, 5, 4, 24, false)

		require.Error(t, err)
		assert.Nil(t, row)
		assert.Contains(t, err.Error(), "rowNumber")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative row number", func(t *testing.T) {
		row, err := orderrow.NewRow(validID, -3, "paracetamol", 10, 5, 4, 24, false)

		require.Error(t, err)
		assert.Nil(t, row)
		assert.Contains(t, err.Error(), "-3 is not greater than 0")
	})

	t.Run("should fail with blank substance", func(t *testing.T) {
		row, err := orderrow.NewRow(validID, 1, "   ", 10, 5, 4, 24, false)

		require.Error(t, err)
		assert.Nil(t, row)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "substance")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		row, err := orderrow.NewRow(invalidID, 0, "", 10, 5, 4, 24, false)

		require.Error(t, err)
		assert.Nil(t, row)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreRow(t *testing.T) {
	t.Run("should trust stored derived fields", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

		// Derived fields deliberately inconsistent with the raw quantities.
		row, err := orderrow.RestoreRow(id, 2, "ibuprofen", 1, 2, 3, 99, 98, 97, true, createdAt, updatedAt)

		require.NoError(t, err)
		require.NoError(t, row.Validate())
		assert.Equal(t, 99.0, row.FinalBalance())
		assert.Equal(t, 98.0, row.RequestedUnits())
		assert.Equal(t, 97.0, row.ConfirmedUnits())
		assert.True(t, row.Urgent())
		assert.Equal(t, createdAt, row.CreatedAt())
		assert.Equal(t, updatedAt, row.UpdatedAt())
	})

	t.Run("should fail with invalid identity", func(t *testing.T) {
		var invalidID kernel.UUID

		row, err := orderrow.RestoreRow(invalidID, 1, "ibuprofen", 0, 0, 0, 0, 0, 0, false, time.Now(), time.Now())

		require.Error(t, err)
		assert.Nil(t, row)
	})
}

func TestRow_Validate(t *testing.T) {
	t.Run("should fail for zero value row", func(t *testing.T) {
		var row orderrow.Row

		assert.ErrorIs(t, row.Validate(), orderrow.ErrRowIsNotConstructed)
	})

	t.Run("should fail for nil row", func(t *testing.T) {
		var row *orderrow.Row

		assert.ErrorIs(t, row.Validate(), orderrow.ErrRowIsNotConstructed)
	})
}

func TestRow_ApplyQuantities(t *testing.T) {
	t.Run("should recompute all derived fields", func(t *testing.T) {
		row, err := orderrow.NewRow(kernel.NewUUID(), 1, "paracetamol", 10, 5, 4, 24, false)
		require.NoError(t, err)

		row.ApplyQuantities(2, 8, 6, 30)

		assert.Equal(t, 2.0, row.CurrentBalance())
		assert.Equal(t, 8.0, row.RequestedPacks())
		assert.Equal(t, 6.0, row.ConfirmedPacks())
		assert.Equal(t, 10.0, row.FinalBalance())
		assert.Equal(t, 240.0, row.RequestedUnits())
		assert.Equal(t, 180.0, row.ConfirmedUnits())
	})

	t.Run("should zero derived fields when quantities are cleared", func(t *testing.T) {
		row, err := orderrow.NewRow(kernel.NewUUID(), 1, "paracetamol", 10, 5, 4, 24, false)
		require.NoError(t, err)

		row.ApplyQuantities(0, 0, 0, 24)

		assert.Equal(t, 0.0, row.FinalBalance())
		assert.Equal(t, 0.0, row.RequestedUnits())
		assert.Equal(t, 0.0, row.ConfirmedUnits())
	})
}

func TestRow_SetUrgent(t *testing.T) {
	t.Run("should flip the urgency flag", func(t *testing.T) {
		row, err := orderrow.NewRow(kernel.NewUUID(), 1, "paracetamol", 10, 5, 4, 24, false)
		require.NoError(t, err)

		row.SetUrgent(true)
		assert.True(t, row.Urgent())

		row.SetUrgent(false)
		assert.False(t, row.Urgent())
	})

	t.Run("should not touch the timestamp on a no-op", func(t *testing.T) {
		row, err := orderrow.NewRow(kernel.NewUUID(), 1, "paracetamol", 10, 5, 4, 24, true)
		require.NoError(t, err)
		before := row.UpdatedAt()

		row.SetUrgent(true)

		assert.Equal(t, before, row.UpdatedAt())
	})
}

func TestRow_ChangeSubstance(t *testing.T) {
	t.Run("should replace the substance keeping identity", func(t *testing.T) {
		row, err := orderrow.NewRow(kernel.NewUUID(), 1, "paracetamol", 10, 5, 4, 24, false)
		require.NoError(t, err)
		id := row.ID()

		require.NoError(t, row.ChangeSubstance("ibuprofen"))

		assert.Equal(t, "ibuprofen", row.Substance())
		assert.True(t, row.ID().IsEqual(id))
	})

	t.Run("should reject a blank substance", func(t *testing.T) {
		row, err := orderrow.NewRow(kernel.NewUUID(), 1, "paracetamol", 10, 5, 4, 24, false)
		require.NoError(t, err)

		err = row.ChangeSubstance("  ")

		require.Error(t, err)
		assert.Equal(t, "paracetamol", row.Substance())
	})
}

func TestRow_Renumber(t *testing.T) {
	t.Run("should assign a new position", func(t *testing.T) {
		row, err := orderrow.NewRow(kernel.NewUUID(), 5, "paracetamol", 10, 5, 4, 24, false)
		require.NoError(t, err)

		require.NoError(t, row.Renumber(2))

		assert.Equal(t, 2, row.RowNumber())
	})

	t.Run("should reject a non-positive position", func(t *testing.T) {
		row, err := orderrow.NewRow(kernel.NewUUID(), 5, "paracetamol", 10, 5, 4, 24, false)
		require.NoError(t, err)

		err = row.Renumber(0)

		require.Error(t, err)
		assert.Equal(t, 5, row.RowNumber())
	})
}

func TestRow_IsEqual(t *testing.T) {
	t.Run("should compare by identity only", func(t *testing.T) {
		id := kernel.NewUUID()
		first, err := orderrow.NewRow(id, 1, "paracetamol", 10, 5, 4, 24, false)
		require.NoError(t, err)
		second, err := orderrow.NewRow(id, 2, "ibuprofen", 0, 0, 0, 0, true)
		require.NoError(t, err)
		third, err := orderrow.NewRow(kernel.NewUUID(), 1, "paracetamol", 10, 5, 4, 24, false)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(third))
		assert.False(t, first.IsEqual(nil))
	})
}
