package postgres

import (
	"pharmacy/internal/adapters/out/postgres/archiverepo"
	"pharmacy/internal/adapters/out/postgres/blobrepo"
	"pharmacy/internal/adapters/out/postgres/catalogrepo"
	"pharmacy/internal/adapters/out/postgres/fulfillmentrepo"
	"pharmacy/internal/adapters/out/postgres/orderrowrepo"
	"pharmacy/internal/adapters/out/postgres/processrepo"

	"gorm.io/gorm"
)

// orderRowNumberConstraint keeps row numbers unique among live rows.
// Renumbering rewrites every row one UPDATE at a time inside a single
// transaction, and a promoted row takes a number still held by its neighbor
// until that neighbor is rewritten; the constraint is deferred so uniqueness
// is only checked at commit, when the permutation is complete.
const orderRowNumberConstraint = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'uq_order_rows_row_number'
	) THEN
		ALTER TABLE order_rows
			ADD CONSTRAINT uq_order_rows_row_number UNIQUE (row_number)
			DEFERRABLE INITIALLY DEFERRED;
	END IF;
END $$;
`

// Migrate creates or updates the schema for every persisted structure.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalogrepo.RecordDTO{},
		&orderrowrepo.RowDTO{},
		&fulfillmentrepo.RowDTO{},
		&processrepo.RowDTO{},
		&archiverepo.BundleDTO{},
		&archiverepo.OrderSnapshotDTO{},
		&archiverepo.FulfillmentSnapshotDTO{},
		&archiverepo.ProcessSnapshotDTO{},
		&blobrepo.BlobDTO{},
	); err != nil {
		return err
	}

	return db.Exec(orderRowNumberConstraint).Error
}
