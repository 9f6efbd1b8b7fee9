// Package blobrepo stores opaque binaries in a postgres bytea column.
package blobrepo

import (
	"time"

	"github.com/google/uuid"
)

// BlobDTO is the database structure for stored binaries.
type BlobDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Data        []byte    `gorm:"type:bytea;not null"`
	ContentType string
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for blobs.
func (BlobDTO) TableName() string {
	return "blobs"
}
