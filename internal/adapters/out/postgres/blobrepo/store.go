package blobrepo

import (
	"context"
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBlobStore implements BlobStore on top of postgres. Blobs are written
// outside the unit of work: an orphan left by a failed transaction is
// reclaimed by the cleanup job instead of being rolled back.
type GormBlobStore struct {
	db      *gorm.DB
	baseURL string
}

// NewGormBlobStore creates a blob store serving URLs under baseURL.
func NewGormBlobStore(db *gorm.DB, baseURL string) *GormBlobStore {
	return &GormBlobStore{
		db:      db,
		baseURL: baseURL,
	}
}

// Put stores the data and returns the generated blob id.
func (s *GormBlobStore) Put(ctx context.Context, data []byte, contentType string) (kernel.UUID, error) {
	if len(data) == 0 {
		return kernel.UUID{}, errs.NewValueIsRequiredError("data")
	}

	id := kernel.NewUUID()
	dto := BlobDTO{
		ID:          id.Bytes(),
		Data:        data,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}

	return id, nil
}

// Get returns the blob contents and content type.
func (s *GormBlobStore) Get(ctx context.Context, id kernel.UUID) ([]byte, string, error) {
	if err := id.Validate(); err != nil {
		return nil, "", err
	}

	var dto BlobDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errs.NewObjectNotFoundError("blob", id.String())
		}
		return nil, "", err
	}

	return dto.Data, dto.ContentType, nil
}

// GetURL returns the URL under which the blob is served.
func (s *GormBlobStore) GetURL(_ context.Context, id kernel.UUID) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}

	return s.baseURL + id.String(), nil
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (s *GormBlobStore) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&BlobDTO{}, "id = ?", id.Bytes()).Error
}

// ListCreatedBefore returns the ids of blobs stored before the cutoff.
func (s *GormBlobStore) ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&BlobDTO{}).
		Where("created_at < ?", cutoff).
		Order("created_at").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, b := range raw {
		id, idErr := kernel.UUIDFromBytes(b[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
