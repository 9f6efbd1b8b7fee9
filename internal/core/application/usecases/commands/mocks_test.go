package commands_test

import (
	"context"
	"time"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/archive"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/fulfillment"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/orderrow"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Add(ctx context.Context, record *catalog.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCatalogRepository) Update(ctx context.Context, record *catalog.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Record), args.Error(1)
}

func (m *MockCatalogRepository) GetBySubstance(ctx context.Context, substance string) (*catalog.Record, error) {
	args := m.Called(ctx, substance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Record), args.Error(1)
}

func (m *MockCatalogRepository) GetAll(ctx context.Context) ([]*catalog.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Record), args.Error(1)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockOrderRowRepository struct{ mock.Mock }

func (m *MockOrderRowRepository) Add(ctx context.Context, row *orderrow.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockOrderRowRepository) Update(ctx context.Context, row *orderrow.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockOrderRowRepository) Get(ctx context.Context, id kernel.UUID) (*orderrow.Row, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderrow.Row), args.Error(1)
}

func (m *MockOrderRowRepository) GetByRowNumber(ctx context.Context, rowNumber int) (*orderrow.Row, error) {
	args := m.Called(ctx, rowNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderrow.Row), args.Error(1)
}

func (m *MockOrderRowRepository) GetAll(ctx context.Context) ([]*orderrow.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orderrow.Row), args.Error(1)
}

func (m *MockOrderRowRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRowRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockFulfillmentRepository struct{ mock.Mock }

func (m *MockFulfillmentRepository) Add(ctx context.Context, row *fulfillment.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) Update(ctx context.Context, row *fulfillment.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) Get(ctx context.Context, id kernel.UUID) (*fulfillment.Row, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.Row), args.Error(1)
}

func (m *MockFulfillmentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*fulfillment.Row, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.Row), args.Error(1)
}

func (m *MockFulfillmentRepository) GetAll(ctx context.Context) ([]*fulfillment.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfillment.Row), args.Error(1)
}

func (m *MockFulfillmentRepository) GetAllUnconfirmed(ctx context.Context) ([]*fulfillment.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfillment.Row), args.Error(1)
}

func (m *MockFulfillmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockProcessRepository struct{ mock.Mock }

func (m *MockProcessRepository) Add(ctx context.Context, row *process.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockProcessRepository) Update(ctx context.Context, row *process.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockProcessRepository) Get(ctx context.Context, id kernel.UUID) (*process.Row, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*process.Row), args.Error(1)
}

func (m *MockProcessRepository) GetByFulfillment(ctx context.Context, fulfillmentID kernel.UUID) (*process.Row, error) {
	args := m.Called(ctx, fulfillmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*process.Row), args.Error(1)
}

func (m *MockProcessRepository) GetAll(ctx context.Context) ([]*process.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*process.Row), args.Error(1)
}

func (m *MockProcessRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProcessRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockArchiveRepository struct{ mock.Mock }

func (m *MockArchiveRepository) Add(ctx context.Context, bundle *archive.Bundle) error {
	args := m.Called(ctx, bundle)
	return args.Error(0)
}

func (m *MockArchiveRepository) GetAll(ctx context.Context, limit int) ([]*archive.Bundle, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*archive.Bundle), args.Error(1)
}

func (m *MockArchiveRepository) GetLatest(ctx context.Context) (*archive.Bundle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*archive.Bundle), args.Error(1)
}

func (m *MockArchiveRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Put(ctx context.Context, data []byte, contentType string) (kernel.UUID, error) {
	args := m.Called(ctx, data, contentType)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockBlobStore) Get(ctx context.Context, id kernel.UUID) ([]byte, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockBlobStore) GetURL(ctx context.Context, id kernel.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlobStore) ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockActorResolver struct{ mock.Mock }

func (m *MockActorResolver) CurrentActor(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) OrderRowRepository() ports.OrderRowRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRowRepository)
}

func (m *MockUoW) FulfillmentRepository() ports.FulfillmentRepository {
	args := m.Called()
	return args.Get(0).(ports.FulfillmentRepository)
}

func (m *MockUoW) ProcessRepository() ports.ProcessRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessRepository)
}

func (m *MockUoW) ArchiveRepository() ports.ArchiveRepository {
	args := m.Called()
	return args.Get(0).(ports.ArchiveRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockProcessUoWFactory struct{ mock.Mock }

func (m *MockProcessUoWFactory) Create() commands.ProcessUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcessUoW)
}

type MockPipelineUoWFactory struct{ mock.Mock }

func (m *MockPipelineUoWFactory) Create() commands.PipelineUoW {
	args := m.Called()
	return args.Get(0).(commands.PipelineUoW)
}

type MockArchiveUoWFactory struct{ mock.Mock }

func (m *MockArchiveUoWFactory) Create() commands.ArchiveUoW {
	args := m.Called()
	return args.Get(0).(commands.ArchiveUoW)
}
