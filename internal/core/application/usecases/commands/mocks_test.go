package commands_test

import (
	"context"
	"io"
	"log/slog"

	"housebuilder/internal/core/application/usecases/commands"
	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"
	"housebuilder/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockHouseRepository struct{ mock.Mock }

func (m *MockHouseRepository) Add(ctx context.Context, h *house.House) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHouseRepository) Update(ctx context.Context, h *house.House) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHouseRepository) Get(ctx context.Context, id kernel.UUID) (*house.House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*house.House), args.Error(1)
}

func (m *MockHouseRepository) GetAllUnfinished(ctx context.Context) ([]*house.House, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*house.House), args.Error(1)
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

func (m *MockUoW) HouseRepository() ports.HouseRepository {
	args := m.Called()
	return args.Get(0).(ports.HouseRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
