package commands

import (
	"context"

	"housebuilder/internal/core/domain/model/house"
)

// OrderHouseCommandHandler stores an empty house waiting for construction.
type OrderHouseCommandHandler struct {
	uowFactory UoWFactory
}

// NewOrderHouseCommandHandler creates a handler for queued construction.
func NewOrderHouseCommandHandler(uowFactory UoWFactory) OrderHouseCommandHandler {
	return OrderHouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the empty house in its own transaction.
func (h *OrderHouseCommandHandler) Handle(ctx context.Context, cmd OrderHouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	queued, err := house.NewHouse(cmd.HouseID(), cmd.Variant())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.HouseRepository().Add(ctx, queued); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
