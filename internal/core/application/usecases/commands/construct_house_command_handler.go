package commands

import (
	"context"
	"log/slog"

	"housebuilder/internal/core/domain/builders"
	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/services"
)

// ConstructHouseCommandHandler builds a house with the builder of the requested
// variant, sequenced by a HouseDirector, and stores the finished house.
//
// Example:
//
//	handler := NewConstructHouseCommandHandler(uowFactory, logger)
//	cmd, _ := NewConstructHouseCommand(kernel.NewUUID(), house.Standard)
//
//	h, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("house construction failed: %w", err)
//	}
type ConstructHouseCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewConstructHouseCommandHandler creates a handler for immediate construction.
// Build step notices are logged through logger.
func NewConstructHouseCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ConstructHouseCommandHandler {
	return ConstructHouseCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle builds the house before opening the transaction, then persists it.
// Nothing is stored if any step of the transaction fails.
func (h *ConstructHouseCommandHandler) Handle(ctx context.Context, cmd ConstructHouseCommand) (*house.House, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newHouse, err := house.NewHouse(cmd.HouseID(), cmd.Variant())
	if err != nil {
		return nil, err
	}

	builder, err := builders.ForHouse(newHouse, progressReporter(h.logger, newHouse))
	if err != nil {
		return nil, err
	}
	services.NewHouseDirector(builder).ConstructHouse()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.HouseRepository().Add(ctx, builder.House()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return builder.House(), nil
}
