package commands

import (
	"context"
	"log/slog"

	"housebuilder/internal/core/domain/builders"
	"housebuilder/internal/core/domain/services"
)

// FinishHousesCommandHandler hands every unfinished house to a builder of its
// variant and lets a HouseDirector run the full build sequence.
//
// Houses are rebuilt from the foundation up even when some fields were already
// written; steps overwrite, so the outcome is the same.
type FinishHousesCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewFinishHousesCommandHandler creates the handler used by the construction job.
func NewFinishHousesCommandHandler(uowFactory UoWFactory, logger *slog.Logger) FinishHousesCommandHandler {
	return FinishHousesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle finishes all queued houses in one transaction and returns how many
// were built. Either all of them are stored or none is.
func (h *FinishHousesCommandHandler) Handle(ctx context.Context, cmd FinishHousesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	houseRepo := uow.HouseRepository()

	unfinished, err := houseRepo.GetAllUnfinished(ctx)
	if err != nil {
		return 0, err
	}

	for _, queued := range unfinished {
		builder, builderErr := builders.ForHouse(queued, progressReporter(h.logger, queued))
		if builderErr != nil {
			return 0, builderErr
		}

		services.NewHouseDirector(builder).ConstructHouse()

		if err = houseRepo.Update(ctx, builder.House()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(unfinished), nil
}
