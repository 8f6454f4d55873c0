// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"log/slog"

	"housebuilder/internal/core/domain/builders"
	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// HouseRepoFactory provides access to the house repository within a transaction.
	HouseRepoFactory interface {
		HouseRepository() ports.HouseRepository
	}

	// UoW manages a transaction over house aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   houseRepo := uow.HouseRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		HouseRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// progressReporter routes a builder's notices to logger, tagged with the house
// they belong to.
func progressReporter(logger *slog.Logger, h *house.House) builders.Reporter {
	return builders.NewSlogReporter(logger.With(
		"house_id", h.ID().String(),
		"variant", h.Variant().String(),
	))
}
