package commands

import (
	"errors"

	"housebuilder/internal/pkg/guard"
)

var ErrFinishHousesCommandIsNotConstructed = errors.New(
	"FinishHousesCommand must be created via NewFinishHousesCommand constructor",
)

// FinishHousesCommand builds every house that has been queued but not
// completed yet.
//
// Example:
//
//	cmd := NewFinishHousesCommand()
//	finished, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Construction run failed: %v", err)
//	}
type FinishHousesCommand struct {
	guard guard.ConstructorGuard
}

// NewFinishHousesCommand creates the parameterless finishing command.
func NewFinishHousesCommand() FinishHousesCommand {
	return FinishHousesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *FinishHousesCommand) Validate() error {
	return c.guard.Validate(ErrFinishHousesCommandIsNotConstructed)
}
