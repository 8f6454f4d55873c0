package queries

import (
	"errors"

	"housebuilder/internal/pkg/guard"
)

var (
	ErrGetAllHousesQueryIsNotConstructed = errors.New(
		"GetAllHousesQuery must be created via NewGetAllHousesQuery constructor",
	)
)

// GetAllHousesQuery retrieves every stored house, finished or queued.
//
// Example:
//
//	query := NewGetAllHousesQuery()
//	handler := NewGetAllHousesQueryHandler(db)
//
//	houses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list houses: %w", err)
//	}
//	for _, h := range houses {
//	    fmt.Printf("%s (%s): %s\n", h.ID, h.Stage, h.Description)
//	}
type GetAllHousesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllHousesQuery creates the parameterless listing query.
func NewGetAllHousesQuery() GetAllHousesQuery {
	return GetAllHousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllHousesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllHousesQueryIsNotConstructed)
}
