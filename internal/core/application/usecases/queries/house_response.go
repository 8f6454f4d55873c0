// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"

	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HouseResponse is the read model of a stored house.
type HouseResponse struct {
	ID          kernel.UUID
	Variant     house.Variant
	Foundation  string
	Walls       string
	Roof        string
	Stage       house.Stage
	Description string
}

const selectHouseColumns = `
		SELECT
			id,
			variant,
			foundation,
			walls,
			roof
		FROM houses`

// scanHouse reads one row of selectHouseColumns. The house is restored through
// the domain so Stage and Description follow the same rules as everywhere else.
func scanHouse(rows *sql.Rows) (HouseResponse, error) {
	var (
		id                      uuid.UUID
		variant                 int
		foundation, walls, roof string
	)

	if err := rows.Scan(&id, &variant, &foundation, &walls, &roof); err != nil {
		return HouseResponse{}, err
	}

	houseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return HouseResponse{}, err
	}

	h, err := house.RestoreHouse(houseID, house.Variant(variant), foundation, walls, roof)
	if err != nil {
		return HouseResponse{}, err
	}

	return HouseResponse{
		ID:          h.ID(),
		Variant:     h.Variant(),
		Foundation:  h.Foundation(),
		Walls:       h.Walls(),
		Roof:        h.Roof(),
		Stage:       h.Stage(),
		Description: h.Description(),
	}, nil
}
