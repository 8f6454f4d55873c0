// Package houserepo persists house aggregates with GORM.
// It maps houses to the "houses" table and back, keeping the derived
// construction stage in its own indexed column so unfinished houses can be
// found without loading every row.
package houserepo

import (
	"time"

	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HouseDTO represents the database structure for persisting house aggregates.
type HouseDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Variant    int
	Foundation string
	Walls      string
	Roof       string
	Stage      int       `gorm:"index"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for house entities.
func (HouseDTO) TableName() string {
	return "houses"
}

// fromDomain converts a house aggregate to its database representation.
// Stage is denormalised from the fields.
func fromDomain(h *house.House) HouseDTO {
	return HouseDTO{
		ID:         h.ID().GoogleUUID(),
		Variant:    int(h.Variant()),
		Foundation: h.Foundation(),
		Walls:      h.Walls(),
		Roof:       h.Roof(),
		Stage:      int(h.Stage()),
	}
}

// toDomain converts a database DTO to a house aggregate using RestoreHouse.
// The stored stage is ignored; the aggregate derives it again.
func toDomain(dto HouseDTO) (*house.House, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return house.RestoreHouse(id, house.Variant(dto.Variant), dto.Foundation, dto.Walls, dto.Roof)
}
