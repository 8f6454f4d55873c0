package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllHousesQueryHandler lists houses straight from the database.
type GetAllHousesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllHousesQueryHandler creates a handler reading through db.
func NewGetAllHousesQueryHandler(db *gorm.DB) GetAllHousesQueryHandler {
	return GetAllHousesQueryHandler{db: db}
}

// Handle returns all houses, oldest first. An empty database yields an empty,
// non-nil slice.
func (h GetAllHousesQueryHandler) Handle(ctx context.Context, query GetAllHousesQuery) ([]HouseResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectHouseColumns + `
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	houses := make([]HouseResponse, 0)
	for rows.Next() {
		resp, scanErr := scanHouse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		houses = append(houses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return houses, nil
}
