package queries

import (
	"context"

	"housebuilder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetHouseQueryHandler loads one house straight from the database.
type GetHouseQueryHandler struct {
	db *gorm.DB
}

// NewGetHouseQueryHandler creates a handler reading through db.
func NewGetHouseQueryHandler(db *gorm.DB) GetHouseQueryHandler {
	return GetHouseQueryHandler{db: db}
}

// Handle returns the house or an errs.ObjectNotFoundError when it does not exist.
func (h GetHouseQueryHandler) Handle(ctx context.Context, query GetHouseQuery) (HouseResponse, error) {
	if err := query.Validate(); err != nil {
		return HouseResponse{}, err
	}

	id := query.HouseID().GoogleUUID()
	rows, err := h.db.WithContext(ctx).Raw(selectHouseColumns+`
		WHERE id = ?
	`, id).Rows()
	if err != nil {
		return HouseResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return HouseResponse{}, err
		}
		return HouseResponse{}, errs.NewObjectNotFoundError("houseId", query.HouseID().String())
	}

	return scanHouse(rows)
}
