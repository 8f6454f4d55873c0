package queries

import (
	"errors"

	"housebuilder/internal/core/domain/model/kernel"
	"housebuilder/internal/pkg/guard"
)

var (
	ErrGetHouseQueryIsNotConstructed = errors.New(
		"GetHouseQuery must be created via NewGetHouseQuery constructor",
	)
)

// GetHouseQuery retrieves a single house by identifier.
type GetHouseQuery struct {
	houseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetHouseQuery validates houseID and creates the query.
func NewGetHouseQuery(houseID kernel.UUID) (GetHouseQuery, error) {
	if err := houseID.Validate(); err != nil {
		return GetHouseQuery{}, err
	}

	return GetHouseQuery{
		houseID: houseID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHouseQuery) Validate() error {
	return q.guard.Validate(ErrGetHouseQueryIsNotConstructed)
}

// HouseID returns the identifier being looked up.
func (q GetHouseQuery) HouseID() kernel.UUID {
	return q.houseID
}
