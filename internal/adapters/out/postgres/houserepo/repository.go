package houserepo

import (
	"context"
	"errors"

	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"
	"housebuilder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHouseRepository implements ports.HouseRepository using GORM.
type GormHouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHouseRepository creates a new GORM house repository.
func NewGormHouseRepository(db *gorm.DB, tracker aggregateTracker) *GormHouseRepository {
	return &GormHouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new house to the database.
func (r *GormHouseRepository) Add(ctx context.Context, aggregate *house.House) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the fields of an existing house. Empty strings are written too,
// so the columns are selected explicitly.
func (r *GormHouseRepository) Update(ctx context.Context, aggregate *house.House) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&HouseDTO{}).
		Where("id = ?", dto.ID).
		Select("variant", "foundation", "walls", "roof", "stage").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a house by ID.
func (r *GormHouseRepository) Get(ctx context.Context, id kernel.UUID) (*house.House, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.GoogleUUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("house", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnfinished retrieves every house whose stage is not Complete, oldest first.
func (r *GormHouseRepository) GetAllUnfinished(ctx context.Context) ([]*house.House, error) {
	var dtos []HouseDTO
	if err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "stage <> ?", int(house.Complete)).Error; err != nil {
		return nil, err
	}

	houses := make([]*house.House, 0, len(dtos))
	for _, dto := range dtos {
		h, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		houses = append(houses, h)
	}

	return houses, nil
}
