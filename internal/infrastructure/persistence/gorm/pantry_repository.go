package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/alchemorsel/pantry/internal/domain/pantry"
	"github.com/alchemorsel/pantry/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PantryRepository implements the pantry repository interface using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// Create creates a new lot
func (r *PantryRepository) Create(ctx context.Context, lot *pantry.Lot) error {
	return r.db.WithContext(ctx).Create(LotToModel(lot)).Error
}

// Update updates an existing lot
func (r *PantryRepository) Update(ctx context.Context, lot *pantry.Lot) error {
	result := r.db.WithContext(ctx).Save(LotToModel(lot))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pantry.ErrLotNotFound
	}
	return nil
}

// FindByID finds a lot by ID
func (r *PantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Lot, error) {
	var model LotModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pantry.ErrLotNotFound
		}
		return nil, err
	}
	return ModelToLot(&model), nil
}

// FindStockedByUser finds the user's lots with quantity available, in
// discovery order
func (r *PantryRepository) FindStockedByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.Lot, error) {
	var models []LotModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(pantry.LotStatusStocked)).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return ModelsToLots(models), nil
}

// FindExpiringBefore finds the user's stocked lots expiring before the
// cutoff, soonest first
func (r *PantryRepository) FindExpiringBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]*pantry.Lot, error) {
	var models []LotModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND expires_at IS NOT NULL AND expires_at < ?",
			userID, string(pantry.LotStatusStocked), cutoff).
		Order("expires_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return ModelsToLots(models), nil
}

// DeductLots applies the batch inside one transaction with row-level locks
// on the affected lots, so concurrent recipe completions cannot over-draw
// the same lot. Any draw that would go negative aborts the whole batch.
func (r *PantryRepository) DeductLots(ctx context.Context, userID uuid.UUID, deductions []pantry.Deduction) error {
	if len(deductions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, d := range deductions {
			var model LotModel
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&model, "id = ? AND user_id = ?", d.LotID, userID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pantry.ErrLotNotFound
				}
				return err
			}

			lot := ModelToLot(&model)
			if err := lot.Deduct(d.Amount); err != nil {
				return err
			}

			if err := tx.Save(LotToModel(lot)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
