package gorm

import (
	"github.com/alchemorsel/pantry/internal/domain/pantry"
)

// LotToModel converts a domain lot to a GORM model
func LotToModel(lot *pantry.Lot) *LotModel {
	return &LotModel{
		ID:            lot.ID(),
		UserID:        lot.UserID(),
		Version:       lot.Version(),
		CanonicalName: lot.CanonicalName(),
		Quantity:      lot.Quantity(),
		Unit:          lot.Unit(),
		Status:        string(lot.Status()),
		ExpiresAt:     lot.ExpiresAt(),
		CreatedAt:     lot.CreatedAt(),
		UpdatedAt:     lot.UpdatedAt(),
	}
}

// ModelToLot converts a GORM model to a domain lot
func ModelToLot(model *LotModel) *pantry.Lot {
	return pantry.RestoreLot(
		model.ID,
		model.UserID,
		model.Version,
		model.CanonicalName,
		model.Quantity,
		model.Unit,
		model.ExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ModelsToLots converts a slice of GORM models to domain lots
func ModelsToLots(models []LotModel) []*pantry.Lot {
	lots := make([]*pantry.Lot, len(models))
	for i := range models {
		lots[i] = ModelToLot(&models[i])
	}
	return lots
}
