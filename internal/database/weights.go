package database

import (
	"context"
	"fmt"

	"github.com/lildude/athletedash/internal/model"
	"gorm.io/gorm"
)

// ListWeights returns every weight record of the athlete.
func ListWeights(ctx context.Context, db *gorm.DB, athleteID string) ([]model.Weight, error) {
	var weights []model.Weight
	err := db.WithContext(ctx).Where("athlete_id = ?", athleteID).Order("created_at").Find(&weights).Error
	if err != nil {
		return nil, fmt.Errorf("listing weights for athlete %q: %w", athleteID, err)
	}
	return weights, nil
}

// ListWeightSummaries returns the weight and type of each of the athlete's weight records.
func ListWeightSummaries(ctx context.Context, db *gorm.DB, athleteID string) ([]model.WeightSummary, error) {
	var summaries []model.WeightSummary
	err := db.WithContext(ctx).Model(&model.Weight{}).
		Select("weight", "type").
		Where("athlete_id = ?", athleteID).
		Order("created_at").
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("listing weight summaries for athlete %q: %w", athleteID, err)
	}
	return summaries, nil
}

// ListWeightHistory returns the athlete's weigh-ins, oldest first, with the
// fields shown on the history page.
func ListWeightHistory(ctx context.Context, db *gorm.DB, athleteID string) ([]model.Weight, error) {
	var weights []model.Weight
	err := db.WithContext(ctx).
		Select("id", "athlete_id", "type", "weighed_on", "weighed_at", "weight", "body_fat").
		Where("athlete_id = ?", athleteID).
		Order("weighed_on").Order("weighed_at").
		Find(&weights).Error
	if err != nil {
		return nil, fmt.Errorf("listing weight history for athlete %q: %w", athleteID, err)
	}
	return weights, nil
}
