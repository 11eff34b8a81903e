package database

import (
	"context"
	"fmt"
	"time"

	"github.com/lildude/athletedash/internal/model"
	"gorm.io/gorm"
)

// ListAthletes returns every athlete sorted by last name, then first name.
func ListAthletes(ctx context.Context, db *gorm.DB) ([]model.Athlete, error) {
	var athletes []model.Athlete
	err := db.WithContext(ctx).Order("last_name ASC").Order("first_name ASC").Find(&athletes).Error
	if err != nil {
		return nil, fmt.Errorf("listing athletes: %w", err)
	}
	return athletes, nil
}

// GetAthleteByID returns the athlete with the given id. A missing athlete
// yields an error wrapping gorm.ErrRecordNotFound.
func GetAthleteByID(ctx context.Context, db *gorm.DB, id string) (*model.Athlete, error) {
	var athlete model.Athlete
	if err := db.WithContext(ctx).First(&athlete, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("getting athlete %q: %w", id, err)
	}
	return &athlete, nil
}

// GetAthleteProfile returns only the fields shown on the history page.
func GetAthleteProfile(ctx context.Context, db *gorm.DB, id string) (*model.Athlete, error) {
	var athlete model.Athlete
	err := db.WithContext(ctx).
		Select("id", "first_name", "last_name", "gender", "grad_year", "birth_date", "sport").
		First(&athlete, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("getting athlete profile %q: %w", id, err)
	}
	return &athlete, nil
}

// CreateAthlete inserts a new athlete, assigning its id.
func CreateAthlete(ctx context.Context, db *gorm.DB, athlete *model.Athlete) error {
	if err := db.WithContext(ctx).Create(athlete).Error; err != nil {
		return fmt.Errorf("creating athlete: %w", err)
	}
	return nil
}

// ReplaceAthlete overwrites every editable column of the stored athlete
// with the values in athlete. OrgID and CreatedAt are left untouched.
func ReplaceAthlete(ctx context.Context, db *gorm.DB, athlete *model.Athlete) error {
	res := db.WithContext(ctx).Model(&model.Athlete{}).Where("id = ?", athlete.ID).Updates(map[string]any{
		"first_name":  athlete.FirstName,
		"last_name":   athlete.LastName,
		"birth_date":  athlete.BirthDate,
		"gender":      athlete.Gender,
		"sport":       athlete.Sport,
		"grad_year":   athlete.GradYear,
		"high_risk":   athlete.HighRisk,
		"show_weight": athlete.ShowWeight,
		"body_fat":    athlete.BodyFat,
		"passcode":    athlete.Passcode,
		"updated_at":  time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("updating athlete %q: %w", athlete.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("updating athlete %q: %w", athlete.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteAthlete removes the athlete. With cascade set, the athlete's weight
// records are removed in the same transaction and their count is returned.
func DeleteAthlete(ctx context.Context, db *gorm.DB, id string, cascade bool) (int64, error) {
	var removed int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cascade {
			res := tx.Where("athlete_id = ?", id).Delete(&model.Weight{})
			if res.Error != nil {
				return res.Error
			}
			removed = res.RowsAffected
		}

		res := tx.Where("id = ?", id).Delete(&model.Athlete{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("deleting athlete %q: %w", id, err)
	}
	return removed, nil
}
