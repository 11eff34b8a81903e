// Package databasetest provides throwaway sqlite databases for tests.
package databasetest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lildude/athletedash/internal/database"
	"github.com/lildude/athletedash/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New returns a migrated in-memory database private to the calling test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared"))
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection keeps the shared in-memory database alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

// SeedOrg creates an organization administered by adminID.
func SeedOrg(t testing.TB, db *gorm.DB, name, adminID string) *model.Org {
	t.Helper()
	org := &model.Org{Name: name, AdminID: adminID}
	if err := db.Create(org).Error; err != nil {
		t.Fatalf("failed to seed org: %v", err)
	}
	return org
}

// SeedAthlete stores a copy of a and returns it with its id set.
func SeedAthlete(t testing.TB, db *gorm.DB, a model.Athlete) *model.Athlete {
	t.Helper()
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("failed to seed athlete: %v", err)
	}
	return &a
}

// SeedWeights stores n weigh-ins for athleteID, one day apart.
func SeedWeights(t testing.TB, db *gorm.DB, athleteID string, n int) []model.Weight {
	t.Helper()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	weights := make([]model.Weight, 0, n)
	for i := 0; i < n; i++ {
		day := start.AddDate(0, 0, i)
		w := model.Weight{
			AthleteID: athleteID,
			Weight:    150 + float64(i),
			Type:      "Pre",
			Date:      &day,
			Time:      "07:30 AM",
			BodyFat:   12.5,
		}
		if err := db.Create(&w).Error; err != nil {
			t.Fatalf("failed to seed weight: %v", err)
		}
		weights = append(weights, w)
	}
	return weights
}
