// Package model holds the gorm models backing the dashboard.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genders lists the accepted values for Athlete.Gender.
var Genders = []string{"Male", "Female", "Other"}

// DateLayout is the format birth dates and weigh-in dates are entered in.
const DateLayout = "2006-01-02"

// Base carries the string primary key and timestamps shared by every model.
type Base struct {
	ID        string `gorm:"primaryKey;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a new uuid when the record has no id yet.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// User is a dashboard login.
type User struct {
	Base
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// Org is an organization, administered by a single user, that owns athletes.
type Org struct {
	Base
	Name    string `gorm:"not null"`
	AdminID string `gorm:"index;size:36"`
}

// Athlete represents an athlete in the database
type Athlete struct {
	Base
	FirstName  string `gorm:"not null"`
	LastName   string `gorm:"not null;index"`
	BirthDate  *time.Time
	Gender     string
	Sport      string
	GradYear   int
	HighRisk   bool
	ShowWeight bool
	BodyFat    float64
	Passcode   string
	OrgID      string `gorm:"index;size:36"`
}

// Name returns the athlete's name as "Last, First".
func (a *Athlete) Name() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	}
	return a.LastName + ", " + a.FirstName
}

// URL is the canonical dashboard path of the athlete.
func (a *Athlete) URL() string {
	return "/dashboard/athlete/" + a.ID
}

// BirthDateString formats the birth date for form inputs.
func (a *Athlete) BirthDateString() string {
	if a.BirthDate == nil {
		return ""
	}
	return a.BirthDate.Format(DateLayout)
}

// Weight is a single measurement taken for an athlete.
type Weight struct {
	Base
	AthleteID string `gorm:"index;size:36;not null"`
	Weight    float64
	Type      string
	Date      *time.Time `gorm:"column:weighed_on"`
	Time      string     `gorm:"column:weighed_at"`
	BodyFat   float64
}

// WeightSummary is the weight and type projection of a Weight.
type WeightSummary struct {
	Weight float64
	Type   string
}

// All lists every model for schema migration.
func All() []any {
	return []any{&User{}, &Org{}, &Athlete{}, &Weight{}}
}
