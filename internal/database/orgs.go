package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/lildude/athletedash/internal/auth"
	"github.com/lildude/athletedash/internal/model"
	"gorm.io/gorm"
)

// ErrNoOrg is returned when a user does not administer any organization.
var ErrNoOrg = errors.New("user does not administer an organization")

// GetOrgName returns the name of the organization with the given id.
func GetOrgName(ctx context.Context, db *gorm.DB, id string) (string, error) {
	var org model.Org
	if err := db.WithContext(ctx).Select("id", "name").First(&org, "id = ?", id).Error; err != nil {
		return "", fmt.Errorf("getting org %q: %w", id, err)
	}
	return org.Name, nil
}

// GetOrgByAdmin returns the organization administered by userID.
func GetOrgByAdmin(ctx context.Context, db *gorm.DB, userID string) (*model.Org, error) {
	var org model.Org
	err := db.WithContext(ctx).Select("id", "name", "admin_id").First(&org, "admin_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOrg
	}
	if err != nil {
		return nil, fmt.Errorf("getting org for admin %q: %w", userID, err)
	}
	return &org, nil
}

// GetAdminUser returns the user with the given username, or nil if there is none.
func GetAdminUser(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %q: %w", username, err)
	}
	return &user, nil
}

// CreateAdmin creates a user and the organization it administers.
func CreateAdmin(ctx context.Context, db *gorm.DB, username, password, orgName string) (*model.User, *model.Org, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{Username: username, PasswordHash: hash}
	org := &model.Org{Name: orgName}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		org.AdminID = user.ID
		return tx.Create(org).Error
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating admin %q: %w", username, err)
	}
	return user, org, nil
}
