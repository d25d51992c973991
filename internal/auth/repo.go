package auth

import (
	"context"

	"github.com/theegirlieshub/girlieshub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository loads back-office users.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUsername loads one admin user row.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var row models.AdminUser
	if err := r.db.WithContext(ctx).First(&row, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
