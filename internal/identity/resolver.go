package identity

import (
	"context"
	"errors"

	"github.com/liftlog-dev/liftlog/internal/models"
	"gorm.io/gorm"
)

// Resolver maps external auth subject identifiers to internal user records.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve returns the user provisioned for the given subject, or
// (nil, nil) when no such user exists yet. Absence is not an error:
// callers treat an unknown subject as "user has no data".
func (r *Resolver) Resolve(ctx context.Context, externalID string) (*models.User, error) {
	if externalID == "" {
		return nil, errors.New("external ID is required")
	}

	var user models.User

	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Provision creates the internal record for a subject on first
// authenticated access. If a record for user.ExternalID already exists
// it is returned unchanged.
func (r *Resolver) Provision(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := r.Resolve(ctx, user.ExternalID)

	if err != nil {
		return nil, err
	}

	if existing != nil {
		return existing, nil
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}
