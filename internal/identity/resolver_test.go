package identity

import (
	"context"
	"fmt"
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	return db
}

func TestResolve_UnknownSubjectIsNotAnError(t *testing.T) {
	resolver := NewResolver(openTestDB(t))

	user, err := resolver.Resolve(context.Background(), "never-seen-subject")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestResolve_EmptySubject(t *testing.T) {
	resolver := NewResolver(openTestDB(t))

	_, err := resolver.Resolve(context.Background(), "")
	assert.Error(t, err)
}

func TestResolve_ExactlyOne(t *testing.T) {
	db := openTestDB(t)
	resolver := NewResolver(db)

	require.NoError(t, db.Create(&models.User{
		ExternalID:   "subject-42",
		Email:        "lifter@example.com",
		Name:         "Lifter",
		PasswordHash: "hash",
	}).Error)

	user, err := resolver.Resolve(context.Background(), "subject-42")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "lifter@example.com", user.Email)
}

func TestProvision_CreatesOnFirstAccess(t *testing.T) {
	db := openTestDB(t)
	resolver := NewResolver(db)
	ctx := context.Background()

	user, err := resolver.Provision(ctx, &models.User{
		ExternalID:   "subject-42",
		Email:        "lifter@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	resolved, err := resolver.Resolve(ctx, "subject-42")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestProvision_Idempotent(t *testing.T) {
	db := openTestDB(t)
	resolver := NewResolver(db)
	ctx := context.Background()

	first, err := resolver.Provision(ctx, &models.User{
		ExternalID:   "subject-42",
		Email:        "lifter@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	second, err := resolver.Provision(ctx, &models.User{
		ExternalID:   "subject-42",
		Email:        "other@example.com",
		PasswordHash: "other",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "lifter@example.com", second.Email)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
