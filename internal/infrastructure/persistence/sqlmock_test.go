package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techzone/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormUserRepository_SearchSQL(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewGormUserRepository(db)

	t.Run("search matches email and name case-insensitively", func(t *testing.T) {
		userID := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "created_at", "updated_at", "version",
			"email", "password_hash", "first_name", "last_name", "phone", "role", "is_active",
		}).AddRow(userID, now, now, 1, "jane@example.com", "hash", "Jane", "Doe", "", "customer", true)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email ILIKE \$1 OR first_name ILIKE \$2 OR last_name ILIKE \$3`).
			WithArgs("%jane%", "%jane%", "%jane%").
			WillReturnRows(rows)

		filter := shared.DefaultFilter()
		filter.Search = "jane"

		users, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "jane@example.com", users[0].Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exists by email issues count query", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
			WithArgs("jane@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_SearchSQL(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewGormProductRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE name ILIKE \$1 OR description ILIKE \$2`).
		WithArgs("%laptop%", "%laptop%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	filter := shared.DefaultFilter()
	filter.Search = "laptop"

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
