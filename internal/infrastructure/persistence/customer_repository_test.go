package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGormDB creates a GORM DB backed by a mocked SQL connection
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func newMockCustomerRepository(t *testing.T) (*GormCustomerRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockGormDB(t)
	return NewGormCustomerRepository(gormDB), mock, mockDB
}

func TestNewGormCustomerRepository(t *testing.T) {
	repo, _, mockDB := newMockCustomerRepository(t)
	defer mockDB.Close()

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.db)
}

func TestGormCustomerRepository_FindByID(t *testing.T) {
	t.Run("finds existing customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "tax_id"}).
			AddRow(customerID, time.Now(), nil, "Maria Silva", "52998224725")

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnRows(rows)

		c, err := repo.FindByID(context.Background(), customerID)

		assert.NoError(t, err)
		assert.NotNil(t, c)
		assert.Equal(t, customerID, c.ID)
		assert.Equal(t, "Maria Silva", c.Name)
		assert.Equal(t, "52998224725", c.TaxID)
		assert.Nil(t, c.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByID(context.Background(), customerID)

		assert.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_FindByIDs(t *testing.T) {
	t.Run("returns nil for empty input", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customers, err := repo.FindByIDs(context.Background(), nil)

		assert.NoError(t, err)
		assert.Nil(t, customers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("finds matching customers", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		firstID := uuid.New()
		secondID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "tax_id"}).
			AddRow(firstID, time.Now(), nil, "Maria Silva", "52998224725").
			AddRow(secondID, time.Now(), nil, "João Santos", "11144477735")

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id IN \(\$1,\$2\)`).
			WithArgs(firstID, secondID).
			WillReturnRows(rows)

		customers, err := repo.FindByIDs(context.Background(), []uuid.UUID{firstID, secondID})

		assert.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Maria Silva", customers[0].Name)
		assert.Equal(t, "João Santos", customers[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_FindAll(t *testing.T) {
	repo, mock, mockDB := newMockCustomerRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "tax_id"}).
		AddRow(uuid.New(), time.Now(), nil, "Ana Costa", "52998224725").
		AddRow(uuid.New(), time.Now(), nil, "Bruno Lima", "11144477735")

	mock.ExpectQuery(`SELECT \* FROM "customers" ORDER BY name asc`).
		WillReturnRows(rows)

	customers, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Ana Costa", customers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCustomerRepository_Delete(t *testing.T) {
	t.Run("deletes existing customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		mock.ExpectExec(`DELETE FROM "customers" WHERE id = \$1`).
			WithArgs(customerID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), customerID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		mock.ExpectExec(`DELETE FROM "customers" WHERE id = \$1`).
			WithArgs(customerID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), customerID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_ExistsByTaxID(t *testing.T) {
	t.Run("returns true when tax id is taken", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE tax_id = \$1`).
			WithArgs("52998224725").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByTaxID(context.Background(), "52998224725")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when tax id is free", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE tax_id = \$1`).
			WithArgs("52998224725").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByTaxID(context.Background(), "52998224725")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
