package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockSalesChannelRepository creates a GormSalesChannelRepository with a mocked SQL connection
func newMockSalesChannelRepository(t *testing.T) (*GormSalesChannelRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormSalesChannelRepository(gormDB), mock, mockDB
}

func TestNewGormSalesChannelRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormSalesChannelRepository_FindByID(t *testing.T) {
	t.Run("finds existing sales channel", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		channelID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "description", "is_disabled"}).
			AddRow(channelID, "Webshop", "Default storefront channel", false)

		mock.ExpectQuery(`SELECT \* FROM "sales_channels" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(channelID, 1).
			WillReturnRows(rows)

		ch, err := repo.FindByID(context.Background(), channelID)

		assert.NoError(t, err)
		assert.NotNil(t, ch)
		assert.Equal(t, channelID, ch.ID)
		assert.Equal(t, "Webshop", ch.Name)
		assert.False(t, ch.IsDisabled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for non-existent channel", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		channelID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "sales_channels" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(channelID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		ch, err := repo.FindByID(context.Background(), channelID)

		assert.Error(t, err)
		assert.Nil(t, ch)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSalesChannelRepository_FindByName(t *testing.T) {
	t.Run("finds channel by name", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		channelID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "description", "is_disabled"}).
			AddRow(channelID, "Mobile App", "", true)

		mock.ExpectQuery(`SELECT \* FROM "sales_channels" WHERE name = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("Mobile App", 1).
			WillReturnRows(rows)

		ch, err := repo.FindByName(context.Background(), "Mobile App")

		assert.NoError(t, err)
		assert.NotNil(t, ch)
		assert.Equal(t, "Mobile App", ch.Name)
		assert.True(t, ch.IsDisabled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown name", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "sales_channels" WHERE name = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("Nope", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		ch, err := repo.FindByName(context.Background(), "Nope")

		assert.Error(t, err)
		assert.Nil(t, ch)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSalesChannelRepository_FindAll(t *testing.T) {
	t.Run("applies search and pagination", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "description", "is_disabled"}).
			AddRow(uuid.New(), "Webshop EU", "", false).
			AddRow(uuid.New(), "Webshop US", "", false)

		mock.ExpectQuery(`SELECT \* FROM "sales_channels" WHERE \(name ILIKE \$1 OR description ILIKE \$2\) ORDER BY created_at DESC LIMIT .*`).
			WithArgs("%Webshop%", "%Webshop%", 50).
			WillReturnRows(rows)

		selector := shared.Selector{Search: "Webshop"}
		config := shared.FindConfig{Take: 50}

		channels, err := repo.FindAll(context.Background(), selector, config)

		assert.NoError(t, err)
		assert.Len(t, channels, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to default sort field for unknown column", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "description", "is_disabled"})

		mock.ExpectQuery(`SELECT \* FROM "sales_channels" ORDER BY created_at ASC LIMIT .*`).
			WithArgs(10).
			WillReturnRows(rows)

		config := shared.FindConfig{Take: 10, OrderBy: "evil; DROP TABLE", OrderDir: "asc"}

		channels, err := repo.FindAll(context.Background(), shared.Selector{}, config)

		assert.NoError(t, err)
		assert.Empty(t, channels)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSalesChannelRepository_Count(t *testing.T) {
	t.Run("counts with filter", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "sales_channels" WHERE is_disabled = \$1`).
			WithArgs(false).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		selector := shared.Selector{Filters: map[string]any{"is_disabled": false}}

		count, err := repo.Count(context.Background(), selector)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSalesChannelRepository_ExistsByName(t *testing.T) {
	t.Run("returns true when name exists", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "sales_channels" WHERE name = \$1`).
			WithArgs("Webshop").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByName(context.Background(), "Webshop")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when name does not exist", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "sales_channels" WHERE name = \$1`).
			WithArgs("Ghost").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByName(context.Background(), "Ghost")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSalesChannelRepository_Delete(t *testing.T) {
	t.Run("deletes existing channel", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		channelID := uuid.New()

		mock.ExpectExec(`DELETE FROM "sales_channels" WHERE id = \$1`).
			WithArgs(channelID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), channelID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockSalesChannelRepository(t)
		defer mockDB.Close()

		channelID := uuid.New()

		mock.ExpectExec(`DELETE FROM "sales_channels" WHERE id = \$1`).
			WithArgs(channelID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), channelID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
