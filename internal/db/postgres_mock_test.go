package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	apperrors "turfzone/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var turfColumns = []string{"id", "name", "address", "hourly_rate", "operating_hours", "category"}

func withMockStore(t *testing.T, fn func(*PostgresStore, sqlmock.Sqlmock)) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	store := &PostgresStore{sqlStore: newSQLStore(sqlx.NewDb(db, "postgres"))}
	fn(store, mock)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestPostgresStore_Mocked(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, name, address, hourly_rate, operating_hours, category FROM turfs WHERE category = $1`)

	t.Run("ListByCategory maps rows verbatim", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			rows := sqlmock.NewRows(turfColumns).
				AddRow(7, "Ground Zero Arena", "7 Outer Ring Road", []byte("950.50"), "05:00 - 22:00", "Football").
				AddRow(3, "Star Turf Club", "12 MG Road", []byte("1200.00"), "06:00 - 23:00", "Football")
			mock.ExpectQuery(query).WithArgs("Football").WillReturnRows(rows)

			turfs, err := store.ListByCategory(context.Background(), "Football")
			require.NoError(t, err)
			require.Len(t, turfs, 2)

			assert.EqualValues(t, 7, turfs[0].ID)
			assert.Equal(t, "Ground Zero Arena", turfs[0].Name)
			assert.Equal(t, "7 Outer Ring Road", turfs[0].Address)
			assert.True(t, decimal.RequireFromString("950.50").Equal(turfs[0].PricePerHour))
			assert.Equal(t, "05:00 - 22:00", turfs[0].OperatingHours)
			assert.Equal(t, "Football", turfs[0].Category)
			assert.Equal(t, "Star Turf Club", turfs[1].Name, "store order is kept")
		})
	})

	t.Run("ListByCategory no rows", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			mock.ExpectQuery(query).WithArgs("Tennis").WillReturnRows(sqlmock.NewRows(turfColumns))

			turfs, err := store.ListByCategory(context.Background(), "Tennis")
			require.NoError(t, err)
			assert.NotNil(t, turfs)
			assert.Empty(t, turfs)
		})
	})

	t.Run("ListByCategory query error", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			mock.ExpectQuery(query).WithArgs("Football").WillReturnError(errors.New("connection reset by peer"))

			turfs, err := store.ListByCategory(context.Background(), "Football")
			assert.Nil(t, turfs)
			assert.True(t, apperrors.IsLookupError(err))
			assert.Contains(t, err.Error(), "connection reset by peer")
		})
	})

	t.Run("Seed commits inserts", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			mock.ExpectBegin()
			for range DemoTurfs() {
				mock.ExpectExec("INSERT INTO turfs").WillReturnResult(sqlmock.NewResult(1, 1))
			}
			mock.ExpectCommit()

			n, err := store.Seed(context.Background(), DemoTurfs())
			require.NoError(t, err)
			assert.EqualValues(t, len(DemoTurfs()), n)
		})
	})

	t.Run("Seed rolls back on error", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO turfs").WillReturnError(errors.New("permission denied"))
			mock.ExpectRollback()

			_, err := store.Seed(context.Background(), DemoTurfs())
			var storeErr *apperrors.StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, "seed", storeErr.Op)
		})
	})
}

func TestPostgresStore_SchemaOnFirstUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := &PostgresStore{sqlStore: newSQLStore(sqlx.NewDb(db, "postgres"))}
	store.sqlStore.migrate = store.createSchema
	query := regexp.QuoteMeta(`SELECT id, name, address, hourly_rate, operating_hours, category FROM turfs WHERE category = $1`)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS turfs").WillReturnError(errors.New("connection refused"))
	_, err = store.ListByCategory(context.Background(), "Football")
	assert.True(t, apperrors.IsLookupError(err))

	// A failed migration is retried by the next call, and only until it succeeds.
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS turfs").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_turfs_category").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(query).WithArgs("Football").WillReturnRows(sqlmock.NewRows(turfColumns))
	mock.ExpectQuery(query).WithArgs("Cricket").WillReturnRows(sqlmock.NewRows(turfColumns))

	_, err = store.ListByCategory(context.Background(), "Football")
	require.NoError(t, err)
	_, err = store.ListByCategory(context.Background(), "Cricket")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UnreachableIsLazy(t *testing.T) {
	store, err := NewPostgresStore("postgres://u:p@127.0.0.1:1/turfzone?sslmode=disable&connect_timeout=2")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	_, err = store.ListByCategory(ctx, "Football")
	require.Error(t, err)
	assert.True(t, apperrors.IsLookupError(err))
	assert.Error(t, store.Ping(ctx))
}
