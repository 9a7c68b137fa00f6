package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booknest/models"
)

func TestAddOrIncrementBumpsExistingRow(t *testing.T) {
	db, mock := newTestDB(t)
	carts := NewCartStore(db)

	book := &models.Book{ID: 3, Price: decimal.RequireFromString("25.00")}

	// Existing row was added at 12.50; the increment must keep that price.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "cart_items" WHERE user_id = \$1 AND book_id = \$2.*FOR UPDATE`).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "book_id", "quantity", "price_at_addition", "added_at"}).
			AddRow(9, 1, 3, 2, "12.50", time.Now()))
	mock.ExpectExec(`UPDATE "cart_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item, err := carts.AddOrIncrement(context.Background(), 1, book)
	require.NoError(t, err)

	assert.Equal(t, 3, item.Quantity)
	assert.True(t, item.PriceAtAddition.Equal(decimal.RequireFromString("12.50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddOrIncrementInsertsFreshRow(t *testing.T) {
	db, mock := newTestDB(t)
	carts := NewCartStore(db)

	book := &models.Book{ID: 3, Price: decimal.RequireFromString("25.00")}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "cart_items" WHERE user_id = \$1 AND book_id = \$2.*FOR UPDATE`).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectCommit()

	item, err := carts.AddOrIncrement(context.Background(), 1, book)
	require.NoError(t, err)

	assert.Equal(t, uint(12), item.ID)
	assert.Equal(t, 1, item.Quantity)
	assert.True(t, item.PriceAtAddition.Equal(book.Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddOrIncrementRollsBackOnWriteError(t *testing.T) {
	db, mock := newTestDB(t)
	carts := NewCartStore(db)

	book := &models.Book{ID: 3, Price: decimal.RequireFromString("25.00")}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "cart_items" WHERE user_id = \$1 AND book_id = \$2.*FOR UPDATE`).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "cart_items"`).
		WillReturnError(errors.New("unique constraint violation"))
	mock.ExpectRollback()

	_, err := carts.AddOrIncrement(context.Background(), 1, book)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartFindByIDTranslatesNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	carts := NewCartStore(db)

	mock.ExpectQuery(`SELECT .* FROM "cart_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := carts.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByUserRemovesAllRows(t *testing.T) {
	db, mock := newTestDB(t)
	carts := NewCartStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE user_id = \$1`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := carts.DeleteByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
