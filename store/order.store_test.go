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

func checkoutOrder() *models.Order {
	return &models.Order{
		UserID: 1,
		OrderItems: []models.OrderItem{
			{BookID: 3, Quantity: 2, Price: decimal.RequireFromString("10.00")},
			{BookID: 4, Quantity: 1, Price: decimal.RequireFromString("5.50")},
		},
		TotalAmount:        decimal.RequireFromString("25.50"),
		Status:             models.OrderStatusProcessing,
		DeliveryAddress:    "12 Lake Road",
		DeliveryCity:       "Colombo",
		DeliveryPostalCode: "00100",
		DeliveryPhone:      "0771234567",
		CardNumber:         "****1111",
		CardHolderName:     "Alice Perera",
		OrderDate:          time.Now(),
	}
}

func TestCreateFromCartCommitsHeaderItemsAndCartDelete(t *testing.T) {
	db, mock := newTestDB(t)
	orders := NewOrderStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100).AddRow(101))
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE user_id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	order := checkoutOrder()
	err := orders.CreateFromCart(context.Background(), order, 1)
	require.NoError(t, err)

	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, uint(42), order.OrderItems[0].OrderID)
	assert.Equal(t, uint(42), order.OrderItems[1].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFromCartRollsBackWhenItemInsertFails(t *testing.T) {
	db, mock := newTestDB(t)
	orders := NewOrderStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err := orders.CreateFromCart(context.Background(), checkoutOrder(), 1)
	require.Error(t, err)

	// The cart delete never ran; the rollback covers the header insert too.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFromCartRollsBackWhenCartDeleteFails(t *testing.T) {
	db, mock := newTestDB(t)
	orders := NewOrderStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100).AddRow(101))
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE user_id = \$1`).
		WithArgs(1).
		WillReturnError(errors.New("delete failed"))
	mock.ExpectRollback()

	err := orders.CreateFromCart(context.Background(), checkoutOrder(), 1)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderFindByIDTranslatesNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	orders := NewOrderStore(db)

	mock.ExpectQuery(`SELECT .* FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := orders.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
