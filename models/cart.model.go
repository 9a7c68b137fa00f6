package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one (user, book) row. PriceAtAddition snapshots the catalog
// price at the moment the book first entered the cart and is never repriced.
type CartItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index;uniqueIndex:idx_cart_user_book" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"-"`
	BookID          uint            `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"book_id"`
	Book            Book            `gorm:"foreignKey:BookID" json:"book"`
	Quantity        int             `gorm:"not null;default:1" json:"quantity"`
	PriceAtAddition decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_at_addition"`
	AddedAt         time.Time       `gorm:"autoCreateTime" json:"added_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.PriceAtAddition.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

type CartItemResponse struct {
	ID         uint            `json:"id"`
	BookID     uint            `json:"book_id"`
	BookName   string          `json:"book_name"`
	AuthorName string          `json:"author_name"`
	ImagePath  string          `json:"image_path"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

func FilterCartItemRecord(ci *CartItem) CartItemResponse {
	return CartItemResponse{
		ID:         ci.ID,
		BookID:     ci.BookID,
		BookName:   ci.Book.Name,
		AuthorName: ci.Book.AuthorName,
		ImagePath:  ci.Book.ImagePath,
		Price:      ci.PriceAtAddition,
		Quantity:   ci.Quantity,
		Subtotal:   ci.Subtotal(),
	}
}

type AddToCartInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	BookID   uint   `json:"book_id" form:"book_id" validate:"required"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" form:"quantity" validate:"required"`
}
