package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book catalog entry. BookID and Name are fixed after creation.
type Book struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	BookID      string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"book_id"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Description string          `gorm:"type:varchar(2000)" json:"description"`
	AuthorName  string          `gorm:"type:varchar(100);not null" json:"author_name"`
	ImagePath   string          `gorm:"type:varchar(500)" json:"image_path"`
	Available   bool            `gorm:"not null;default:true" json:"available"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// CreateBookInput arrives as a multipart form, the image handled separately.
type CreateBookInput struct {
	BookID      string          `form:"book_id" validate:"required,min=3,max=50"`
	Name        string          `form:"name" validate:"required,min=2,max=200"`
	Price       decimal.Decimal `form:"price" validate:"required"`
	Description string          `form:"description" validate:"max=2000"`
	AuthorName  string          `form:"author_name" validate:"required,min=2,max=100"`
}

// UpdateBookInput omits book_id and name, which never change post-creation.
type UpdateBookInput struct {
	Price       decimal.Decimal `form:"price" validate:"required"`
	Description string          `form:"description" validate:"max=2000"`
	AuthorName  string          `form:"author_name" validate:"required,min=2,max=100"`
}

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// BookQuery composes the read-side search: optional case-insensitive name
// filter plus optional price sort, unsorted when neither is given.
type BookQuery struct {
	Search string
	Sort   string
}
