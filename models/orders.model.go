package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusProcessing = "Order Processing"
	OrderStatusOnTheWay   = "On the Way"
	OrderStatusDelivered  = "Delivered"
)

// Order header. Items cascade-delete with the header; CardNumber only ever
// holds the masked form, the full number is never persisted.
type Order struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	UserID             uint            `gorm:"not null;index" json:"user_id"`
	User               User            `gorm:"foreignKey:UserID" json:"-"`
	OrderItems         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order_items"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Status             string          `gorm:"type:varchar(50);not null;default:'Order Processing'" json:"status"`
	DeliveryAddress    string          `gorm:"type:varchar(500);not null" json:"delivery_address"`
	DeliveryCity       string          `gorm:"type:varchar(100);not null" json:"delivery_city"`
	DeliveryPostalCode string          `gorm:"type:varchar(20);not null" json:"delivery_postal_code"`
	DeliveryPhone      string          `gorm:"type:varchar(20);not null" json:"delivery_phone"`
	CardNumber         string          `gorm:"type:varchar(20);not null" json:"card_number"`
	CardHolderName     string          `gorm:"type:varchar(100);not null" json:"card_holder_name"`
	OrderDate          time.Time       `gorm:"not null" json:"order_date"`
	DeliveryDate       *time.Time      `json:"delivery_date,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is an immutable line item snapshotted from the cart at checkout.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	BookID    uint            `gorm:"not null;index" json:"book_id"`
	Book      Book            `gorm:"foreignKey:BookID" json:"book"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type CreateOrderInput struct {
	Username           string `json:"username" form:"username" validate:"required"`
	DeliveryAddress    string `json:"delivery_address" form:"delivery_address" validate:"required,max=500"`
	DeliveryCity       string `json:"delivery_city" form:"delivery_city" validate:"required,max=100"`
	DeliveryPostalCode string `json:"delivery_postal_code" form:"delivery_postal_code" validate:"required,max=20"`
	DeliveryPhone      string `json:"delivery_phone" form:"delivery_phone" validate:"required,max=20"`
	CardNumber         string `json:"card_number" form:"card_number" validate:"required,min=12,max=19,numeric"`
	CardHolderName     string `json:"card_holder_name" form:"card_holder_name" validate:"required,max=100"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" form:"status" validate:"required,max=50"`
}
