package models

import (
	"time"
)

const (
	InquiryStatusPending = "Pending"
	InquiryStatusReplied = "Replied"
)

// OrderInquiry is a customer question about an order. A single admin reply
// moves it from Pending to Replied and stamps the reply time.
type OrderInquiry struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OrderID     uint       `gorm:"not null;index" json:"order_id"`
	Order       Order      `gorm:"foreignKey:OrderID" json:"-"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
	Message     string     `gorm:"type:varchar(500);not null" json:"message"`
	AdminReply  string     `gorm:"type:varchar(1000)" json:"admin_reply"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	InquiryDate time.Time  `gorm:"not null" json:"inquiry_date"`
	ReplyDate   *time.Time `json:"reply_date,omitempty"`
}

func (OrderInquiry) TableName() string {
	return "order_inquiries"
}

type CreateInquiryInput struct {
	OrderID  uint   `json:"order_id" form:"order_id" validate:"required"`
	Username string `json:"username" form:"username" validate:"required"`
	Message  string `json:"message" form:"message" validate:"required,max=500"`
}

type ReplyInquiryInput struct {
	InquiryID uint   `json:"inquiry_id" form:"inquiry_id" validate:"required"`
	Reply     string `json:"reply" form:"reply" validate:"required,max=1000"`
}
