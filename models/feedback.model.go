package models

import (
	"time"
)

// Feedback is written once per delivered order and never mutated.
type Feedback struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	User              User      `gorm:"foreignKey:UserID" json:"-"`
	OrderID           uint      `gorm:"not null;uniqueIndex" json:"order_id"`
	Order             Order     `gorm:"foreignKey:OrderID" json:"-"`
	Rating            int       `gorm:"not null" json:"rating"`
	Message           string    `gorm:"type:varchar(1000);not null" json:"message"`
	DeliveryConfirmed bool      `gorm:"not null;default:false" json:"delivery_confirmed"`
	FeedbackDate      time.Time `gorm:"not null" json:"feedback_date"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

type CreateFeedbackInput struct {
	OrderID           uint   `json:"order_id" form:"order_id" validate:"required"`
	Username          string `json:"username" form:"username" validate:"required"`
	Rating            int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
	Message           string `json:"message" form:"message" validate:"required,max=1000"`
	DeliveryConfirmed bool   `json:"delivery_confirmed" form:"delivery_confirmed"`
}
