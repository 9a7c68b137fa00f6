package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booknest/models"
)

type InquiryStore interface {
	Create(ctx context.Context, inquiry *models.OrderInquiry) error
	FindByID(ctx context.Context, id uint) (*models.OrderInquiry, error)
	FindByOrder(ctx context.Context, orderID uint) ([]models.OrderInquiry, error)
	FindAll(ctx context.Context) ([]models.OrderInquiry, error)
	FindByStatus(ctx context.Context, status string) ([]models.OrderInquiry, error)
	Save(ctx context.Context, inquiry *models.OrderInquiry) error
}

type inquiryStore struct {
	db *gorm.DB
}

func NewInquiryStore(db *gorm.DB) InquiryStore {
	return &inquiryStore{db: db}
}

func (s *inquiryStore) Create(ctx context.Context, inquiry *models.OrderInquiry) error {
	return s.db.WithContext(ctx).Create(inquiry).Error
}

func (s *inquiryStore) FindByID(ctx context.Context, id uint) (*models.OrderInquiry, error) {
	var inquiry models.OrderInquiry
	err := s.db.WithContext(ctx).First(&inquiry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (s *inquiryStore) FindByOrder(ctx context.Context, orderID uint) ([]models.OrderInquiry, error) {
	var inquiries []models.OrderInquiry
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Order("inquiry_date DESC").Find(&inquiries).Error
	return inquiries, err
}

func (s *inquiryStore) FindAll(ctx context.Context) ([]models.OrderInquiry, error) {
	var inquiries []models.OrderInquiry
	err := s.db.WithContext(ctx).Order("inquiry_date DESC").Find(&inquiries).Error
	return inquiries, err
}

func (s *inquiryStore) FindByStatus(ctx context.Context, status string) ([]models.OrderInquiry, error) {
	var inquiries []models.OrderInquiry
	err := s.db.WithContext(ctx).Where("status = ?", status).Order("inquiry_date DESC").Find(&inquiries).Error
	return inquiries, err
}

func (s *inquiryStore) Save(ctx context.Context, inquiry *models.OrderInquiry) error {
	return s.db.WithContext(ctx).Save(inquiry).Error
}
