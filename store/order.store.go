package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booknest/models"
)

type OrderStore interface {
	// CreateFromCart persists the order header with its items and deletes the
	// user's cart rows in a single transaction. A failure on any write rolls
	// back everything, leaving the cart untouched.
	CreateFromCart(ctx context.Context, order *models.Order, userID uint) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	Save(ctx context.Context, order *models.Order) error
}

type orderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) OrderStore {
	return &orderStore{db: db}
}

func (s *orderStore) CreateFromCart(ctx context.Context, order *models.Order, userID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Create cascades into the OrderItems association.
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
}

func (s *orderStore) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").Preload("OrderItems.Book").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *orderStore) FindByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").Preload("OrderItems.Book").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (s *orderStore) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").Preload("OrderItems.Book").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (s *orderStore) Save(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Save(order).Error
}
