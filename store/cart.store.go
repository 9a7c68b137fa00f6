package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"booknest/models"
)

type CartStore interface {
	// AddOrIncrement bumps the quantity of an existing (user, book) row by one
	// keeping its price-at-addition, or inserts a fresh row with quantity 1 at
	// the given price. The check and the write run in one transaction so two
	// concurrent adds cannot produce duplicate rows.
	AddOrIncrement(ctx context.Context, userID uint, book *models.Book) (*models.CartItem, error)
	FindByID(ctx context.Context, id uint) (*models.CartItem, error)
	FindByUser(ctx context.Context, userID uint) ([]models.CartItem, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Save(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, item *models.CartItem) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type cartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) CartStore {
	return &cartStore{db: db}
}

func (s *cartStore) AddOrIncrement(ctx context.Context, userID uint, book *models.Book) (*models.CartItem, error) {
	var item models.CartItem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND book_id = ?", userID, book.ID).
			First(&item).Error

		switch {
		case err == nil:
			item.Quantity++
			return tx.Save(&item).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				UserID:          userID,
				BookID:          book.ID,
				Quantity:        1,
				PriceAtAddition: book.Price,
			}
			return tx.Create(&item).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	item.Book = *book
	return &item, nil
}

func (s *cartStore) FindByID(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).Preload("Book").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *cartStore) FindByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).Preload("Book").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&items).Error
	return items, err
}

func (s *cartStore) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *cartStore) Save(ctx context.Context, item *models.CartItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *cartStore) Delete(ctx context.Context, item *models.CartItem) error {
	return s.db.WithContext(ctx).Delete(item).Error
}

func (s *cartStore) DeleteByUser(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
