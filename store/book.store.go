package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booknest/models"
)

type BookStore interface {
	Create(ctx context.Context, book *models.Book) error
	FindByID(ctx context.Context, id uint) (*models.Book, error)
	FindByBookID(ctx context.Context, bookID string) (*models.Book, error)
	FindAll(ctx context.Context) ([]models.Book, error)
	FindAvailable(ctx context.Context) ([]models.Book, error)
	Search(ctx context.Context, q models.BookQuery) ([]models.Book, error)
	ExistsByBookID(ctx context.Context, bookID string) (bool, error)
	Save(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, book *models.Book) error
}

type bookStore struct {
	db *gorm.DB
}

func NewBookStore(db *gorm.DB) BookStore {
	return &bookStore{db: db}
}

func (s *bookStore) Create(ctx context.Context, book *models.Book) error {
	return s.db.WithContext(ctx).Create(book).Error
}

func (s *bookStore) FindByID(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	err := s.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *bookStore) FindByBookID(ctx context.Context, bookID string) (*models.Book, error) {
	var book models.Book
	err := s.db.WithContext(ctx).Where("book_id = ?", bookID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *bookStore) FindAll(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := s.db.WithContext(ctx).Find(&books).Error
	return books, err
}

func (s *bookStore) FindAvailable(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := s.db.WithContext(ctx).Where("available = ?", true).Find(&books).Error
	return books, err
}

// Search composes the optional name filter and price sort; with neither set
// it degenerates to FindAll.
func (s *bookStore) Search(ctx context.Context, q models.BookQuery) ([]models.Book, error) {
	tx := s.db.WithContext(ctx).Model(&models.Book{})

	if q.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+q.Search+"%")
	}

	switch q.Sort {
	case models.SortPriceAsc:
		tx = tx.Order("price ASC")
	case models.SortPriceDesc:
		tx = tx.Order("price DESC")
	}

	var books []models.Book
	err := tx.Find(&books).Error
	return books, err
}

func (s *bookStore) ExistsByBookID(ctx context.Context, bookID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Book{}).Where("book_id = ?", bookID).Count(&count).Error
	return count > 0, err
}

func (s *bookStore) Save(ctx context.Context, book *models.Book) error {
	return s.db.WithContext(ctx).Save(book).Error
}

func (s *bookStore) Delete(ctx context.Context, book *models.Book) error {
	return s.db.WithContext(ctx).Delete(book).Error
}
