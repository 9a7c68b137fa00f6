package services

import (
	"context"
	"mime/multipart"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"booknest/apperr"
	"booknest/cache"
	"booknest/models"
	"booknest/store"
	"booknest/utils"
)

type BookService struct {
	books  store.BookStore
	images *utils.ImageStore
	cache  *cache.BookCache
	log    *zap.Logger
}

func NewBookService(books store.BookStore, images *utils.ImageStore, bookCache *cache.BookCache, log *zap.Logger) *BookService {
	return &BookService{books: books, images: images, cache: bookCache, log: log}
}

func (s *BookService) Create(ctx context.Context, input *models.CreateBookInput, image *multipart.FileHeader) (*models.Book, error) {
	taken, err := s.books.ExistsByBookID(ctx, input.BookID)
	if err != nil {
		return nil, apperr.Internal("failed to check book id", err)
	}
	if taken {
		return nil, apperr.Conflict("Book ID already exists")
	}

	if !input.Price.IsPositive() {
		return nil, apperr.InvalidState("Price must be greater than 0")
	}

	book := &models.Book{
		BookID:      input.BookID,
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		AuthorName:  input.AuthorName,
		Available:   true,
	}

	if image != nil {
		path, err := s.images.Save(image)
		if err != nil {
			return nil, apperr.InvalidState("Failed to save image: %v", err)
		}
		book.ImagePath = path
	}

	if err := s.books.Create(ctx, book); err != nil {
		return nil, apperr.Internal("failed to create book", err)
	}

	s.cache.Invalidate(ctx)
	s.log.Info("book created", zap.String("book_id", book.BookID), zap.Uint("id", book.ID))
	return book, nil
}

func (s *BookService) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("Book not found with id: %d", id)
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up book", err)
	}
	return book, nil
}

func (s *BookService) GetByBookID(ctx context.Context, bookID string) (*models.Book, error) {
	book, err := s.books.FindByBookID(ctx, bookID)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("Book not found with bookId: %s", bookID)
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up book", err)
	}
	return book, nil
}

// GetAll serves the full catalog, from the redis cache when warm.
func (s *BookService) GetAll(ctx context.Context) ([]models.Book, error) {
	if books, ok := s.cache.GetList(ctx); ok {
		return books, nil
	}

	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list books", err)
	}

	s.cache.SetList(ctx, books)
	return books, nil
}

func (s *BookService) GetAvailable(ctx context.Context) ([]models.Book, error) {
	books, err := s.books.FindAvailable(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list available books", err)
	}
	return books, nil
}

func (s *BookService) Search(ctx context.Context, q models.BookQuery) ([]models.Book, error) {
	books, err := s.books.Search(ctx, q)
	if err != nil {
		return nil, apperr.Internal("failed to search books", err)
	}
	return books, nil
}

// Update leaves book_id and name untouched; replacing the image removes the
// old file best-effort.
func (s *BookService) Update(ctx context.Context, id uint, input *models.UpdateBookInput, image *multipart.FileHeader) (*models.Book, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !input.Price.IsPositive() {
		return nil, apperr.InvalidState("Price must be greater than 0")
	}

	book.Price = input.Price
	book.Description = input.Description
	book.AuthorName = input.AuthorName

	if image != nil {
		path, err := s.images.Save(image)
		if err != nil {
			return nil, apperr.InvalidState("Failed to save image: %v", err)
		}
		s.images.Delete(book.ImagePath)
		book.ImagePath = path
	}

	if err := s.books.Save(ctx, book); err != nil {
		return nil, apperr.Internal("failed to update book", err)
	}

	s.cache.Invalidate(ctx)
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.images.Delete(book.ImagePath)

	if err := s.books.Delete(ctx, book); err != nil {
		return apperr.Internal("failed to delete book", err)
	}

	s.cache.Invalidate(ctx)
	s.log.Info("book deleted", zap.Uint("id", id))
	return nil
}

func (s *BookService) SetAvailability(ctx context.Context, id uint, available bool) (*models.Book, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Available = available
	if err := s.books.Save(ctx, book); err != nil {
		return nil, apperr.Internal("failed to update availability", err)
	}

	s.cache.Invalidate(ctx)
	return book, nil
}

// ParsePrice converts a form price string to a decimal.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperr.InvalidState("Invalid price: %s", raw)
	}
	return price, nil
}
