package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"booknest/apperr"
	"booknest/models"
	"booknest/store"
)

type CartService struct {
	carts store.CartStore
	users store.UserStore
	books store.BookStore
	log   *zap.Logger
}

func NewCartService(carts store.CartStore, users store.UserStore, books store.BookStore, log *zap.Logger) *CartService {
	return &CartService{carts: carts, users: users, books: books, log: log}
}

func (s *CartService) resolveUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}
	return user, nil
}

// AddToCart increments an existing (user, book) row by one, keeping its
// price-at-addition, or inserts a quantity-1 row snapshotting the book's
// current price.
func (s *CartService) AddToCart(ctx context.Context, username string, bookID uint) (*models.CartItemResponse, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	book, err := s.books.FindByID(ctx, bookID)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("Book not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up book", err)
	}

	if !book.Available {
		return nil, apperr.InvalidState("Book is not available")
	}

	item, err := s.carts.AddOrIncrement(ctx, user.ID, book)
	if err != nil {
		return nil, apperr.Internal("failed to add to cart", err)
	}

	resp := models.FilterCartItemRecord(item)
	return &resp, nil
}

func (s *CartService) GetCart(ctx context.Context, username string) ([]models.CartItemResponse, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	items, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load cart", err)
	}

	responses := make([]models.CartItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, models.FilterCartItemRecord(&items[i]))
	}
	return responses, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, cartItemID uint, quantity int) (*models.CartItemResponse, error) {
	if quantity <= 0 {
		return nil, apperr.InvalidState("Quantity must be greater than 0")
	}

	item, err := s.carts.FindByID(ctx, cartItemID)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("Cart item not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up cart item", err)
	}

	item.Quantity = quantity
	if err := s.carts.Save(ctx, item); err != nil {
		return nil, apperr.Internal("failed to update cart item", err)
	}

	resp := models.FilterCartItemRecord(item)
	return &resp, nil
}

func (s *CartService) Remove(ctx context.Context, cartItemID uint) error {
	item, err := s.carts.FindByID(ctx, cartItemID)
	if err == store.ErrNotFound {
		return apperr.NotFound("Cart item not found")
	}
	if err != nil {
		return apperr.Internal("failed to look up cart item", err)
	}

	if err := s.carts.Delete(ctx, item); err != nil {
		return apperr.Internal("failed to remove cart item", err)
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, username string) error {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}

	if err := s.carts.DeleteByUser(ctx, user.ID); err != nil {
		return apperr.Internal("failed to clear cart", err)
	}
	return nil
}

func (s *CartService) Count(ctx context.Context, username string) (int64, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return 0, err
	}

	count, err := s.carts.CountByUser(ctx, user.ID)
	if err != nil {
		return 0, apperr.Internal("failed to count cart items", err)
	}
	return count, nil
}

// Total is the decimal sum of price-at-addition times quantity over the cart.
func (s *CartService) Total(ctx context.Context, username string) (decimal.Decimal, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return decimal.Zero, err
	}

	items, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		return decimal.Zero, apperr.Internal("failed to load cart", err)
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}
	return total, nil
}
