package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"booknest/apperr"
	"booknest/models"
	"booknest/store"
)

type FeedbackService struct {
	feedbacks store.FeedbackStore
	orders    store.OrderStore
	users     store.UserStore
	log       *zap.Logger
}

func NewFeedbackService(feedbacks store.FeedbackStore, orders store.OrderStore, users store.UserStore, log *zap.Logger) *FeedbackService {
	return &FeedbackService{feedbacks: feedbacks, orders: orders, users: users, log: log}
}

// Create enforces the one-feedback-per-delivered-order rule at the
// application level, on top of the unique index on order_id.
func (s *FeedbackService) Create(ctx context.Context, input *models.CreateFeedbackInput) (*models.Feedback, error) {
	order, err := s.orders.FindByID(ctx, input.OrderID)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up order", err)
	}

	user, err := s.users.FindByUsername(ctx, input.Username)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}

	exists, err := s.feedbacks.ExistsByOrder(ctx, order.ID)
	if err != nil {
		return nil, apperr.Internal("failed to check feedback", err)
	}
	if exists {
		return nil, apperr.Conflict("Feedback already submitted for this order")
	}

	if order.Status != models.OrderStatusDelivered {
		return nil, apperr.InvalidState("Can only submit feedback for delivered orders")
	}

	feedback := &models.Feedback{
		UserID:            user.ID,
		OrderID:           order.ID,
		Rating:            input.Rating,
		Message:           input.Message,
		DeliveryConfirmed: input.DeliveryConfirmed,
		FeedbackDate:      time.Now(),
	}

	if err := s.feedbacks.Create(ctx, feedback); err != nil {
		return nil, apperr.Internal("failed to create feedback", err)
	}

	s.log.Info("feedback created", zap.Uint("order_id", order.ID), zap.Int("rating", input.Rating))
	return feedback, nil
}

func (s *FeedbackService) HasFeedback(ctx context.Context, orderID uint) (bool, error) {
	exists, err := s.feedbacks.ExistsByOrder(ctx, orderID)
	if err != nil {
		return false, apperr.Internal("failed to check feedback", err)
	}
	return exists, nil
}

func (s *FeedbackService) GetByOrder(ctx context.Context, orderID uint) (*models.Feedback, error) {
	feedback, err := s.feedbacks.FindByOrder(ctx, orderID)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("Feedback not found for order: %d", orderID)
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up feedback", err)
	}
	return feedback, nil
}

func (s *FeedbackService) GetAll(ctx context.Context) ([]models.Feedback, error) {
	feedbacks, err := s.feedbacks.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list feedbacks", err)
	}
	return feedbacks, nil
}

func (s *FeedbackService) GetByUser(ctx context.Context, username string) ([]models.Feedback, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}

	feedbacks, err := s.feedbacks.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal("failed to list feedbacks", err)
	}
	return feedbacks, nil
}

func (s *FeedbackService) Delete(ctx context.Context, id uint) error {
	feedback, err := s.feedbacks.FindByID(ctx, id)
	if err == store.ErrNotFound {
		return apperr.NotFound("Feedback not found")
	}
	if err != nil {
		return apperr.Internal("failed to look up feedback", err)
	}

	if err := s.feedbacks.Delete(ctx, feedback); err != nil {
		return apperr.Internal("failed to delete feedback", err)
	}
	return nil
}

// Stats summarizes the feedback table for the admin dashboard.
type FeedbackStats struct {
	Total         int     `json:"total"`
	Verified      int     `json:"verified"`
	AverageRating float64 `json:"average_rating"`
}

func (s *FeedbackService) GetStats(ctx context.Context) (*FeedbackStats, error) {
	feedbacks, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &FeedbackStats{Total: len(feedbacks)}
	if len(feedbacks) == 0 {
		return stats, nil
	}

	sum := 0
	for i := range feedbacks {
		sum += feedbacks[i].Rating
		if feedbacks[i].DeliveryConfirmed {
			stats.Verified++
		}
	}
	stats.AverageRating = float64(sum) / float64(len(feedbacks))
	return stats, nil
}
