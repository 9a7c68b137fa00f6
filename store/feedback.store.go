package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booknest/models"
)

type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByID(ctx context.Context, id uint) (*models.Feedback, error)
	FindByOrder(ctx context.Context, orderID uint) (*models.Feedback, error)
	ExistsByOrder(ctx context.Context, orderID uint) (bool, error)
	FindAll(ctx context.Context) ([]models.Feedback, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Feedback, error)
	Delete(ctx context.Context, feedback *models.Feedback) error
}

type feedbackStore struct {
	db *gorm.DB
}

func NewFeedbackStore(db *gorm.DB) FeedbackStore {
	return &feedbackStore{db: db}
}

func (s *feedbackStore) Create(ctx context.Context, feedback *models.Feedback) error {
	return s.db.WithContext(ctx).Create(feedback).Error
}

func (s *feedbackStore) FindByID(ctx context.Context, id uint) (*models.Feedback, error) {
	var feedback models.Feedback
	err := s.db.WithContext(ctx).First(&feedback, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (s *feedbackStore) FindByOrder(ctx context.Context, orderID uint) (*models.Feedback, error) {
	var feedback models.Feedback
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).First(&feedback).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (s *feedbackStore) ExistsByOrder(ctx context.Context, orderID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Feedback{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (s *feedbackStore) FindAll(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := s.db.WithContext(ctx).Order("feedback_date DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (s *feedbackStore) FindByUser(ctx context.Context, userID uint) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("feedback_date DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (s *feedbackStore) Delete(ctx context.Context, feedback *models.Feedback) error {
	return s.db.WithContext(ctx).Delete(feedback).Error
}
