package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"booknest/apperr"
	"booknest/models"
	"booknest/store"
)

type InquiryService struct {
	inquiries store.InquiryStore
	orders    store.OrderStore
	users     store.UserStore
	log       *zap.Logger
}

func NewInquiryService(inquiries store.InquiryStore, orders store.OrderStore, users store.UserStore, log *zap.Logger) *InquiryService {
	return &InquiryService{inquiries: inquiries, orders: orders, users: users, log: log}
}

func (s *InquiryService) Create(ctx context.Context, input *models.CreateInquiryInput) (*models.OrderInquiry, error) {
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

	inquiry := &models.OrderInquiry{
		OrderID:     order.ID,
		UserID:      user.ID,
		Message:     input.Message,
		Status:      models.InquiryStatusPending,
		InquiryDate: time.Now(),
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, apperr.Internal("failed to create inquiry", err)
	}

	s.log.Info("inquiry created", zap.Uint("order_id", order.ID), zap.Uint("inquiry_id", inquiry.ID))
	return inquiry, nil
}

// Reply stores the admin answer, flips the status to Replied and stamps the
// reply time.
func (s *InquiryService) Reply(ctx context.Context, inquiryID uint, reply string) (*models.OrderInquiry, error) {
	inquiry, err := s.inquiries.FindByID(ctx, inquiryID)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("Inquiry not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up inquiry", err)
	}

	now := time.Now()
	inquiry.AdminReply = reply
	inquiry.Status = models.InquiryStatusReplied
	inquiry.ReplyDate = &now

	if err := s.inquiries.Save(ctx, inquiry); err != nil {
		return nil, apperr.Internal("failed to save reply", err)
	}

	s.log.Info("inquiry replied", zap.Uint("inquiry_id", inquiryID))
	return inquiry, nil
}

func (s *InquiryService) GetByID(ctx context.Context, id uint) (*models.OrderInquiry, error) {
	inquiry, err := s.inquiries.FindByID(ctx, id)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("Inquiry not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up inquiry", err)
	}
	return inquiry, nil
}

func (s *InquiryService) GetByOrder(ctx context.Context, orderID uint) ([]models.OrderInquiry, error) {
	inquiries, err := s.inquiries.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal("failed to list inquiries", err)
	}
	return inquiries, nil
}

func (s *InquiryService) GetAll(ctx context.Context) ([]models.OrderInquiry, error) {
	inquiries, err := s.inquiries.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list inquiries", err)
	}
	return inquiries, nil
}

func (s *InquiryService) GetPending(ctx context.Context) ([]models.OrderInquiry, error) {
	inquiries, err := s.inquiries.FindByStatus(ctx, models.InquiryStatusPending)
	if err != nil {
		return nil, apperr.Internal("failed to list pending inquiries", err)
	}
	return inquiries, nil
}
