package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"booknest/apperr"
	"booknest/models"
	"booknest/store"
	"booknest/utils"
)

type OrderService struct {
	orders   store.OrderStore
	carts    store.CartStore
	users    store.UserStore
	notifier *utils.Notifier
	mailer   *utils.Mailer
	log      *zap.Logger
}

func NewOrderService(orders store.OrderStore, carts store.CartStore, users store.UserStore,
	notifier *utils.Notifier, mailer *utils.Mailer, log *zap.Logger) *OrderService {
	return &OrderService{orders: orders, carts: carts, users: users, notifier: notifier, mailer: mailer, log: log}
}

// Create turns the user's cart into a persisted order: header plus one item
// per cart row, then the cart is cleared. All three writes happen in one
// transaction inside the store, so a failure partway leaves no trace.
//
// Item prices snapshot the cart's price-at-addition, not the current catalog
// price, so an admin repricing a book between add-to-cart and checkout does
// not change what the customer already agreed to pay.
func (s *OrderService) Create(ctx context.Context, input *models.CreateOrderInput) (*models.Order, error) {
	user, err := s.users.FindByUsername(ctx, input.Username)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}

	cartItems, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load cart", err)
	}
	if len(cartItems) == 0 {
		return nil, apperr.InvalidState("Cart is empty")
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for i := range cartItems {
		ci := &cartItems[i]
		total = total.Add(ci.Subtotal())
		orderItems = append(orderItems, models.OrderItem{
			BookID:   ci.BookID,
			Quantity: ci.Quantity,
			Price:    ci.PriceAtAddition,
		})
	}

	order := &models.Order{
		UserID:             user.ID,
		OrderItems:         orderItems,
		TotalAmount:        total,
		Status:             models.OrderStatusProcessing,
		DeliveryAddress:    input.DeliveryAddress,
		DeliveryCity:       input.DeliveryCity,
		DeliveryPostalCode: input.DeliveryPostalCode,
		DeliveryPhone:      input.DeliveryPhone,
		CardNumber:         utils.MaskCardNumber(input.CardNumber),
		CardHolderName:     input.CardHolderName,
		OrderDate:          time.Now(),
	}

	if err := s.orders.CreateFromCart(ctx, order, user.ID); err != nil {
		return nil, apperr.Internal("failed to create order", err)
	}

	s.log.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", user.ID),
		zap.String("total", total.StringFixed(2)),
		zap.Int("items", len(orderItems)))

	s.notifier.PublishOrderEvent(utils.OrderEvent{
		Event:   "order_created",
		OrderID: order.ID,
		UserID:  user.ID,
		Status:  order.Status,
		Total:   total.StringFixed(2),
	})
	s.mailer.SendOrderConfirmation(user.Email, order.ID, total)

	return order, nil
}

func (s *OrderService) GetUserOrders(ctx context.Context, username string) ([]models.Order, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up user", err)
	}

	orders, err := s.orders.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal("failed to list orders", err)
	}
	return orders, nil
}

func (s *OrderService) GetAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list orders", err)
	}
	return orders, nil
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err == store.ErrNotFound {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up order", err)
	}
	return order, nil
}

// UpdateStatus writes the free-form status string. Reaching "Delivered"
// stamps the delivery date the first time.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if status == models.OrderStatusDelivered && order.DeliveryDate == nil {
		now := time.Now()
		order.DeliveryDate = &now
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperr.Internal("failed to update order status", err)
	}

	s.log.Info("order status updated", zap.Uint("order_id", id), zap.String("status", status))

	s.notifier.PublishOrderEvent(utils.OrderEvent{
		Event:   "order_status_changed",
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  status,
	})

	return order, nil
}
