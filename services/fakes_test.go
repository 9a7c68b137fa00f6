package services

import (
	"context"
	"errors"
	"sort"

	"booknest/models"
	"booknest/store"
)

// In-memory store fakes. Each one honors the same contract as the GORM
// implementation, including store.ErrNotFound on misses.

type fakeUserStore struct {
	seq   uint
	users map[uint]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.seq++
	user.ID = f.seq
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindActiveByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username && u.Active {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Save(_ context.Context, user *models.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, user *models.User) error {
	delete(f.users, user.ID)
	return nil
}

type fakeBookStore struct {
	seq   uint
	books map[uint]*models.Book
}

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{books: map[uint]*models.Book{}}
}

func (f *fakeBookStore) Create(_ context.Context, book *models.Book) error {
	f.seq++
	book.ID = f.seq
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeBookStore) FindByID(_ context.Context, id uint) (*models.Book, error) {
	if b, ok := f.books[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeBookStore) FindByBookID(_ context.Context, bookID string) (*models.Book, error) {
	for _, b := range f.books {
		if b.BookID == bookID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeBookStore) FindAll(_ context.Context) ([]models.Book, error) {
	out := make([]models.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBookStore) FindAvailable(_ context.Context) ([]models.Book, error) {
	var out []models.Book
	for _, b := range f.books {
		if b.Available {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBookStore) Search(_ context.Context, q models.BookQuery) ([]models.Book, error) {
	all, _ := f.FindAll(context.Background())
	var out []models.Book
	for _, b := range all {
		if q.Search == "" || containsFold(b.Name, q.Search) {
			out = append(out, b)
		}
	}
	switch q.Sort {
	case models.SortPriceAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case models.SortPriceDesc:
		sort.Slice(out, func(i, j int) bool { return out[j].Price.LessThan(out[i].Price) })
	}
	return out, nil
}

func (f *fakeBookStore) ExistsByBookID(_ context.Context, bookID string) (bool, error) {
	_, err := f.FindByBookID(context.Background(), bookID)
	return err == nil, nil
}

func (f *fakeBookStore) Save(_ context.Context, book *models.Book) error {
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeBookStore) Delete(_ context.Context, book *models.Book) error {
	delete(f.books, book.ID)
	return nil
}

func containsFold(haystack, needle string) bool {
	h := []rune(haystack)
	n := []rune(needle)
	lower := func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + 32
		}
		return r
	}
	for i := 0; i+len(n) <= len(h); i++ {
		match := true
		for j := range n {
			if lower(h[i+j]) != lower(n[j]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

type fakeCartStore struct {
	seq   uint
	items map[uint]*models.CartItem
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{items: map[uint]*models.CartItem{}}
}

func (f *fakeCartStore) AddOrIncrement(_ context.Context, userID uint, book *models.Book) (*models.CartItem, error) {
	for _, it := range f.items {
		if it.UserID == userID && it.BookID == book.ID {
			it.Quantity++
			cp := *it
			cp.Book = *book
			return &cp, nil
		}
	}
	f.seq++
	item := &models.CartItem{
		ID:              f.seq,
		UserID:          userID,
		BookID:          book.ID,
		Quantity:        1,
		PriceAtAddition: book.Price,
	}
	f.items[item.ID] = item
	cp := *item
	cp.Book = *book
	return &cp, nil
}

func (f *fakeCartStore) FindByID(_ context.Context, id uint) (*models.CartItem, error) {
	if it, ok := f.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeCartStore) FindByUser(_ context.Context, userID uint) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCartStore) CountByUser(_ context.Context, userID uint) (int64, error) {
	items, _ := f.FindByUser(context.Background(), userID)
	return int64(len(items)), nil
}

func (f *fakeCartStore) Save(_ context.Context, item *models.CartItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartStore) Delete(_ context.Context, item *models.CartItem) error {
	delete(f.items, item.ID)
	return nil
}

func (f *fakeCartStore) DeleteByUser(_ context.Context, userID uint) error {
	for id, it := range f.items {
		if it.UserID == userID {
			delete(f.items, id)
		}
	}
	return nil
}

type fakeOrderStore struct {
	seq    uint
	orders map[uint]*models.Order
	carts  *fakeCartStore

	// failCreate makes CreateFromCart fail atomically: no order persisted,
	// cart untouched.
	failCreate bool
}

func newFakeOrderStore(carts *fakeCartStore) *fakeOrderStore {
	return &fakeOrderStore{orders: map[uint]*models.Order{}, carts: carts}
}

func (f *fakeOrderStore) CreateFromCart(_ context.Context, order *models.Order, userID uint) error {
	if f.failCreate {
		return errors.New("storage write failed")
	}
	f.seq++
	order.ID = f.seq
	for i := range order.OrderItems {
		order.OrderItems[i].ID = uint(i + 1)
		order.OrderItems[i].OrderID = order.ID
	}
	cp := *order
	f.orders[order.ID] = &cp
	return f.carts.DeleteByUser(context.Background(), userID)
}

func (f *fakeOrderStore) FindByID(_ context.Context, id uint) (*models.Order, error) {
	if o, ok := f.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeOrderStore) FindByUser(_ context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeOrderStore) FindAll(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeOrderStore) Save(_ context.Context, order *models.Order) error {
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

type fakeFeedbackStore struct {
	seq       uint
	feedbacks map[uint]*models.Feedback
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{feedbacks: map[uint]*models.Feedback{}}
}

func (f *fakeFeedbackStore) Create(_ context.Context, feedback *models.Feedback) error {
	f.seq++
	feedback.ID = f.seq
	cp := *feedback
	f.feedbacks[feedback.ID] = &cp
	return nil
}

func (f *fakeFeedbackStore) FindByID(_ context.Context, id uint) (*models.Feedback, error) {
	if fb, ok := f.feedbacks[id]; ok {
		cp := *fb
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeFeedbackStore) FindByOrder(_ context.Context, orderID uint) (*models.Feedback, error) {
	for _, fb := range f.feedbacks {
		if fb.OrderID == orderID {
			cp := *fb
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeFeedbackStore) ExistsByOrder(_ context.Context, orderID uint) (bool, error) {
	_, err := f.FindByOrder(context.Background(), orderID)
	return err == nil, nil
}

func (f *fakeFeedbackStore) FindAll(_ context.Context) ([]models.Feedback, error) {
	out := make([]models.Feedback, 0, len(f.feedbacks))
	for _, fb := range f.feedbacks {
		out = append(out, *fb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFeedbackStore) FindByUser(_ context.Context, userID uint) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, fb := range f.feedbacks {
		if fb.UserID == userID {
			out = append(out, *fb)
		}
	}
	return out, nil
}

func (f *fakeFeedbackStore) Delete(_ context.Context, feedback *models.Feedback) error {
	delete(f.feedbacks, feedback.ID)
	return nil
}

type fakeInquiryStore struct {
	seq       uint
	inquiries map[uint]*models.OrderInquiry
}

func newFakeInquiryStore() *fakeInquiryStore {
	return &fakeInquiryStore{inquiries: map[uint]*models.OrderInquiry{}}
}

func (f *fakeInquiryStore) Create(_ context.Context, inquiry *models.OrderInquiry) error {
	f.seq++
	inquiry.ID = f.seq
	cp := *inquiry
	f.inquiries[inquiry.ID] = &cp
	return nil
}

func (f *fakeInquiryStore) FindByID(_ context.Context, id uint) (*models.OrderInquiry, error) {
	if iq, ok := f.inquiries[id]; ok {
		cp := *iq
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeInquiryStore) FindByOrder(_ context.Context, orderID uint) ([]models.OrderInquiry, error) {
	var out []models.OrderInquiry
	for _, iq := range f.inquiries {
		if iq.OrderID == orderID {
			out = append(out, *iq)
		}
	}
	return out, nil
}

func (f *fakeInquiryStore) FindAll(_ context.Context) ([]models.OrderInquiry, error) {
	out := make([]models.OrderInquiry, 0, len(f.inquiries))
	for _, iq := range f.inquiries {
		out = append(out, *iq)
	}
	return out, nil
}

func (f *fakeInquiryStore) FindByStatus(_ context.Context, status string) ([]models.OrderInquiry, error) {
	var out []models.OrderInquiry
	for _, iq := range f.inquiries {
		if iq.Status == status {
			out = append(out, *iq)
		}
	}
	return out, nil
}

func (f *fakeInquiryStore) Save(_ context.Context, inquiry *models.OrderInquiry) error {
	cp := *inquiry
	f.inquiries[inquiry.ID] = &cp
	return nil
}
