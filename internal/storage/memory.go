package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/antonio25x/pet-cheap/internal/model"
)

// MemoryStore keeps everything in maps behind one mutex. It satisfies the
// same contract as PostgresStore and backs tests and local development.
type MemoryStore struct {
	mu         sync.Mutex
	users      map[string]model.User
	products   map[string]model.Product
	orders     map[string]model.Order
	orderItems map[string]model.OrderItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]model.User),
		products:   make(map[string]model.Product),
		orders:     make(map[string]model.Order),
		orderItems: make(map[string]model.OrderItem),
	}
}

func (s *MemoryStore) GetUser(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) UpsertUser(u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) GetProducts() ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
	return ps, nil
}

func (s *MemoryStore) GetProduct(id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *MemoryStore) CreateProduct(p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.products[p.ID] = *p
	return nil
}

func (s *MemoryStore) UpdateProduct(p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.UpdatedAt = time.Now().UTC()
	s.products[p.ID] = *p
	return nil
}

func (s *MemoryStore) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
	return nil
}

func (s *MemoryStore) CreateOrder(o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	s.orders[o.ID] = *o
	return nil
}

func (s *MemoryStore) GetOrder(id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *MemoryStore) GetOrderByPaymentIntentID(paymentIntentID string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.StripePaymentIntentID == paymentIntentID {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) UpdateOrderStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil
	}
	o.Status = status
	s.orders[id] = o
	return nil
}

func (s *MemoryStore) CreateOrderItem(it *model.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	s.orderItems[it.ID] = *it
	return nil
}

func (s *MemoryStore) GetOrderItems(orderID string) ([]model.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []model.OrderItem
	for _, it := range s.orderItems {
		if it.OrderID == orderID {
			items = append(items, it)
		}
	}
	return items, nil
}
