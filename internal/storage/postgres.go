package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/antonio25x/pet-cheap/internal/model"
)

// PostgresStore is the durable backend over gorm.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects, runs migrations and returns the store plus a
// cleanup that closes the underlying pool.
func NewPostgresStore(dsn string) (*PostgresStore, func(), error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if s, err := db.DB(); err == nil {
			_ = s.Close()
		}
	}
	return &PostgresStore{db: db}, cleanup, nil
}

func (s *PostgresStore) GetUser(id string) (*model.User, error) {
	var u model.User
	err := s.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	err := s.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) UpsertUser(u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return s.db.Save(u).Error
}

func (s *PostgresStore) GetProducts() ([]model.Product, error) {
	var ps []model.Product
	return ps, s.db.Order("id asc").Find(&ps).Error
}

func (s *PostgresStore) GetProduct(id string) (*model.Product, error) {
	var p model.Product
	err := s.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostgresStore) CreateProduct(p *model.Product) error {
	return s.db.Create(p).Error
}

func (s *PostgresStore) UpdateProduct(p *model.Product) error {
	return s.db.Save(p).Error
}

func (s *PostgresStore) DeleteProduct(id string) error {
	return s.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (s *PostgresStore) CreateOrder(o *model.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	return s.db.Create(o).Error
}

func (s *PostgresStore) GetOrder(id string) (*model.Order, error) {
	var o model.Order
	err := s.db.First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *PostgresStore) GetOrderByPaymentIntentID(paymentIntentID string) (*model.Order, error) {
	var o model.Order
	err := s.db.First(&o, "stripe_payment_intent_id = ?", paymentIntentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *PostgresStore) UpdateOrderStatus(id, status string) error {
	return s.db.Model(&model.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (s *PostgresStore) CreateOrderItem(it *model.OrderItem) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	return s.db.Create(it).Error
}

func (s *PostgresStore) GetOrderItems(orderID string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	return items, s.db.Find(&items, "order_id = ?", orderID).Error
}
