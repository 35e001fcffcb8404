// Package storage abstracts persistence for users, products, orders and
// order items. Two backends satisfy the same contract: a Postgres store
// for production and an in-memory store for tests and local development.
// The backend is chosen once at startup, never at call time.
//
// Storage is authorization-agnostic: it trusts its caller. Role checks
// live in the request-handling layer.
package storage

import "github.com/antonio25x/pet-cheap/internal/model"

// Storage is the persistence contract. Lookups for an absent row return
// (nil, nil), never an error.
type Storage interface {
	GetUser(id string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	UpsertUser(u *model.User) error

	GetProducts() ([]model.Product, error)
	GetProduct(id string) (*model.Product, error)
	CreateProduct(p *model.Product) error
	UpdateProduct(p *model.Product) error
	DeleteProduct(id string) error

	// CreateOrder and CreateOrderItem are pure inserts. A missing id is
	// filled with a fresh uuid and a missing status defaults to pending;
	// the persisted row is reflected back into the argument.
	CreateOrder(o *model.Order) error
	GetOrder(id string) (*model.Order, error)
	GetOrderByPaymentIntentID(paymentIntentID string) (*model.Order, error)
	UpdateOrderStatus(id, status string) error

	CreateOrderItem(it *model.OrderItem) error
	GetOrderItems(orderID string) ([]model.OrderItem, error)
}
