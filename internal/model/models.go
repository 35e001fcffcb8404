package model

import "time"

// Product is the authoritative catalog entry. Price is a decimal string in
// currency units and is the only source of truth for order totals.
type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `gorm:"type:numeric(10,2)" json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	InStock     int       `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `gorm:"default:user" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

const RoleAdmin = "admin"

// Order statuses. Only "pending" is set at creation; the webhook moves an
// order to a terminal status.
const (
	OrderStatusPending   = "pending"
	OrderStatusSucceeded = "succeeded"
	OrderStatusFailed    = "failed"
)

// Order records one checkout attempt. UserID is empty for guest checkout.
// ShippingAddress holds the serialized address as submitted.
type Order struct {
	ID                    string    `gorm:"primaryKey" json:"id"`
	UserID                string    `gorm:"index" json:"userId"`
	Total                 string    `gorm:"type:numeric(10,2)" json:"total"`
	Status                string    `json:"status"`
	StripePaymentIntentID string    `gorm:"index" json:"stripePaymentIntentId"`
	ShippingAddress       string    `json:"shippingAddress"`
	CreatedAt             time.Time `json:"createdAt"`
}

// OrderItem snapshots the product price at order time so later catalog
// edits never rewrite order history.
type OrderItem struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	OrderID   string    `gorm:"index" json:"orderId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     string    `gorm:"type:numeric(10,2)" json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}
