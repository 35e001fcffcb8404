// Package validation holds the request payload schemas shared by the API
// handlers. Validation is pure: it never touches storage and has no side
// effects, so the same rules can back any transport.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	digitsRe = regexp.MustCompile(`^\d+$`)
	priceRe  = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		return priceRe.MatchString(fl.Field().String())
	})
	return v
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks a payload against its schema tags and returns the list
// of field-level failures, or nil when the payload is valid.
func Validate(payload any) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "digits":
		return "ID must be a number"
	case "price":
		return "Price must be a decimal with up to 2 fraction digits"
	case "url":
		return "Image must be a valid URL"
	case "gt":
		return "Number must be greater than " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return "Must contain at least " + fe.Param() + " item(s)"
		}
		return "Number must be greater than or equal to " + fe.Param()
	case "max":
		return "Number must be less than or equal to " + fe.Param()
	}
	return fmt.Sprintf("Invalid value for %s", fe.Field())
}

// ProductID validates the :id route parameter for catalog lookups.
type ProductID struct {
	ID string `json:"id" validate:"required,digits"`
}

type ContactForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type Feedback struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	OrderID   string `json:"orderId" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}

// CartItemInput is one line of a checkout request. The id is the catalog
// key; the quantity must be at least one.
type CartItemInput struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type ShippingAddress struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
}

// CreatePaymentIntent is the checkout request body. Amount is the
// client-claimed total in currency units; it is revalidated server-side
// against catalog prices before any money moves.
type CreatePaymentIntent struct {
	Amount          float64         `json:"amount" validate:"required,gt=0"`
	Items           []CartItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
}

type CreateProduct struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required,price"`
	Image       string `json:"image" validate:"required,url"`
	Category    string `json:"category" validate:"required"`
	InStock     int    `json:"inStock" validate:"min=0"`
}

// UpdateProduct carries a partial product edit; nil fields are untouched.
type UpdateProduct struct {
	Name        *string `json:"name" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	Price       *string `json:"price" validate:"omitempty,price"`
	Image       *string `json:"image" validate:"omitempty,url"`
	Category    *string `json:"category" validate:"omitempty"`
	InStock     *int    `json:"inStock" validate:"omitempty,min=0"`
}
