package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antonio25x/pet-cheap/internal/service"
	"github.com/antonio25x/pet-cheap/internal/validation"
)

type CheckoutHTTP struct {
	Svc service.CheckoutService
}

func NewCheckoutHTTP(svc service.CheckoutService) *CheckoutHTTP { return &CheckoutHTTP{Svc: svc} }

// CreatePaymentIntent serves POST /api/create-payment-intent for guests
// and authenticated users alike. All 4xx outcomes happen before any
// external call or write.
func (h *CheckoutHTTP) CreatePaymentIntent(c *gin.Context) {
	var req validation.CreatePaymentIntent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment intent data"})
		return
	}

	userID := c.GetString(userIDKey)
	result, err := h.Svc.CreatePaymentIntent(c.Request.Context(), req, userID)
	if err != nil {
		var verr *service.ValidationError
		var pnf *service.ProductNotFoundError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment intent data", "details": verr.Errors})
		case errors.As(err, &pnf):
			c.JSON(http.StatusBadRequest, gin.H{"message": pnf.Error()})
		case errors.Is(err, service.ErrAmountMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Amount mismatch"})
		default:
			log.Printf("payment intent error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating payment intent: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
