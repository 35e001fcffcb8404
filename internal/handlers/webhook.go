package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antonio25x/pet-cheap/internal/model"
	"github.com/antonio25x/pet-cheap/internal/storage"
)

// WebhookHTTP receives processor events. Signature verification is not
// wired in this deployment; the envelope is trusted as-is.
type WebhookHTTP struct {
	Store storage.Storage
}

func NewWebhookHTTP(store storage.Storage) *WebhookHTTP { return &WebhookHTTP{Store: store} }

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

func (h *WebhookHTTP) Handle(c *gin.Context) {
	var ev webhookEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Webhook error: " + err.Error()})
		return
	}

	var status string
	switch ev.Type {
	case "payment_intent.succeeded":
		status = model.OrderStatusSucceeded
	case "payment_intent.payment_failed":
		status = model.OrderStatusFailed
	}

	if status != "" && ev.Data.Object.ID != "" {
		order, err := h.Store.GetOrderByPaymentIntentID(ev.Data.Object.ID)
		if err != nil {
			log.Printf("webhook: look up order for %s: %v", ev.Data.Object.ID, err)
		} else if order != nil {
			if err := h.Store.UpdateOrderStatus(order.ID, status); err != nil {
				log.Printf("webhook: update order %s: %v", order.ID, err)
			} else {
				log.Printf("webhook: order %s -> %s", order.ID, status)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
