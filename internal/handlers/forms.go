package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antonio25x/pet-cheap/internal/service"
	"github.com/antonio25x/pet-cheap/internal/validation"
)

// FormsHTTP serves the contact and feedback forms. Contact submissions
// are relayed to the store inbox best-effort; feedback is logged for
// later reconciliation against the order id.
type FormsHTTP struct {
	Email service.EmailService
	Inbox string
}

func NewFormsHTTP(email service.EmailService, inbox string) *FormsHTTP {
	return &FormsHTTP{Email: email, Inbox: inbox}
}

func (h *FormsHTTP) Contact(c *gin.Context) {
	var form validation.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact form data"})
		return
	}
	if errs := validation.Validate(form); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact form data", "details": errs})
		return
	}

	log.Printf("contact form submission from %s <%s>: %s", form.FirstName, form.Email, form.Subject)
	if h.Inbox != "" {
		body := fmt.Sprintf("From: %s %s <%s>\n\n%s", form.FirstName, form.LastName, form.Email, form.Message)
		if err := h.Email.Send(h.Inbox, "[contact] "+form.Subject, body); err != nil {
			log.Printf("contact relay failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}

func (h *FormsHTTP) Feedback(c *gin.Context) {
	var fb validation.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback data"})
		return
	}
	if errs := validation.Validate(fb); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback data", "details": errs})
		return
	}

	log.Printf("feedback for order %s: rating=%d comment=%q", fb.OrderID, fb.Rating, fb.Comment)
	c.JSON(http.StatusOK, gin.H{"message": "Feedback received successfully!"})
}
