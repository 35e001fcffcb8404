package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antonio25x/pet-cheap/internal/storage"
	"github.com/antonio25x/pet-cheap/internal/validation"
)

type ProductHTTP struct {
	Store storage.Storage
}

func NewProductHTTP(store storage.Storage) *ProductHTTP { return &ProductHTTP{Store: store} }

func (h *ProductHTTP) List(c *gin.Context) {
	products, err := h.Store.GetProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) Get(c *gin.Context) {
	params := validation.ProductID{ID: c.Param("id")}
	if errs := validation.Validate(params); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID", "details": errs})
		return
	}

	product, err := h.Store.GetProduct(params.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching product: " + err.Error()})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
