package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antonio25x/pet-cheap/internal/model"
	"github.com/antonio25x/pet-cheap/internal/storage"
	"github.com/antonio25x/pet-cheap/internal/validation"
)

// AdminHTTP is the product-management CRUD behind the admin role gate.
// The gate lives in middleware; these handlers trust their caller the
// same way storage does.
type AdminHTTP struct {
	Store storage.Storage
}

func NewAdminHTTP(store storage.Storage) *AdminHTTP { return &AdminHTTP{Store: store} }

func (h *AdminHTTP) List(c *gin.Context) {
	products, err := h.Store.GetProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *AdminHTTP) Create(c *gin.Context) {
	var in validation.CreateProduct
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}
	if errs := validation.Validate(in); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data", "details": errs})
		return
	}

	product := model.Product{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		InStock:     in.InStock,
	}
	if err := h.Store.CreateProduct(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating product: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *AdminHTTP) Update(c *gin.Context) {
	var in validation.UpdateProduct
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}
	if errs := validation.Validate(in); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data", "details": errs})
		return
	}

	product, err := h.Store.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating product: " + err.Error()})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}

	if err := h.Store.UpdateProduct(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating product: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHTTP) Delete(c *gin.Context) {
	if err := h.Store.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting product: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
