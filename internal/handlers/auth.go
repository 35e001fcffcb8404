package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antonio25x/pet-cheap/internal/service"
	"github.com/antonio25x/pet-cheap/internal/storage"
)

type AuthHTTP struct {
	S     service.AuthService
	Store storage.Storage
}

func NewAuthHTTP(s service.AuthService, store storage.Storage) *AuthHTTP {
	return &AuthHTTP{S: s, Store: store}
}

func (h *AuthHTTP) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}

	tok, err := h.S.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	// cookie + JSON token
	c.SetCookie("session", tok, 7*24*3600, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": tok, "token_type": "Bearer"})
}

func (h *AuthHTTP) Logout(c *gin.Context) {
	c.SetCookie("session", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHTTP) Me(c *gin.Context) {
	u, err := h.Store.GetUser(c.GetString(userIDKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user"})
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	c.JSON(http.StatusOK, u)
}
