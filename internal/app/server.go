package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antonio25x/pet-cheap/internal/handlers"
	"github.com/antonio25x/pet-cheap/internal/service"
	"github.com/antonio25x/pet-cheap/internal/storage"
)

// NewServer builds the storage backend, services and the gin engine. The
// backend variant is fixed here, at startup, never per request.
func NewServer(cfg Config) (*gin.Engine, func(), error) {
	var store storage.Storage
	cleanup := func() {}
	switch cfg.Storage {
	case "memory":
		store = storage.NewMemoryStore()
	default:
		pg, pgCleanup, err := storage.NewPostgresStore(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		store = pg
		cleanup = pgCleanup
	}

	if err := storage.Seed(store); err != nil {
		cleanup()
		return nil, nil, err
	}

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// --- services ---
	payments := service.NewStripeProvider(cfg.StripeSecretKey)
	checkout := service.NewCheckoutService(store, payments, cfg.Currency)
	auth := service.NewAuthService(store, cfg.JWTSecret)
	email := service.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	// --- handlers ---
	productH := handlers.NewProductHTTP(store)
	checkoutH := handlers.NewCheckoutHTTP(checkout)
	formsH := handlers.NewFormsHTTP(email, cfg.ContactInbox)
	adminH := handlers.NewAdminHTTP(store)
	authH := handlers.NewAuthHTTP(auth, store)
	webhookH := handlers.NewWebhookHTTP(store)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := r.Group("/api")
	{
		api.GET("/products", productH.List)
		api.GET("/products/:id", productH.Get)

		api.POST("/create-payment-intent", handlers.OptionalAuth(auth), checkoutH.CreatePaymentIntent)

		api.POST("/contact", formsH.Contact)
		api.POST("/feedback", formsH.Feedback)

		api.POST("/webhook", webhookH.Handle)

		api.POST("/auth/login", authH.Login)
		api.POST("/auth/logout", authH.Logout)
		api.GET("/auth/user", handlers.RequireAuth(auth), authH.Me)
	}

	admin := api.Group("/admin", handlers.RequireAdmin(auth, store))
	{
		admin.GET("/products", adminH.List)
		admin.POST("/products", adminH.Create)
		admin.PUT("/products/:id", adminH.Update)
		admin.DELETE("/products/:id", adminH.Delete)
	}

	return r, cleanup, nil
}
