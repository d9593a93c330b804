package http

import (
	"github.com/gin-gonic/gin"
	swaggofiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"github.com/techzone/backend/internal/infrastructure/auth"
	"github.com/techzone/backend/internal/infrastructure/config"
	"github.com/techzone/backend/internal/infrastructure/logger"
	"github.com/techzone/backend/internal/interfaces/http/handlers"
	"github.com/techzone/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles every route handler the router mounts
type Handlers struct {
	Auth     *handlers.AuthHandler
	Product  *handlers.ProductHandler
	Category *handlers.CategoryHandler
	Cart     *handlers.CartHandler
	Order    *handlers.OrderHandler
	Payment  *handlers.PaymentHandler
	Review   *handlers.ReviewHandler
	Address  *handlers.AddressHandler
	Wishlist *handlers.WishlistHandler
}

// NewRouter builds the gin engine with all middleware and routes
func NewRouter(
	cfg *config.Config,
	log *zap.Logger,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	h Handlers,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()
	engine.Use(
		logger.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(),
		middleware.SecureHeaders(),
		middleware.BodyLimit(cfg.Server.BodyLimitBytes),
		middleware.NewRateLimiter(50, 100).Middleware(),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/swagger/*any", ginswagger.WrapHandler(swaggofiles.Handler))

	authRequired := middleware.Auth(jwtService, blacklist)
	adminOnly := middleware.RequireAdmin()

	v1 := engine.Group("/api/v1")

	// Public routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
	}

	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/featured", h.Product.Featured)
		products.GET("/:id", h.Product.Get)
		products.GET("/:id/reviews", h.Review.ListByProduct)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.GET("/:id/products", h.Product.ByCategory)
	}

	// Authenticated routes
	account := v1.Group("/auth", authRequired)
	{
		account.POST("/logout", h.Auth.Logout)
		account.GET("/profile", h.Auth.Profile)
		account.PUT("/profile", h.Auth.UpdateProfile)
		account.PUT("/password", h.Auth.ChangePassword)
	}

	cart := v1.Group("/cart", authRequired)
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:productId", h.Cart.UpdateItem)
		cart.DELETE("/items/:productId", h.Cart.RemoveItem)
	}

	orders := v1.Group("/orders", authRequired)
	{
		orders.POST("", h.Order.Create)
		orders.GET("", h.Order.ListMine)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.GET("/:id/payment", h.Payment.GetByOrder)
	}

	v1.POST("/payments", authRequired, h.Payment.Process)
	v1.POST("/reviews", authRequired, h.Review.Create)

	addresses := v1.Group("/addresses", authRequired)
	{
		addresses.GET("", h.Address.List)
		addresses.POST("", h.Address.Create)
		addresses.PUT("/:id", h.Address.Update)
		addresses.DELETE("/:id", h.Address.Delete)
	}

	wishlist := v1.Group("/wishlist", authRequired)
	{
		wishlist.GET("", h.Wishlist.List)
		wishlist.POST("/:productId", h.Wishlist.Add)
		wishlist.DELETE("/:productId", h.Wishlist.Remove)
	}

	// Back-office routes
	admin := v1.Group("/admin", authRequired, adminOnly)
	{
		admin.POST("/products", h.Product.Create)
		admin.PUT("/products/:id", h.Product.Update)
		admin.DELETE("/products/:id", h.Product.Delete)
		admin.POST("/products/:id/image", h.Product.UploadImage)

		admin.POST("/categories", h.Category.Create)
		admin.PUT("/categories/:id", h.Category.Update)
		admin.DELETE("/categories/:id", h.Category.Delete)

		admin.GET("/orders", h.Order.List)
		admin.PUT("/orders/:id/status", h.Order.UpdateStatus)

		admin.POST("/payments/:id/refund", h.Payment.Refund)

		admin.POST("/reviews/:id/approve", h.Review.Approve)
		admin.DELETE("/reviews/:id", h.Review.Delete)
	}

	return engine
}
