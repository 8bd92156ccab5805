package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/auth"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Service contracts are defined here, on the consumer side; the service
// package satisfies them.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, in service.PlaceOrderInput) (domain.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (domain.Order, error)
	MarkPaid(ctx context.Context, userID, orderID uuid.UUID, result domain.PaymentResult) (domain.Order, error)
}

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type CatalogService interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

type UserService interface {
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
}

type Handler struct {
	orders  OrderService
	carts   CartService
	catalog CatalogService
	users   UserService
	tokens  *auth.Manager
	log     *slog.Logger
}

func New(orders OrderService, carts CartService, catalog CatalogService,
	users UserService, tokens *auth.Manager, log *slog.Logger) *Handler {
	return &Handler{
		orders:  orders,
		carts:   carts,
		catalog: catalog,
		users:   users,
		tokens:  tokens,
		log:     log,
	}
}

// API wires the full route table onto a fresh engine.
func API(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(h.log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/search", h.SearchProducts)

		private := api.Group("")
		private.Use(Authentication(h.tokens))
		{
			private.GET("/auth/user", h.CurrentUser)

			private.GET("/cart", h.GetCart)
			private.POST("/cart", h.AddToCart)
			private.DELETE("/cart/item/:productId", h.RemoveFromCart)
			private.DELETE("/cart/clear", h.ClearCart)

			private.POST("/orders", h.PlaceOrder)
			private.GET("/orders", h.ListOrders)
			private.GET("/orders/:id", h.GetOrder)
			private.PUT("/orders/:id/pay", h.PayOrder)
		}
	}

	return r
}
