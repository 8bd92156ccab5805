package handler

import (
	"net/http"
	"time"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type placeOrderRequest struct {
	ShippingAddress shippingAddressJSON `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	Items           []struct {
		ProductID string `json:"product_id"`
		Quantity  int32  `json:"quantity"`
	} `json:"items"`
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	items := make([]domain.RequestedItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid product id: "+item.ProductID)
			return
		}
		items = append(items, domain.RequestedItem{ProductID: productID, Quantity: item.Quantity})
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), userID, service.PlaceOrderInput{
		ShippingAddress: domain.ShippingAddress{
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"order": toOrderJSON(order)})
}

func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"count":  len(orders),
		"orders": toOrdersJSON(orders),
	})
}

func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id cannot name an order.
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"order": toOrderJSON(order)})
}

type payOrderRequest struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	UpdateTime time.Time `json:"update_time"`
	PayerEmail string    `json:"payer_email"`
}

func (h *Handler) PayOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	var req payOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orders.MarkPaid(c.Request.Context(), userID, orderID, domain.PaymentResult{
		ID:         req.ID,
		Status:     req.Status,
		UpdateTime: req.UpdateTime,
		PayerEmail: req.PayerEmail,
	})
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"order": toOrderJSON(order)})
}
