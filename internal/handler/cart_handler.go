package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cart, err := h.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Cart not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"items": toCartJSON(cart)})
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

func (h *Handler) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.carts.AddItem(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		h.respondError(c, err, "Product not available")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"message": "Product added to cart"})
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.carts.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		h.respondError(c, err, "Cart not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.carts.Clear(c.Request.Context(), userID); err != nil {
		h.respondError(c, err, "Cart not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
