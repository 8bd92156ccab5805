package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.respondError(c, err, "Product not available")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"count":    len(products),
		"products": toProductsJSON(products),
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "Product not available")
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Product not available")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"product": toProductJSON(product)})
}

func (h *Handler) SearchProducts(c *gin.Context) {
	products, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err, "Product not available")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"count":    len(products),
		"products": toProductsJSON(products),
	})
}
