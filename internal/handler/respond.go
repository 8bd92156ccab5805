package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/0Raghav-Sharma0/E-Commerce-Cart/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondOK writes the success envelope with the payload merged in.
func respondOK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondError maps domain errors onto the response convention. Anything
// unrecognized is a server fault: logged in full, surfaced generically.
func (h *Handler) respondError(c *gin.Context, err error, notFound string) {
	var (
		validationErr domain.ValidationError
		stockErr      domain.InsufficientStockError
	)

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   stockErr.Error(),
			"available": stockErr.Available,
		})
	case errors.As(err, &validationErr):
		fail(c, http.StatusBadRequest, validationErr.Msg)
	case errors.Is(err, domain.ErrNotFound):
		fail(c, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrNotOwner):
		fail(c, http.StatusUnauthorized, "Not authorized to access this resource")
	default:
		h.log.Error("request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		fail(c, http.StatusInternalServerError, "Server Error")
	}
}
