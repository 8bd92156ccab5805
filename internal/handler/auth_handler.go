package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.respondError(c, err, "User not found")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.respondError(c, err, "User not found")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  toUserJSON(user),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err, "User not found")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.respondError(c, err, "User not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"token": token,
		"user":  toUserJSON(user),
	})
}

func (h *Handler) CurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "User not found")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"user": toUserJSON(user)})
}
