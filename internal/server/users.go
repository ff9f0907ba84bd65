package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/snonux/vocabmt/internal/auth"
)

// UserHandler serves registration and API key validation
type UserHandler struct {
	store *auth.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(store *auth.Store) *UserHandler {
	return &UserHandler{store: store}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
		return
	}

	user, err := h.store.Register(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrUserExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ValidateKey handles GET /validate-key
func (h *UserHandler) ValidateKey(c *gin.Context) {
	user, err := h.store.ByAPIKey(c.Request.Context(), c.GetHeader(auth.APIKeyHeader))
	switch {
	case errors.Is(err, auth.ErrMissingKey):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No API key provided"})
	case errors.Is(err, auth.ErrInvalidKey):
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Invalid API key"})
	case err != nil:
		internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"valid": true, "user_id": user.ID, "username": user.Username})
	}
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// NewUserRouter builds the user service router
func NewUserRouter(store *auth.Store) *gin.Engine {
	h := NewUserHandler(store)

	router := newEngine()
	router.GET("/api", health("User Management API is running!"))
	router.POST("/register", h.Register)
	router.GET("/validate-key", h.ValidateKey)
	router.GET("/users", h.List)
	return router
}
