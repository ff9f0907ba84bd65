package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/snonux/vocabmt/internal/vocabulary"
)

// VocabularyHandler serves CRUD over vocabulary entries
type VocabularyHandler struct {
	store *vocabulary.Store
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(store *vocabulary.Store) *VocabularyHandler {
	return &VocabularyHandler{store: store}
}

type entryRequest struct {
	Term       *string `json:"English"`
	Definition *string `json:"Spanish"`
}

// List handles GET /translations
func (h *VocabularyHandler) List(c *gin.Context) {
	entries, err := h.store.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create handles POST /translations
func (h *VocabularyHandler) Create(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Term == nil || req.Definition == nil ||
		*req.Term == "" || *req.Definition == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing English or Spanish term"})
		return
	}

	entry, err := h.store.Create(c.Request.Context(), *req.Term, *req.Definition)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Get handles GET /translations/:id
func (h *VocabularyHandler) Get(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	entry, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, vocabulary.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Update handles PUT /translations/:id
func (h *VocabularyHandler) Update(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	if req.Term == nil && req.Definition == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	entry, err := h.store.Update(c.Request.Context(), id, req.Term, req.Definition)
	if errors.Is(err, vocabulary.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /translations/:id
func (h *VocabularyHandler) Delete(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return 0, false
	}
	return id, true
}

func internalError(c *gin.Context, err error) {
	log.Printf("server: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// NewVocabularyRouter builds the vocabulary service router. Every
// /translations route requires a key accepted by gate.
func NewVocabularyRouter(store *vocabulary.Store, gate Gate, authTimeout time.Duration) *gin.Engine {
	h := NewVocabularyHandler(store)

	router := newEngine()
	router.GET("/api", health("Vocabulary API is running!"))

	translations := router.Group("/translations", RequireAPIKey(gate, authTimeout))
	translations.GET("", h.List)
	translations.POST("", h.Create)
	translations.GET("/:id", h.Get)
	translations.PUT("/:id", h.Update)
	translations.DELETE("/:id", h.Delete)
	return router
}
