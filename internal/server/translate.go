package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/snonux/vocabmt/internal/auth"
	"codeberg.org/snonux/vocabmt/internal/service"
)

type translateRequest struct {
	Text string `json:"text"`
}

// TranslateHandler serves the translation endpoint
type TranslateHandler struct {
	service *service.Service
}

// NewTranslateHandler creates a new translate handler
func NewTranslateHandler(svc *service.Service) *TranslateHandler {
	return &TranslateHandler{service: svc}
}

// Translate handles POST /translate
func (h *TranslateHandler) Translate(c *gin.Context) {
	// A body that is not a JSON object with a string text is treated as
	// missing text; the API key is still checked first.
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("server: %s %s: invalid body: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	result, err := h.service.Handle(c.Request.Context(), service.Request{
		Text:       req.Text,
		Credential: c.GetHeader(auth.APIKeyHeader),
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrBackendUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage hides wrapped details of client errors
func errorMessage(err error) string {
	for _, sentinel := range []error{service.ErrUnauthorized, service.ErrBadRequest, service.ErrBackendUnavailable} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

// NewTranslateRouter builds the translation service router
func NewTranslateRouter(svc *service.Service) *gin.Engine {
	h := NewTranslateHandler(svc)

	router := newEngine()
	router.GET("/api", health("Translation API is running!"))
	router.POST("/translate", h.Translate)
	return router
}

func health(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, message)
	}
}
