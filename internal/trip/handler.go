package trip

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Searcher interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

type TripHandler struct {
	service Searcher
}

func NewTripHandler(s Searcher) *TripHandler {
	return &TripHandler{
		service: s,
	}
}

func (h *TripHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/api/search", h.SearchHandler)
	router.GET("/health", h.HealthHandler)
}

// SearchHandler godoc
// @Summary      Find the cheapest round trip per destination
// @Description  Splits the available dates into consecutive runs, prices every depart/return pair that fits minNights/maxNights and returns the cheapest per destination.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search criteria"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/search [post]
func (h *TripHandler) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthHandler godoc
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /health [get]
func (h *TripHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func sendError(c *gin.Context, err error) {
	appErr, ok := asAppError(err)
	if !ok {
		// Default to 500 for unknown errors
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"code":  ErrorCodeInternalFailure,
		})
		return
	}

	c.JSON(appErr.Status, gin.H{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}
