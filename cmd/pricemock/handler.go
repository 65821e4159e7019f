package main

import (
	"net/http"
	"travel/pkg/pricing"

	"github.com/gin-gonic/gin"
)

type priceQuery struct {
	Origin      string `form:"origin"`
	Destination string `form:"destination" binding:"required"`
	Depart      string `form:"depart" binding:"required"`
	Return      string `form:"return" binding:"required"`
}

type priceHandler struct {
	oracle pricing.Oracle
}

func newPriceHandler(oracle pricing.Oracle) *priceHandler {
	return &priceHandler{oracle: oracle}
}

func (h *priceHandler) register(r gin.IRouter) {
	r.GET("/v1/prices", h.getPrice)
}

// getPrice answers in the pricing.PriceQuote shape HTTPOracle decodes.
func (h *priceHandler) getPrice(c *gin.Context) {
	var q priceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := h.oracle.GetPrice(c.Request.Context(), q.Origin, q.Destination, q.Depart, q.Return)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pricing.PriceQuote{
		Origin:      q.Origin,
		Destination: q.Destination,
		Depart:      q.Depart,
		Return:      q.Return,
		Price:       price,
	})
}
