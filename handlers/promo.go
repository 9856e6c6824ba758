package handlers

import (
	"errors"
	"net/http"

	"eventease/services/promo"

	"github.com/gin-gonic/gin"
)

// ValidatePromoHandler handles POST /api/promo/validate.
func ValidatePromoHandler(c *gin.Context) {
	var input struct {
		Code   string  `json:"code" binding:"required"`
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := promo.Evaluate(input.Code, input.Amount)
	if err != nil {
		var belowMin promo.BelowMinimumError
		if errors.Is(err, promo.ErrInvalidCode) || errors.As(err, &belowMin) {
			c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "promo validation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
