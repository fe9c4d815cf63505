package controllers

import (
	"bnc-store/models"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the response envelope so clients can branch
// without parsing message text.
const (
	codeValidation       = "VALIDATION_ERROR"
	codeProductsNotFound = "PRODUCTS_NOT_FOUND"
	codeDuplicateCart    = "DUPLICATE_CART"
	codeNotFound         = "NOT_FOUND"
	codeInternal         = "INTERNAL"
)

// respondError maps service errors onto the HTTP envelope. notFoundMsg
// names the missing entity when the error is ErrNotFound.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var vErr models.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: vErr.Error(),
			Code:    codeValidation,
		})
	case errors.Is(err, models.ErrProductsNotFound):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    codeProductsNotFound,
		})
	case errors.Is(err, models.ErrDuplicateCart):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    codeDuplicateCart,
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: notFoundMsg,
			Code:    codeNotFound,
		})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Something went wrong",
			Code:    codeInternal,
		})
	}
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: message,
		Code:    codeValidation,
	})
}
