package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

var validate = validator.New()

// respondError maps the service error taxonomy onto HTTP. identifier is
// whatever id/slug the request addressed, echoed back so the UI can react
// without parsing the message.
func respondError(c *gin.Context, err error, identifier string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg, "field": ve.Field})
	case errors.Is(err, services.ErrTenantNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCompletedOrderNotFound),
		errors.Is(err, services.ErrCatalogItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "identifier": identifier})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
