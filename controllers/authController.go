package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/helpers"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

type AuthController struct {
	resolver *services.TenantResolver
}

func NewAuthController(resolver *services.TenantResolver) *AuthController {
	return &AuthController{resolver: resolver}
}

type loginRequest struct {
	BusinessID string `json:"businessId" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Login authenticates a tenant admin against the business record and issues
// the token pair consumed by the admin dashboard.
func (ac *AuthController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		business, err := ac.resolver.Resolve(c.Request.Context(), req.BusinessID)
		if err != nil {
			respondError(c, err, req.BusinessID)
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(business.AdminPassword), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "business id or password is incorrect"})
			return
		}
		token, refreshToken, err := helpers.GenerateAllTokens(business.BusinessID, business.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":        token,
			"refreshToken": refreshToken,
			"business":     business,
		})
	}
}
