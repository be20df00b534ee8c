package handlers

import (
	"crypto/subtle"
	"time"

	"dealerdesk/internal/config"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthHandler signs admin tokens against the credentials configured in
// the environment. There is no user table; the back office has exactly
// one operator account.
type AuthHandler struct {
	security *config.SecurityConfig
}

func NewAuthHandler(security *config.SecurityConfig) *AuthHandler {
	return &AuthHandler{
		security: security,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(request.Email), []byte(h.security.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(request.Password), []byte(h.security.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		utils.UnauthorizedResponse(c)
		return
	}

	now := time.Now()
	claims := middleware.AdminClaims{
		Email: request.Email,
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.security.JWTExpiry)),
			Issuer:    utils.AppName,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.security.JWTSecret))
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Login successful", gin.H{
		"token":      token,
		"expires_at": claims.ExpiresAt.Time,
	})
}
