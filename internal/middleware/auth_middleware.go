package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/FurowKick/phone-directory/internal/config"
	"github.com/FurowKick/phone-directory/internal/domain"
	"github.com/FurowKick/phone-directory/internal/shared/apperror"
	"github.com/FurowKick/phone-directory/internal/shared/contextutil"
	"github.com/FurowKick/phone-directory/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and attaches the decoded
// identity to the gin context and the request context. Already-issued
// tokens stay valid until expiry; there is no revocation list.
func AuthMiddleware(cfg config.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		claims := &domain.AccessClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithAudience(cfg.Audience),
			jwt.WithExpirationRequired(),
		)

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Error(c, http.StatusUnauthorized, apperror.CodeTokenExpired, "Token has expired", nil)
			} else {
				response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid token", nil)
			}
			c.Abort()
			return
		}

		role, err := domain.ParseRole(string(claims.Role))
		if err != nil || claims.Subject == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid token claims", nil)
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("username", claims.Username)
		c.Set("role", string(role))

		ctx := contextutil.WithUserID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route on the role decoded by AuthMiddleware.
func RequireRole(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowed {
			if userRole == string(role) {
				c.Next()
				return
			}
		}

		response.Error(c,
			apperror.ErrForbidden.HTTPStatus,
			apperror.ErrForbidden.Code,
			apperror.ErrForbidden.Message,
			nil,
		)
		c.Abort()
	}
}
