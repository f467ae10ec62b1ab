package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/FurowKick/phone-directory/internal/config"
	"github.com/FurowKick/phone-directory/internal/domain"
	"github.com/FurowKick/phone-directory/internal/middleware"
)

var jwtCfg = config.JWT{
	Secret:        "test-secret",
	Issuer:        "phone-directory",
	Audience:      "phone-directory",
	ExpiryMinutes: 60,
}

type tokenOverrides struct {
	secret   string
	issuer   string
	audience string
	expires  time.Time
	role     string
	subject  string
}

func signToken(t *testing.T, o tokenOverrides) string {
	t.Helper()

	if o.secret == "" {
		o.secret = jwtCfg.Secret
	}
	if o.issuer == "" {
		o.issuer = jwtCfg.Issuer
	}
	if o.audience == "" {
		o.audience = jwtCfg.Audience
	}
	if o.expires.IsZero() {
		o.expires = time.Now().Add(time.Hour)
	}
	if o.role == "" {
		o.role = string(domain.RoleAdmin)
	}
	if o.subject == "" {
		o.subject = uuid.NewString()
	}

	claims := domain.AccessClaims{
		Username: "ivanov",
		Role:     domain.Role(o.role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   o.subject,
			Issuer:    o.issuer,
			Audience:  jwt.ClaimStrings{o.audience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(o.expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(o.secret))
	assert.NoError(t, err)
	return signed
}

func protectedRouter(roles ...domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(jwtCfg)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.GetString("user_id"),
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})

	router.GET("/guarded", handlers...)
	return router
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var res map[string]map[string]any
	assert.NoError(t, json.Unmarshal(body, &res))
	code, _ := res["error"]["code"].(string)
	return code
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Valid Token Passes Identity", func(t *testing.T) {
		router := protectedRouter()
		subject := uuid.NewString()

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOverrides{subject: subject}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, subject, res["userId"])
		assert.Equal(t, "ivanov", res["username"])
		assert.Equal(t, "Admin", res["role"])
	})

	t.Run("Missing Header", func(t *testing.T) {
		router := protectedRouter()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, w.Body.Bytes()))
	})

	t.Run("Not A Bearer Scheme", func(t *testing.T) {
		router := protectedRouter()

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		router := protectedRouter()

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOverrides{
			expires: time.Now().Add(-time.Minute),
		}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_EXPIRED", errorCode(t, w.Body.Bytes()))
	})

	t.Run("Wrong Signing Key", func(t *testing.T) {
		router := protectedRouter()

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOverrides{secret: "other-secret"}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, w.Body.Bytes()))
	})

	t.Run("Wrong Issuer", func(t *testing.T) {
		router := protectedRouter()

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOverrides{issuer: "someone-else"}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unknown Role Claim", func(t *testing.T) {
		router := protectedRouter()

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOverrides{role: "Superuser"}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		router := protectedRouter()

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("Admin Allowed", func(t *testing.T) {
		router := protectedRouter(domain.RoleAdmin)

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOverrides{role: string(domain.RoleAdmin)}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Subscriber Forbidden", func(t *testing.T) {
		router := protectedRouter(domain.RoleAdmin)

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOverrides{role: string(domain.RoleSubscriber)}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, w.Body.Bytes()))
	})

	t.Run("Subscriber Allowed On Shared Route", func(t *testing.T) {
		router := protectedRouter(domain.RoleAdmin, domain.RoleSubscriber)

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOverrides{role: string(domain.RoleSubscriber)}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
