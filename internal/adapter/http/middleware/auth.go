package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"engetrack/internal/domain/permissions"
	"engetrack/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by Auth and read by handlers.
const (
	ContextEmailKey      = "email"
	ContextNomeKey       = "nome"
	ContextPermissoesKey = "permissoes"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errNoAccess     = pkg.NewDomainErrorSimple("NO_ACCESS", "No department access for this identity", http.StatusForbidden)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Missing department permission", http.StatusForbidden)
)

// Auth validates the bearer token, resolves the caller's capability set from
// the permission table and injects identity into the request context. The
// token only supplies the authenticated email; everything else comes from the
// resolver.
func Auth(jwtSecret string, resolver *permissions.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		email, err := emailFromToken(parts[1], jwtSecret)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		set := resolver.Resolve(email)
		if len(set) == 0 {
			c.AbortWithStatusJSON(errNoAccess.HTTPStatus, errNoAccess.ToHTTPError())
			return
		}

		c.Set(ContextEmailKey, email)
		c.Set(ContextNomeKey, resolver.DisplayName(email))
		c.Set(ContextPermissoesKey, set)
		c.Next()
	}
}

// RequirePermission gates a route group behind at least one of the given
// capabilities. Admin sets were expanded at load time, so a plain Has check
// is enough.
func RequirePermission(perms ...permissions.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		set := PermissionsFrom(c)
		if !set.HasAny(perms...) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// PermissionsFrom returns the capability set injected by Auth; empty when the
// middleware did not run.
func PermissionsFrom(c *gin.Context) permissions.Set {
	if v, ok := c.Get(ContextPermissoesKey); ok {
		if set, ok := v.(permissions.Set); ok {
			return set
		}
	}
	return permissions.NewSet()
}

// DisplayNameFrom returns the caller's configured display name.
func DisplayNameFrom(c *gin.Context) string {
	return c.GetString(ContextNomeKey)
}

func emailFromToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type")
	}
	email, _ := claims["email"].(string)
	return strings.TrimSpace(email), nil
}
