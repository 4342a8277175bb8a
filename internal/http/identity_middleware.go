package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ownerIDKey = "owner_id"

// identityClaims es lo mínimo que pedimos del token emitido por el
// proveedor de identidad externo: el id del dueño.
type identityClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// IdentityMiddleware resuelve el dueño desde un Bearer token opcional.
// La autenticación en sí es un colaborador externo: acá solo se valida la
// firma y se extrae el id. Sin header la sesión es anónima (sin historia
// ni guardado); un token presente pero inválido sí corta con 401.
func IdentityMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			c.Abort()
			return
		}
		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity not configured"})
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(header[len("Bearer "):])
		var claims identityClaims
		token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.UserID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ownerIDKey, claims.UserID)
		c.Next()
	}
}

// OwnerID devuelve el id del dueño autenticado, o "" si la sesión es anónima.
func OwnerID(c *gin.Context) string {
	val, ok := c.Get(ownerIDKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
