package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-schedule/internal/config"
	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
)

const ContextBarberID = "barberID"

func abort(c *gin.Context, code, message string) {
	httperr.Unauthorized(c, code, message)
	c.Abort()
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, "missing_authorization_header", "Token de acesso ausente.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abort(c, "invalid_token", "Token inválido ou expirado.")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			abort(c, "invalid_token_claims", "Token inválido.")
			return
		}

		barberID, err := uuid.Parse(sub)
		if err != nil {
			abort(c, "invalid_token_payload", "Token inválido.")
			return
		}

		c.Set(ContextBarberID, barberID)
		c.Next()
	}
}

// BarberID returns the authenticated barber set by AuthMiddleware.
func BarberID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextBarberID).(uuid.UUID)
}
