package middleware

import (
	"net/http"
	"strings"

	"gas-service/internal/model"
	"gas-service/pkg/jwtutil"
	"gas-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// identity in the request context.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		c.Set("user", claims)
		log.Debug("Request authenticated",
			zap.Uint("user_id", claims.UserID),
			zap.String("role", claims.Role))

		return next(c)
	}
}

// RequireAdmin rejects requests from non-administrative users. It must run
// after AuthMiddleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		if claims.Role != model.RoleAdministrativo {
			logger.FromContext(c).Warn("Forbidden: administrative role required",
				zap.Uint("user_id", claims.UserID),
				zap.String("role", claims.Role))
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}

		return next(c)
	}
}

// CurrentUser retrieves the authenticated claims from the context.
func CurrentUser(c echo.Context) (*jwtutil.UserClaims, bool) {
	claims, ok := c.Get("user").(*jwtutil.UserClaims)
	return claims, ok
}
