package middlewares

import (
	"net/http"
	"strings"
	"time"

	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	claimsKey     = "claims"
	employeeIDKey = "employeeId"
	roleKey       = "role"
)

func parseJwt(tokenStr string, jwtSecret []byte) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	return token, err
}

// Authentication checks for a valid Bearer token (header or cookie)
// and places the verified employee identity into the context.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Try to get from cookie
			cookie, err := c.Cookie("attendly.ApplicationCookie")
			if err != nil {
				// Cookie not found either
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = parts[1]
		}

		token, err := parseJwt(tokenStr, jwtSecret)

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid token claims"))
			return
		}

		if exp, ok := claims["exp"].(float64); ok && int64(exp) < time.Now().Unix() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("token expired"))
			return
		}

		id, ok := claims["nameid"].(float64)
		if !ok || id <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("token carries no employee identity"))
			return
		}

		c.Set(claimsKey, claims)
		c.Set(employeeIDKey, uint(id))
		if role, ok := claims[roleKey].(string); ok {
			c.Set(roleKey, role)
		}

		c.Next()
	}
}

// EmployeeID returns the verified employee id set by Authentication.
func EmployeeID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(employeeIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// RequireAdmin gates a route on the admin role claim.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role := c.GetString(roleKey); role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("admin access required"))
			return
		}
		c.Next()
	}
}
