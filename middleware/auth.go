package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authPathPrefix = "/api/auth"

// ValidateToken gates every /api route behind a valid bearer token. Auth
// endpoints pass through unchecked and CORS preflights short-circuit with 200.
func ValidateToken(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusOK)
		return
	}

	if strings.HasPrefix(c.Request.URL.Path, authPathPrefix) {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a Bearer token"})
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		reason := "token is not valid"
		if err != nil {
			reason = err.Error()
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + reason})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	// Forward whatever claims exist; handlers decide what they need.
	if userID, ok := claims["user_id"]; ok {
		c.Set("user_id", userID)
	}
	if role, ok := claims["role"]; ok {
		c.Set("role", role)
	}

	c.Next()
}

// CurrentUserID extracts the authenticated user's id set by ValidateToken.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	// JWT numeric claims decode as float64.
	f, ok := val.(float64)
	if !ok {
		return 0, false
	}
	return uint(f), true
}
