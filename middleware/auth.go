package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/config"
	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "currentUser"

// GenerateToken issues a signed JWT for the user
func GenerateToken(userID string, rememberMe bool) (string, error) {
	ttl := 24 * time.Hour
	if rememberMe {
		ttl = 30 * 24 * time.Hour
	}
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// ParseToken validates a JWT and returns the user ID it carries
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}

// RevokeToken denylists a token until it would have expired anyway
func RevokeToken(tokenString string, ttl time.Duration) {
	if database.Redis == nil {
		return
	}
	database.Redis.Set(context.Background(), "revoked:"+tokenString, "1", ttl)
}

func tokenRevoked(tokenString string) bool {
	if database.Redis == nil {
		return false
	}
	exists, err := database.Redis.Exists(context.Background(), "revoked:"+tokenString).Result()
	return err == nil && exists > 0
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware resolves the caller's identity once per request. This is
// the single identity-resolution point: handlers and services only ever see
// the resolved user.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided", "code": "Unauthorized"})
			return
		}
		if tokenRevoked(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "code": "Unauthorized"})
			return
		}

		userID, err := ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "code": "Unauthorized"})
			return
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found", "code": "Unauthorized"})
			return
		}
		if user.Blocked {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is blocked", "code": "Forbidden"})
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// GetUserFromRequest returns the resolved caller. It writes the 401 itself
// so handlers can simply return on error.
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(userContextKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "Unauthorized"})
		return nil, errors.New("no authenticated user")
	}
	user, ok := value.(*models.User)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "Unauthorized"})
		return nil, errors.New("no authenticated user")
	}
	return user, nil
}
