package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and sets user_id and
// username on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		if err := resolveIdentity(c, authHeader); err != nil {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth resolves the submitter's identity when a valid token is
// present and passes the request through untouched otherwise. Report
// submission is open to anonymous riders, but an authenticated one
// gets recorded as created_by.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader != "" {
			if err := resolveIdentity(c, authHeader); err != nil {
				log.Printf("Ignoring invalid token on open endpoint: %v", err)
			}
		}
		c.Next()
	}
}

// resolveIdentity parses a "Bearer <token>" header and stores the
// claims on the context.
func resolveIdentity(c *gin.Context, authHeader string) error {
	tokenString := authHeader
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = authHeader[7:]
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("invalid token claims")
	}

	userID, exists := claims["user_id"]
	if !exists {
		return fmt.Errorf("token has no user_id claim")
	}
	c.Set("user_id", userID)

	if username, exists := claims["username"]; exists {
		c.Set("username", username)
	}

	return nil
}
