package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"gonzofleet/internal/config"
)

// Claims is the token payload: the staff id doubles as the subject.
type Claims struct {
	StaffID uint `json:"staff_id"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for a staff member. Expiry comes
// from JWT_EXPIRE_MINUTES (default 24h).
func GenerateToken(staffID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		StaffID: staffID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(staffID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.C.JWTExpireMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.C.JWTSecret))
}

// ValidateToken parses a token and returns the staff id it was issued
// for. Expired, malformed, or badly signed tokens all fail.
func ValidateToken(tokenStr string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.C.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.StaffID == 0 {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return claims.StaffID, nil
}

// RequireAuth ensures a valid bearer token is present and stores the
// staff id in the context for downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		staffID, err := ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("staff_id", staffID)
		c.Next()
	}
}
