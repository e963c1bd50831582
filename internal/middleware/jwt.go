// jwt.go provides device token generation, parsing, and auth middleware (LK-4).
//
// Devices authenticate with short-lived HS256 JWTs whose subject is the
// client-supplied device identifier. There are no user accounts — the token
// is the whole identity.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lingokit/lingo-api/internal/database"
	"github.com/lingokit/lingo-api/internal/models"
)

const deviceContextKey = "device"

// DeviceClaims extends standard JWT claims with the device identifier.
type DeviceClaims struct {
	DeviceID string `json:"device_id"`
	jwt.RegisteredClaims
}

// GenerateDeviceToken creates a new JWT for a device with the given TTL.
// Returns the signed token and its expiry time.
func GenerateDeviceToken(deviceID, secret string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := DeviceClaims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   deviceID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseDeviceToken validates and parses a device token string.
func ParseDeviceToken(tokenString, secret string) (*DeviceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &DeviceClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*DeviceClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}

// DeviceAuth returns middleware that validates Bearer device tokens.
// It loads the device row and stores it in the context for handlers.
func DeviceAuth(db *database.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "Missing or invalid Authorization header. Use 'Bearer <token>'",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ParseDeviceToken(tokenString, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid or expired token",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		device, err := db.GetDevice(c.Request.Context(), claims.DeviceID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "Device not found",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		c.Set(deviceContextKey, device)

		// Update last_seen_at (fire and forget, don't block the request).
		// The request context is cancelled once the handler returns, so
		// detach from cancellation while keeping its values.
		go db.TouchDevice(context.WithoutCancel(c.Request.Context()), device.DeviceID)

		c.Next()
	}
}

// GetDevice retrieves the authenticated device from the request context.
// Call this in handlers after the DeviceAuth middleware has run.
func GetDevice(c *gin.Context) *models.Device {
	val, exists := c.Get(deviceContextKey)
	if !exists {
		return nil
	}
	device, ok := val.(*models.Device)
	if !ok {
		return nil
	}
	return device
}
