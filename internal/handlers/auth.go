// auth.go handles device token issuance HTTP endpoints (LK-4).
//
// There are no user accounts. A device presents its identifier plus the
// shared access secret (if the server has one configured) and receives a
// short-lived JWT bound to that identifier.
package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/lingokit/lingo-api/internal/middleware"
	"github.com/lingokit/lingo-api/internal/models"
	"github.com/lingokit/lingo-api/internal/services/prefs"
	"github.com/lingokit/lingo-api/internal/services/vocab"
)

// IssueToken validates the shared secret and signs a device token.
// POST /api/v1/auth/token
func (h *Handler) IssueToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "device_id is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := vocab.ValidateDeviceID(req.DeviceID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_device_id",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	if !h.secretMatches(req.Secret) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_secret",
			Message: "Access secret is missing or incorrect",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	device, err := h.DB.UpsertDevice(c.Request.Context(), req.DeviceID)
	if err != nil {
		log.Printf("❌ Failed to upsert device %s: %v", req.DeviceID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to register device",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	token, expiresAt, err := middleware.GenerateDeviceToken(device.DeviceID, h.JWTSecret, time.Duration(h.TokenTTLMin)*time.Minute)
	if err != nil {
		log.Printf("❌ Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_error",
			Message: "Failed to generate token",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Device:    *device,
	})
}

// RefreshToken issues a fresh token for an authenticated device.
// POST /api/v1/auth/refresh
//
// Clients call this before their current token expires to maintain the
// session without re-presenting the shared secret.
func (h *Handler) RefreshToken(c *gin.Context) {
	device := middleware.GetDevice(c)
	if device == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	token, expiresAt, err := middleware.GenerateDeviceToken(device.DeviceID, h.JWTSecret, time.Duration(h.TokenTTLMin)*time.Minute)
	if err != nil {
		log.Printf("❌ Failed to refresh token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_error",
			Message: "Failed to refresh token",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Device:    *device,
	})
}

// GetDevice returns the current authenticated device plus its resolved
// theme. The client reports its OS dark-mode preference via ?prefers_dark=true
// so a "system" theme can be resolved server-side.
// GET /api/v1/auth/device
func (h *Handler) GetDevice(c *gin.Context) {
	device := middleware.GetDevice(c)
	if device == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	prefersDark := c.Query("prefers_dark") == "true"
	c.JSON(http.StatusOK, gin.H{
		"device":         device,
		"resolved_theme": prefs.ResolveTheme(device.Theme, prefersDark),
	})
}

// UpdateDevice updates device preferences (label, theme).
// PATCH /api/v1/auth/device
func (h *Handler) UpdateDevice(c *gin.Context) {
	device := middleware.GetDevice(c)
	if device == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	var req models.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Body must be JSON with optional label and theme fields",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if req.Theme != nil {
		if !models.ValidThemes[*req.Theme] {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_theme",
				Message: "Theme must be one of: light, dark, system",
				Code:    http.StatusBadRequest,
			})
			return
		}
		device.Theme = *req.Theme
	}
	if req.Label != nil {
		device.Label = strings.TrimSpace(*req.Label)
	}

	if err := h.DB.UpdateDevicePrefs(c.Request.Context(), device); err != nil {
		log.Printf("❌ Failed to update device %s: %v", device.DeviceID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to update device",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, device)
}

// secretMatches compares the presented secret against the configured one.
// An empty configured secret means open access (dev mode). A configured
// value starting with "$2" is a bcrypt hash; otherwise the comparison is
// constant-time over the raw strings.
func (h *Handler) secretMatches(presented string) bool {
	if h.AccessSecret == "" {
		return true
	}
	if strings.HasPrefix(h.AccessSecret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(h.AccessSecret), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.AccessSecret), []byte(presented)) == 1
}
