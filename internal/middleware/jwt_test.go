// jwt_test.go — Unit tests for device token generation and parsing.
//
// Token issuance is security-critical: if signing or validation breaks,
// every protected route breaks with it.
package middleware

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestGenerateAndParseDeviceToken(t *testing.T) {
	token, expiresAt, err := GenerateDeviceToken("dev_abc12345", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateDeviceToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateDeviceToken returned empty token")
	}

	// Expiry should be roughly one hour out
	if until := time.Until(expiresAt); until < 59*time.Minute || until > 61*time.Minute {
		t.Errorf("expiry %v not within expected window", until)
	}

	claims, err := ParseDeviceToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseDeviceToken failed: %v", err)
	}
	if claims.DeviceID != "dev_abc12345" {
		t.Errorf("DeviceID = %q, want %q", claims.DeviceID, "dev_abc12345")
	}
	if claims.Subject != "dev_abc12345" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "dev_abc12345")
	}
}

func TestParseDeviceTokenRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "wrong secret",
			setup: func(t *testing.T) string {
				token, _, err := GenerateDeviceToken("dev_abc12345", "other-secret", time.Hour)
				if err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				return token
			},
		},
		{
			name: "expired token",
			setup: func(t *testing.T) string {
				token, _, err := GenerateDeviceToken("dev_abc12345", testSecret, -time.Minute)
				if err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				return token
			},
		},
		{
			name: "garbage token",
			setup: func(t *testing.T) string {
				return "not.a.jwt"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tt.setup(t)
			if _, err := ParseDeviceToken(token, testSecret); err == nil {
				t.Error("ParseDeviceToken accepted an invalid token")
			}
		})
	}
}
