// vocab_test.go — Tests for the drill endpoint and stats accuracy helper (LK-11).
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/lingokit/lingo-api/internal/database"
	"github.com/lingokit/lingo-api/internal/models"
)

// TestCreateDrillDatabaseError verifies that a database failure surfaces as
// 500 database_error, not as 404. sqlx.Open doesn't dial, so pointing it at
// a closed port makes the first query fail like a real outage.
func TestCreateDrillDatabaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	raw, err := sqlx.Open("postgres", "postgres://127.0.0.1:1/lingo?sslmode=disable&connect_timeout=1")
	if err != nil {
		t.Fatalf("sqlx.Open: %v", err)
	}
	defer raw.Close()
	h := &Handler{DB: &database.DB{DB: raw}}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/drills",
		strings.NewReader(`{"set_slug":"hsk1/food"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateDrill(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusInternalServerError, w.Body.String())
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v", err)
	}
	if resp.Error != "database_error" {
		t.Errorf("error = %q, want %q", resp.Error, "database_error")
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		answered int
		want     float64
	}{
		{"zero answered", 0, 0, 0},
		{"all correct", 10, 10, 100},
		{"none correct", 0, 10, 0},
		{"half", 5, 10, 50},
		{"rounds to one decimal", 2, 3, 66.7},
		{"one of seven", 1, 7, 14.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := accuracy(tt.correct, tt.answered); got != tt.want {
				t.Errorf("accuracy(%d, %d) = %v, want %v", tt.correct, tt.answered, got, tt.want)
			}
		})
	}
}
