package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/sabaccdroid/sabacc-backend/internal/hub"
)

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code length: got %q", code)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatalf("codes are not random")
	}
}

func TestCreateTableEndpoint(t *testing.T) {
	h := hub.NewHub(context.Background(), hub.Options{}, zap.NewNop())
	router := SetupRoutes(h, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/tables?rounds=5&cards=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Code) != 6 {
		t.Fatalf("table code: got %q", body.Code)
	}
}

func TestHealthz(t *testing.T) {
	h := hub.NewHub(context.Background(), hub.Options{}, zap.NewNop())
	router := SetupRoutes(h, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
}
