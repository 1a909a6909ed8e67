package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sudoku-engine/pkg/config"

	"github.com/gin-gonic/gin"
)

const easyGrid = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		JWTSecret:               "test-secret-key-that-is-at-least-32-chars",
		DefaultTargetDifficulty: 50,
		DefaultTolerance:        10,
		DefaultMaxAttempts:      20,
	}
	RegisterRoutes(r, cfg)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("status = %v, want ok", response["status"])
	}
}

func TestParseGridHandler(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/parse", map[string]interface{}{"grid": easyGrid})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSolveHandlerSolvesEasyGrid(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/solve", map[string]interface{}{"grid": easyGrid})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if response["solved"] != true {
		t.Errorf("expected solved=true, got %v", response["solved"])
	}
}

func TestIsUniqueHandler(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/unique", map[string]interface{}{"grid": easyGrid})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestConflictsHandlerDetectsDuplicateRow(t *testing.T) {
	router := setupRouter()
	digits := make([]int, 81)
	digits[0] = 5
	digits[1] = 5

	w := postJSON(t, router, "/api/conflicts", map[string]interface{}{"digits": digits})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	conflicts, ok := response["conflicts"].([]interface{})
	if !ok || len(conflicts) == 0 {
		t.Errorf("expected non-empty conflicts, got %v", response["conflicts"])
	}
}

func TestHintHandlerReturnsAHint(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/hint", map[string]interface{}{"grid": easyGrid})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if response["hint"] == nil {
		t.Error("expected a hint for a partially filled easy grid")
	}
}

func TestSolveWithHintsHandler(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/solve_with_hints", map[string]interface{}{"grid": easyGrid})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if response["success"] != true {
		t.Errorf("expected success=true, got %v", response["success"])
	}
}

func TestEvaluateDifficultyHandler(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/difficulty", map[string]interface{}{"grid": easyGrid})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if response["difficulty"] == nil || response["category"] == nil {
		t.Errorf("expected difficulty and category in response, got %v", response)
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	router := setupRouter()
	values := make([]int, 81)
	for i := range values {
		values[i] = (i % 9) + 1
	}

	w := postJSON(t, router, "/api/serialize", map[string]interface{}{"values": values})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var serialized map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &serialized); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	compact, ok := serialized["compact"].(string)
	if !ok || compact == "" {
		t.Fatalf("expected a non-empty compact string, got %v", serialized["compact"])
	}

	w2 := postJSON(t, router, "/api/deserialize", map[string]interface{}{"compact": compact})
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
}

func TestGenerateWithCluesHandler(t *testing.T) {
	router := setupRouter()
	seed := 7
	w := postJSON(t, router, "/api/generate/clues", map[string]interface{}{"clues": 30, "seed": seed})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	givens, ok := response["givens"].([]interface{})
	if !ok || len(givens) != 81 {
		t.Fatalf("expected 81 givens, got %v", response["givens"])
	}
}

func TestGenerateByCategoryHandler(t *testing.T) {
	router := setupRouter()
	seed := 11
	w := postJSON(t, router, "/api/generate/category", map[string]interface{}{
		"category":     "trivial",
		"seed":         seed,
		"max_attempts": 8,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSessionStartHandler(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid session start",
			body: map[string]interface{}{
				"seed":      "test-seed",
				"category":  "basic",
				"device_id": "test-device-123",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing seed",
			body: map[string]interface{}{
				"category":  "basic",
				"device_id": "test-device-123",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/session/start", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func getValidToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := postJSON(t, router, "/api/session/start", map[string]interface{}{
		"seed":      "test-seed",
		"category":  "basic",
		"device_id": "test-device-123",
	})
	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	token, _ := response["token"].(string)
	return token
}

func TestValidateBoardHandler(t *testing.T) {
	router := setupRouter()
	token := getValidToken(t, router)

	validBoard := make([]int, 81)
	validBoard[0] = 5
	validBoard[1] = 3
	validBoard[4] = 7

	conflictBoard := make([]int, 81)
	conflictBoard[0] = 5
	conflictBoard[1] = 5

	tests := []struct {
		name      string
		board     []int
		token     string
		wantValid bool
		wantOK    bool
	}{
		{name: "valid board", board: validBoard, token: token, wantValid: true, wantOK: true},
		{name: "conflicting board", board: conflictBoard, token: token, wantValid: false, wantOK: true},
		{name: "bad token", board: validBoard, token: "invalid-token", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/validate", map[string]interface{}{
				"token": tt.token,
				"board": tt.board,
			})
			if tt.wantOK {
				if w.Code != http.StatusOK {
					t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
				}
				var response map[string]interface{}
				_ = json.Unmarshal(w.Body.Bytes(), &response)
				if response["valid"] != tt.wantValid {
					t.Errorf("valid = %v, want %v", response["valid"], tt.wantValid)
				}
			} else if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}
