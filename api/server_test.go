// Package api - HTTP contract tests
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logirate/core/catalog"
	"logirate/core/proposal"
	"logirate/db"
)

func testServer(t *testing.T) (*Server, *db.Memory) {
	t.Helper()
	mem := db.NewMemory()
	materializer := proposal.NewMaterializer(mem, mem, nil)
	return NewServer("test", catalog.Default(), materializer, nil), mem
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("%s %s: invalid JSON response: %v\n%s", method, path, err, rec.Body.String())
	}
	return rec, decoded
}

func TestQuoteEndpoint(t *testing.T) {
	s, _ := testServer(t)

	rec, body := doJSON(t, s, http.MethodPost, "/quote",
		`{"area":"100","period_days":30,"rate_key":"ambient-general"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", rec.Code, body)
	}

	breakdown := body["breakdown"].(map[string]interface{})
	if got := breakdown["total_value"]; got != "2750.00" {
		t.Errorf("total_value = %v, want 2750.00", got)
	}
	if got := breakdown["admin_fee"]; got != "250.00" {
		t.Errorf("admin_fee = %v, want 250.00", got)
	}
}

func TestQuoteEndpointRejectsNegative(t *testing.T) {
	s, _ := testServer(t)

	rec, body := doJSON(t, s, http.MethodPost, "/quote",
		`{"area":"-5","period_days":30,"rate_key":"ambient-general"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %v", rec.Code, body)
	}

	errBody := body["error"].(map[string]interface{})
	if errBody["code"] != "INVALID_REQUEST" {
		t.Errorf("code = %v, want INVALID_REQUEST", errBody["code"])
	}
	if errBody["field"] != "area" {
		t.Errorf("field = %v, want area", errBody["field"])
	}
}

func TestGetRate(t *testing.T) {
	s, _ := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/rates/ambient-general", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", rec.Code, body)
	}
	if body["base_rate"] != "25.00" {
		t.Errorf("base_rate = %v, want 25.00", body["base_rate"])
	}

	rec, body = doJSON(t, s, http.MethodGet, "/rates/no-such-key", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %v", rec.Code, body)
	}
}

func TestListRatesByCategory(t *testing.T) {
	s, _ := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/rates?category=ambient", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", rec.Code, body)
	}
	rates := body["rates"].([]interface{})
	if len(rates) == 0 {
		t.Fatal("expected ambient entries")
	}
	for _, r := range rates {
		if cat := r.(map[string]interface{})["category"]; cat != "ambient" {
			t.Errorf("category = %v, want ambient", cat)
		}
	}

	// Unknown category is an empty list, not an error
	rec, body = doJSON(t, s, http.MethodGet, "/rates?category=unknown", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", rec.Code, body)
	}
	if count := body["count"].(float64); count != 0 {
		t.Errorf("count = %v, want 0", count)
	}
}

func TestCreateProposal(t *testing.T) {
	s, mem := testServer(t)

	rec, body := doJSON(t, s, http.MethodPost, "/proposals", `{
		"request": {"area":"50","period_days":15,"rate_key":"frozen-deep"},
		"contact": {"name":"ACME Ltda","email":"compras@acme.com.br"},
		"actor_id": "user-9"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %v", rec.Code, body)
	}
	if body["id"] == "" {
		t.Error("expected assigned proposal id")
	}
	if body["validity_days"].(float64) != 15 {
		t.Errorf("validity_days = %v, want 15", body["validity_days"])
	}

	if got := len(mem.Proposals()); got != 1 {
		t.Fatalf("stored proposals = %d, want 1", got)
	}
	if mem.UsageCount("user-9") != 1 {
		t.Errorf("usage count = %d, want 1", mem.UsageCount("user-9"))
	}
}

func TestCreateProposalRequiresContact(t *testing.T) {
	s, mem := testServer(t)

	rec, body := doJSON(t, s, http.MethodPost, "/proposals", `{
		"request": {"area":"50","period_days":15,"rate_key":"frozen-deep"},
		"contact": {}
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %v", rec.Code, body)
	}
	errBody := body["error"].(map[string]interface{})
	if errBody["code"] != "VALIDATION_ERROR" {
		t.Errorf("code = %v, want VALIDATION_ERROR", errBody["code"])
	}
	if len(mem.Proposals()) != 0 {
		t.Error("no partial writes on validation failure")
	}
}

func TestHealth(t *testing.T) {
	s, _ := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", rec.Code, body)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
}
