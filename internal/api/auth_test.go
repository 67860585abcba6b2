package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestLogin_Guest(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	body := `{"email": "guest@example.com", "password": "anything", "role": "guest"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", strings.NewReader(body))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp tokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.AccessToken == "" {
		t.Error("expected a non-empty access token")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token_type = %q, want Bearer", resp.TokenType)
	}
	if resp.User == nil || resp.User.Email != "guest@example.com" {
		t.Errorf("user = %+v, want guest@example.com", resp.User)
	}
}

func TestLogin_RoleMismatch(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	// Guest account logging in as admin must be rejected.
	body := `{"email": "guest@example.com", "password": "anything", "role": "admin"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", strings.NewReader(body))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	body := `{"email": "nobody@example.com", "password": "x", "role": "guest"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", strings.NewReader(body))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestLogin_InvalidRole(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	body := `{"email": "guest@example.com", "password": "x", "role": "superuser"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", strings.NewReader(body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestLogin_TokenWorksOnProtectedRoute(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	body := `{"email": "guest@example.com", "password": "x", "role": "guest"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", strings.NewReader(body))
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d; body: %s", w.Code, w.Body.String())
	}

	var resp tokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/rooms", resp.AccessToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("rooms status with fresh token = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRegister_NewGuest(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	body := `{"name": "Jane Roe", "email": "jane@example.com", "password": "hunter22"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", strings.NewReader(body))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp tokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.User == nil || resp.User.Role != "guest" {
		t.Errorf("registered role = %v, want guest", resp.User)
	}
	if resp.AccessToken == "" {
		t.Error("expected registration to log the user in")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	body := `{"name": "Imposter", "email": "GUEST@example.com", "password": "hunter22"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", strings.NewReader(body))

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	body := `{"name": "Jane", "email": "not-an-email", "password": "hunter22"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", strings.NewReader(body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestMe(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", guestToken(t, srv), nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["email"] != "guest@example.com" {
		t.Errorf("email = %v, want guest@example.com", resp["email"])
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Error("password hash must never be serialised")
	}
}

func TestWSTicket_SingleUse(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/ws-ticket", guestToken(t, srv), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ticket status = %d; body: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ticket, _ := resp["ticket"].(string)
	if ticket == "" {
		t.Fatal("expected a non-empty ticket")
	}

	entry, ok := srv.tickets.validate(ticket)
	if !ok {
		t.Fatal("first validate should succeed")
	}
	if entry.userID != "guest1" {
		t.Errorf("ticket userID = %q, want guest1", entry.userID)
	}

	if _, ok := srv.tickets.validate(ticket); ok {
		t.Error("tickets must be single-use")
	}
}
