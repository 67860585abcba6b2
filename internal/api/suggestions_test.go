package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/nerrad567/accesshub-core/internal/advisor"
)

// stubAdvisor returns a canned suggestion or error.
type stubAdvisor struct {
	suggestion *advisor.Suggestion
	err        error
	lastInput  advisor.SuggestionInput
}

func (a *stubAdvisor) Suggest(_ context.Context, in advisor.SuggestionInput) (*advisor.Suggestion, error) {
	a.lastInput = in
	if a.err != nil {
		return nil, a.err
	}
	return a.suggestion, nil
}

func TestSuggest(t *testing.T) {
	srv := testServer(t)
	stub := &stubAdvisor{suggestion: &advisor.Suggestion{
		SuggestedRoom: "Room 202 (Family Room)",
		Reasoning:     "Sleeps four and has a kitchenette.",
	}}
	srv.advisor = stub
	router := srv.buildRouter()

	body := `{"preferences": "travelling with two kids, need space"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/suggestions", guestToken(t, srv), strings.NewReader(body))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var got advisor.Suggestion
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.SuggestedRoom != "Room 202 (Family Room)" {
		t.Errorf("suggested_room = %q", got.SuggestedRoom)
	}

	// The handler feeds current availability to the advisor.
	if !strings.Contains(stub.lastInput.RoomAvailability, "202") {
		t.Errorf("availability %q does not mention room 202", stub.lastInput.RoomAvailability)
	}
	if stub.lastInput.GuestPreferences != "travelling with two kids, need space" {
		t.Errorf("preferences = %q", stub.lastInput.GuestPreferences)
	}
}

func TestSuggest_AdvisorDown(t *testing.T) {
	srv := testServer(t)
	srv.advisor = &stubAdvisor{err: errors.New("connection refused")}
	router := srv.buildRouter()

	body := `{"preferences": "quiet room"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/suggestions", guestToken(t, srv), strings.NewReader(body))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
}

func TestSuggest_AdvisorDisabled(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	body := `{"preferences": "quiet room"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/suggestions", guestToken(t, srv), strings.NewReader(body))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestSuggest_MissingPreferences(t *testing.T) {
	srv := testServer(t)
	srv.advisor = &stubAdvisor{suggestion: &advisor.Suggestion{SuggestedRoom: "x"}}
	router := srv.buildRouter()

	w := doRequest(t, router, http.MethodPost, "/api/v1/suggestions", guestToken(t, srv), strings.NewReader(`{}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
