package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nerrad567/accesshub-core/internal/infrastructure/config"
	"github.com/nerrad567/accesshub-core/internal/room"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.AdvisorConfig{
		Enabled: true,
		URL:     srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 5,
	})
}

func TestSuggest_Success(t *testing.T) {
	var gotPrompt string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/generate" {
			t.Errorf("path = %q, want /v1/generate", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want Bearer test-key", got)
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		gotPrompt = req.Prompt

		resp := generateResponse{Text: `{"suggested_room": "102", "reasoning": "Quiet floor, matches preferences."}`}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	s, err := client.Suggest(context.Background(), SuggestionInput{
		GuestPreferences: "high floor, away from the lift",
		RoomAvailability: "Room 102 (Standard Double): $120/night",
		HistoricalData:   "similar guests often prefer higher floors",
	})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	if s.SuggestedRoom != "102" {
		t.Errorf("SuggestedRoom = %q, want 102", s.SuggestedRoom)
	}
	if s.Reasoning == "" {
		t.Error("Reasoning is empty")
	}
	// All three context fields must reach the prompt.
	for _, fragment := range []string{"high floor", "Room 102", "higher floors"} {
		if !strings.Contains(gotPrompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestSuggest_ServerError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	if _, err := client.Suggest(context.Background(), SuggestionInput{}); err == nil {
		t.Fatal("Suggest() expected error for 503 response, got nil")
	}
}

func TestSuggest_MalformedOutput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "not JSON", text: "I suggest room 102 because it is nice."},
		{name: "empty text", text: ""},
		{name: "missing suggested_room", text: `{"reasoning": "because"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(generateResponse{Text: tt.text})
			})

			if _, err := client.Suggest(context.Background(), SuggestionInput{}); err == nil {
				t.Fatal("Suggest() expected error for malformed output, got nil")
			}
		})
	}
}

func TestSuggest_Unreachable(t *testing.T) {
	client := NewClient(config.AdvisorConfig{
		URL:     "http://127.0.0.1:1", // nothing listens here
		Model:   "test-model",
		Timeout: 1,
	})

	if _, err := client.Suggest(context.Background(), SuggestionInput{}); err == nil {
		t.Fatal("Suggest() expected error for unreachable service, got nil")
	}
}

func TestDescribeAvailability(t *testing.T) {
	rooms := []room.Room{
		{Number: "101", Type: "Standard Single", Status: room.StatusAvailable,
			PricePerNight: 80, Amenities: []string{"Wifi", "TV"}},
		{Number: "103", Type: "Suite", Status: room.StatusOccupied,
			PricePerNight: 200, Amenities: []string{"Jacuzzi"}},
	}

	got := DescribeAvailability(rooms)
	if !strings.Contains(got, "Room 101") {
		t.Errorf("summary missing available room: %q", got)
	}
	if strings.Contains(got, "Room 103") {
		t.Errorf("summary includes occupied room: %q", got)
	}
	if !strings.Contains(got, "$80/night") {
		t.Errorf("summary missing price: %q", got)
	}
}

func TestDescribeAvailability_NoneAvailable(t *testing.T) {
	rooms := []room.Room{
		{Number: "103", Status: room.StatusOccupied},
	}
	if got := DescribeAvailability(rooms); got != "No rooms are currently available." {
		t.Errorf("DescribeAvailability() = %q", got)
	}
}
