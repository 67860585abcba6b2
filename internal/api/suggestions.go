package api

import (
	"encoding/json"
	"net/http"

	"github.com/nerrad567/accesshub-core/internal/advisor"
)

// historicalContext is the booking-history summary fed to the advisor.
// The prototype has no analytics pipeline, so a fixed observation stands in.
const historicalContext = "Guests with similar preferences often booked suites and deluxe rooms."

// suggestionRequest is the request body for POST /suggestions.
type suggestionRequest struct {
	Preferences string `json:"preferences"`
}

// handleSuggest asks the advisor for a room recommendation based on the
// guest's stated preferences and current availability.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if s.advisor == nil {
		writeError(w, http.StatusServiceUnavailable, ErrCodeUpstream, "suggestion advisor is not configured")
		return
	}

	var req suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Preferences == "" {
		writeBadRequest(w, "preferences is required")
		return
	}

	input := advisor.SuggestionInput{
		GuestPreferences: req.Preferences,
		RoomAvailability: advisor.DescribeAvailability(s.rooms.List()),
		HistoricalData:   historicalContext,
	}

	suggestion, err := s.advisor.Suggest(r.Context(), input)
	if err != nil {
		s.logger.Error("suggestion request failed", "error", err)
		writeBadGateway(w, "suggestion advisor unavailable")
		return
	}

	writeJSON(w, http.StatusOK, suggestion)
}
