package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/accesshub-core/internal/devicelink"
)

// linkCommandRequest is the request body for POST /rooms/{id}/link/commands.
type linkCommandRequest struct {
	Command string `json:"command"`
}

// handleGetLink returns the current controller link state for a room.
func (s *Server) handleGetLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	state, err := s.links.State(id)
	if err != nil {
		writeNotFound(w, "room not found")
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// handleLinkConnect establishes the controller link for a room.
//
// The handshake takes the configured connect delay; the request blocks until
// the link settles, while the intermediate "Connecting..." state goes out on
// the devicelink WebSocket channel.
func (s *Server) handleLinkConnect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.links.Connect(id); err != nil {
		writeNotFound(w, "room not found")
		return
	}

	state, err := s.links.State(id)
	if err != nil {
		writeInternalError(w, "failed to read link state")
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// handleLinkDisconnect tears down the controller link for a room.
func (s *Server) handleLinkDisconnect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.links.Disconnect(id); err != nil {
		writeNotFound(w, "room not found")
		return
	}

	state, err := s.links.State(id)
	if err != nil {
		writeInternalError(w, "failed to read link state")
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// handleLinkCommand sends a command over the controller link.
// The link must be connected; commands never implicitly connect.
func (s *Server) handleLinkCommand(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req linkCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Command == "" {
		writeBadRequest(w, "command is required")
		return
	}

	if err := s.links.SendCommand(id, req.Command); err != nil {
		switch {
		case errors.Is(err, devicelink.ErrLinkNotFound):
			writeNotFound(w, "room not found")
		case errors.Is(err, devicelink.ErrNotConnected):
			writeConflict(w, "controller link is not connected")
		default:
			s.logger.Error("link command failed", "room_id", id, "command", req.Command, "error", err)
			writeInternalError(w, "failed to send command")
		}
		return
	}

	state, err := s.links.State(id)
	if err != nil {
		writeInternalError(w, "failed to read link state")
		return
	}
	writeJSON(w, http.StatusOK, state)
}
