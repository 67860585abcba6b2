package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/accesshub-core/internal/room"
)

// setStatusRequest is the request body for PUT /rooms/{id}/status.
type setStatusRequest struct {
	Status room.Status `json:"status"`
}

// handleListRooms returns all rooms, optionally filtered by ?status=.
func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	var rooms []room.Room

	if filter := r.URL.Query().Get("status"); filter != "" {
		status := room.Status(filter)
		if !room.IsValidStatus(status) {
			writeBadRequest(w, "unknown status: "+filter)
			return
		}
		rooms = s.rooms.ListByStatus(status)
	} else {
		rooms = s.rooms.List()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// handleGetRoom returns a single room by ID.
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rm, err := s.rooms.GetByID(id)
	if err != nil {
		writeNotFound(w, "room not found")
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

// handleToggleControl flips one in-room control and returns the updated room.
//
// The main power switch is always reachable. Lights and air conditioning are
// driven through the room controller, so they respond only while the
// controller link is connected or the main power is on.
func (s *Server) handleToggleControl(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	control := room.ControlName(chi.URLParam(r, "control"))

	if !room.IsValidControl(control) {
		writeBadRequest(w, "unknown control: "+string(control))
		return
	}

	if control != room.ControlPower {
		rm, err := s.rooms.GetByID(id)
		if err != nil {
			writeNotFound(w, "room not found")
			return
		}

		linked := false
		if state, err := s.links.State(id); err == nil {
			linked = state.Connected
		}
		if !rm.Controls.Power && !linked {
			writeConflict(w, "main power is off and controller link is not connected")
			return
		}
	}

	updated, err := s.rooms.ToggleControl(id, control)
	if err != nil {
		switch {
		case errors.Is(err, room.ErrRoomNotFound):
			writeNotFound(w, "room not found")
		case errors.Is(err, room.ErrInvalidControl):
			writeBadRequest(w, "unknown control: "+string(control))
		default:
			s.logger.Error("control toggle failed", "room_id", id, "control", control, "error", err)
			writeInternalError(w, "failed to toggle control")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// handleSetRoomStatus overrides a room's status. Admin only.
func (s *Server) handleSetRoomStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := s.rooms.UpdateStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, room.ErrRoomNotFound):
			writeNotFound(w, "room not found")
		case errors.Is(err, room.ErrInvalidStatus):
			writeBadRequest(w, "status must be available, occupied, or maintenance")
		default:
			s.logger.Error("status update failed", "room_id", id, "error", err)
			writeInternalError(w, "failed to update status")
		}
		return
	}

	rm, err := s.rooms.GetByID(id)
	if err != nil {
		writeInternalError(w, "failed to load updated room")
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

// handleStats returns occupancy and service counters for the admin dashboard.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	counts := s.rooms.StatusCounts()

	connected := 0
	for _, state := range s.links.States() {
		if state.Connected {
			connected++
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"rooms": map[string]any{
			"total":       s.rooms.Count(),
			"available":   counts[room.StatusAvailable],
			"occupied":    counts[room.StatusOccupied],
			"maintenance": counts[room.StatusMaintenance],
		},
		"bookings":          s.bookings.Count(),
		"users":             s.users.Count(),
		"links_connected":   connected,
		"websocket_clients": s.hub.ClientCount(),
	})
}
