package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/accesshub-core/internal/booking"
	"github.com/nerrad567/accesshub-core/internal/identity"
)

// bookingDateLayout is the wire format for check-in and check-out dates.
const bookingDateLayout = "2006-01-02"

// createBookingRequest is the request body for POST /bookings.
type createBookingRequest struct {
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// handleCreateBooking books a room for the authenticated guest.
//
// The ledger performs the availability check and the room status flip as a
// single atomic step, so concurrent requests for the same room admit exactly
// one winner.
func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeUnauthorized(w, "authentication required")
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.RoomID == "" {
		writeBadRequest(w, "room_id is required")
		return
	}

	checkIn, err := time.Parse(bookingDateLayout, req.CheckIn)
	if err != nil {
		writeBadRequest(w, "check_in must be a date in YYYY-MM-DD format")
		return
	}
	checkOut, err := time.Parse(bookingDateLayout, req.CheckOut)
	if err != nil {
		writeBadRequest(w, "check_out must be a date in YYYY-MM-DD format")
		return
	}

	b, err := s.bookings.AddBooking(claims.Subject, claims.Name, req.RoomID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrRoomUnavailable):
			writeConflict(w, "room is not available")
		case errors.Is(err, booking.ErrInvalidStay):
			writeBadRequest(w, "check_out must be after check_in")
		default:
			s.logger.Error("booking failed", "room_id", req.RoomID, "guest_id", claims.Subject, "error", err)
			writeInternalError(w, "failed to create booking")
		}
		return
	}

	writeJSON(w, http.StatusCreated, b)
}

// handleListBookings returns the caller's bookings. Admins see every booking.
func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeUnauthorized(w, "authentication required")
		return
	}

	var bookings []booking.Booking
	if claims.Role == identity.RoleAdmin {
		bookings = s.bookings.List()
	} else {
		bookings = s.bookings.BookingsForGuest(claims.Subject)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// handleGetBooking returns a single booking. Guests can only read their own.
func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeUnauthorized(w, "authentication required")
		return
	}

	id := chi.URLParam(r, "id")
	b, err := s.bookings.GetByID(id)
	if err != nil {
		writeNotFound(w, "booking not found")
		return
	}

	if claims.Role != identity.RoleAdmin && b.GuestID != claims.Subject {
		writeForbidden(w, "booking belongs to another guest")
		return
	}

	writeJSON(w, http.StatusOK, b)
}
