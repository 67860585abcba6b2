// Package booking provides the Booking Ledger for AccessHub Core.
//
// The ledger exclusively owns all Booking records and holds a non-owning
// handle into the room registry. Creating a booking has exactly one
// cross-component side effect: the booked room is flipped to occupied.
// That flip and the availability check that precedes it are treated as a
// single transaction — see AddBooking.
package booking
