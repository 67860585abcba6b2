// Package room provides the Room Registry for AccessHub Core.
//
// The Room Registry is the canonical, in-memory catalogue of every
// bookable room: its occupancy status, nightly price, amenities, and the
// three in-room control toggles (light, air-conditioning, main power).
//
// The registry owns the Room records exclusively. The booking ledger
// mutates a room's status through the registry's CompareAndSetStatus
// primitive so that the availability check and the occupied write form a
// single critical section. The device link simulator identifies rooms by
// id but keeps its own state.
//
// There is no persistence: Initialize(SeedRooms()) at process start is the
// entire data lifecycle, and calling Initialize again is the only reset.
package room
