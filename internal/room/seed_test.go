package room

import "testing"

func TestSeedRooms(t *testing.T) {
	seed := SeedRooms()
	if len(seed) != 5 {
		t.Fatalf("SeedRooms() returned %d rooms, want 5", len(seed))
	}

	ids := make(map[string]bool, len(seed))
	for _, rm := range seed {
		if ids[rm.ID] {
			t.Errorf("duplicate room id %q in seed", rm.ID)
		}
		ids[rm.ID] = true

		if !IsValidStatus(rm.Status) {
			t.Errorf("room %s has invalid seed status %q", rm.ID, rm.Status)
		}
		if rm.PricePerNight <= 0 {
			t.Errorf("room %s has non-positive price %v", rm.ID, rm.PricePerNight)
		}
		if rm.Number == "" || rm.Type == "" {
			t.Errorf("room %s is missing number or type", rm.ID)
		}
	}

	// room101 is the reference room used across the booking scenarios.
	if seed[0].ID != "room101" || seed[0].PricePerNight != 80 || seed[0].Status != StatusAvailable {
		t.Errorf("room101 seed = %+v, want available at 80/night", seed[0])
	}
}
