package order

// Slot is one of the two daily admission windows. Each slot carries its own
// capacity and resets at the day boundary in the reference timezone.
type Slot string

const (
	SlotAM Slot = "AM"
	SlotPM Slot = "PM"
)

func (s Slot) String() string {
	return string(s)
}

func (s Slot) IsValid() bool {
	switch s {
	case SlotAM, SlotPM:
		return true
	default:
		return false
	}
}

// Sibling returns the other admission window of the same day.
func (s Slot) Sibling() Slot {
	if s == SlotAM {
		return SlotPM
	}
	return SlotAM
}

func ParseSlot(raw string) (Slot, bool) {
	s := Slot(raw)
	return s, s.IsValid()
}
