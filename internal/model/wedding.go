package model

// WeddingStatus tracks where a wedding sits in its planning lifecycle.
type WeddingStatus string

const (
	WeddingPlanning  WeddingStatus = "planning"
	WeddingUpcoming  WeddingStatus = "upcoming"
	WeddingCompleted WeddingStatus = "completed"
)

// Wedding is the second top-level aggregate. It exclusively owns every
// nested collection; none of the nested records is addressable outside its
// parent, and updates always replace the whole record.
//
// GuestCount is the seating capacity. Confirmed guests are weighted against
// it: a guest with a plus-one occupies two seats, a solo guest one.
type Wedding struct {
	ID          uint64          `json:"id"`
	CoupleNames []string        `json:"couple_names"`
	Date        string          `json:"date"`
	Budget      uint64          `json:"budget"`
	Location    string          `json:"location"`
	GuestCount  uint64          `json:"guest_count"`
	Vendors     []VendorBooking `json:"vendors"`
	Timeline    []TimelineItem  `json:"timeline"`
	Tasks       []Task          `json:"tasks"`
	GuestList   []Guest         `json:"guest_list"`
	Registry    []RegistryItem  `json:"registry"`
	Status      WeddingStatus   `json:"status"`
}

// ConfirmedSeats returns the seating load of already-confirmed guests,
// counting a plus-one as two seats and a solo guest as one.
func (w Wedding) ConfirmedSeats() uint64 {
	var seats uint64
	for _, g := range w.GuestList {
		if g.RSVPStatus != RSVPConfirmed {
			continue
		}
		if g.PlusOne {
			seats += 2
		} else {
			seats++
		}
	}
	return seats
}

// FindGuest returns the index of the guest with the given email, or -1.
func (w Wedding) FindGuest(email string) int {
	for i, g := range w.GuestList {
		if g.Email == email {
			return i
		}
	}
	return -1
}

// FindTask returns the index of the task with the given id, or -1.
func (w Wedding) FindTask(id uint64) int {
	for i, t := range w.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// FindRegistryItem returns the index of the registry item with the given
// name, or -1.
func (w Wedding) FindRegistryItem(name string) int {
	for i, it := range w.Registry {
		if it.Name == name {
			return i
		}
	}
	return -1
}

// FindBooking returns the index of the first booking for vendorID, or -1.
func (w Wedding) FindBooking(vendorID uint64) int {
	for i, b := range w.Vendors {
		if b.VendorID == vendorID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the wedding and all nested collections.
func (w Wedding) Clone() Wedding {
	cp := w
	cp.CoupleNames = append([]string(nil), w.CoupleNames...)
	cp.Vendors = append([]VendorBooking(nil), w.Vendors...)
	cp.Timeline = append([]TimelineItem(nil), w.Timeline...)
	cp.Tasks = append([]Task(nil), w.Tasks...)
	cp.GuestList = append([]Guest(nil), w.GuestList...)
	cp.Registry = append([]RegistryItem(nil), w.Registry...)
	return cp
}
