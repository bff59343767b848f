// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a vendor confirms a booking. It
// carries enough for downstream consumers to log or notify without querying
// the primary store.
type BookingConfirmedEvent struct {
	VendorID     uint64 `json:"vendor_id"`
	VendorName   string `json:"vendor_name"`
	VendorOwner  uint64 `json:"vendor_owner"`
	WeddingID    uint64 `json:"wedding_id"`
	WeddingDate  string `json:"wedding_date"`
	WeddingOffer uint64 `json:"wedding_offer"`
	ConfirmedAt  string `json:"confirmed_at"`
}

// RSVPApprovedEvent is published when a guest's RSVP is confirmed and a
// table assigned.
type RSVPApprovedEvent struct {
	WeddingID  uint64 `json:"wedding_id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	PlusOne    bool   `json:"plus_one"`
	Table      string `json:"table"`
	ApprovedAt string `json:"approved_at"`
}
