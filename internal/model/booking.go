package model

// BookingStatus is the lifecycle of a vendor booking within a wedding.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingPaid      BookingStatus = "paid"
)

// VendorBooking links a vendor to a wedding. It is owned by the wedding
// aggregate. Date is copied from the wedding at booking time. The
// AdditionalDetails pointer is nil when the caller supplied none.
type VendorBooking struct {
	VendorID          uint64        `json:"vendor_id"`
	WeddingID         uint64        `json:"wedding_id"`
	WeddingOffer      uint64        `json:"wedding_offer"`
	AdditionalDetails *string       `json:"additional_details,omitempty"`
	Status            BookingStatus `json:"status"`
	Date              string        `json:"date"`
}
