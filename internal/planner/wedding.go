package planner

import (
	"context"

	"github.com/planora/wedding-planner/internal/model"
)

// CreateWeddingInput carries the fields of a wedding creation request.
type CreateWeddingInput struct {
	CoupleNames []string
	Date        string
	Budget      uint64
	Location    string
	GuestCount  uint64
}

// CreateWedding creates a new wedding in planning status with all nested
// collections empty. The guard matches the reference behavior exactly:
// the request is rejected only when every field is simultaneously
// empty or zero.
func (p *Planner) CreateWedding(ctx context.Context, in CreateWeddingInput) (model.Wedding, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(in.CoupleNames) == 0 && in.Date == "" && in.Budget == 0 && in.Location == "" && in.GuestCount == 0 {
		return model.Wedding{}, Errorf(KindInvalidInput, "ensure all required fields are provided")
	}

	id, err := p.ids.Next(ctx)
	if err != nil {
		return model.Wedding{}, err
	}
	wedding := model.Wedding{
		ID:          id,
		CoupleNames: in.CoupleNames,
		Date:        in.Date,
		Budget:      in.Budget,
		Location:    in.Location,
		GuestCount:  in.GuestCount,
		Vendors:     []model.VendorBooking{},
		Timeline:    []model.TimelineItem{},
		Tasks:       []model.Task{},
		GuestList:   []model.Guest{},
		Registry:    []model.RegistryItem{},
		Status:      model.WeddingPlanning,
	}
	if err := p.weddings.Put(ctx, id, wedding); err != nil {
		return model.Wedding{}, err
	}
	return wedding, nil
}

// BookVendorInput carries the fields of a booking request.
type BookVendorInput struct {
	VendorID          uint64
	WeddingID         uint64
	WeddingOffer      uint64
	AdditionalDetails *string
}

// BookVendorResult is the success payload of BookVendor.
type BookVendorResult struct {
	Wedding model.Wedding       `json:"wedding"`
	Vendor  model.Vendor        `json:"vendor"`
	Booking model.VendorBooking `json:"booking"`
}

// BookVendor appends a pending booking to the wedding and records the
// wedding id on the vendor's back-reference list. Both aggregates must
// exist and the wedding's date must appear in the vendor's availability
// set; all checks happen before either store is written. The two puts are
// not one atomic transaction — no operation spans two aggregates
// transactionally — and the wedding is persisted first, matching the
// reference ordering.
func (p *Planner) BookVendor(ctx context.Context, in BookVendorInput) (BookVendorResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, in.WeddingID)
	if err != nil {
		return BookVendorResult{}, err
	}
	vendor, err := p.getVendor(ctx, in.VendorID)
	if err != nil {
		return BookVendorResult{}, err
	}
	if !vendor.AvailableOn(wedding.Date) {
		return BookVendorResult{}, Errorf(KindDateUnavailable, "vendor not available on wedding date %s", wedding.Date)
	}

	booking := model.VendorBooking{
		VendorID:          in.VendorID,
		WeddingID:         in.WeddingID,
		WeddingOffer:      in.WeddingOffer,
		AdditionalDetails: in.AdditionalDetails,
		Status:            model.BookingPending,
		Date:              wedding.Date,
	}

	updatedWedding := wedding.Clone()
	updatedWedding.Vendors = append(updatedWedding.Vendors, booking)
	if err := p.weddings.Put(ctx, in.WeddingID, updatedWedding); err != nil {
		return BookVendorResult{}, err
	}

	updatedVendor := vendor.Clone()
	updatedVendor.Bookings = append(updatedVendor.Bookings, wedding.ID)
	if err := p.vendors.Put(ctx, in.VendorID, updatedVendor); err != nil {
		return BookVendorResult{}, err
	}

	return BookVendorResult{Wedding: updatedWedding, Vendor: updatedVendor, Booking: booking}, nil
}

// CancelVendorBooking removes every booking for vendorID from the
// wedding's booking list. The vendor's back-reference list is deliberately
// left untouched; the asymmetry is preserved reference behavior.
func (p *Planner) CancelVendorBooking(ctx context.Context, weddingID, vendorID uint64) (model.Wedding, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.Wedding{}, err
	}

	updated := wedding.Clone()
	kept := updated.Vendors[:0]
	for _, b := range updated.Vendors {
		if b.VendorID != vendorID {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(wedding.Vendors) {
		return model.Wedding{}, Errorf(KindVendorNotFound, "vendor with id=%d not booked for this wedding", vendorID)
	}
	updated.Vendors = kept

	if err := p.weddings.Put(ctx, weddingID, updated); err != nil {
		return model.Wedding{}, err
	}
	return updated, nil
}
