package planner

import (
	"context"

	"github.com/planora/wedding-planner/internal/model"
)

// RegisterVendorInput carries the fields of a vendor registration request.
type RegisterVendorInput struct {
	Name         string
	Category     model.Category
	Description  string
	ServiceCost  uint64
	Availability []string
	Portfolio    []string
}

// RegisterVendor creates a new vendor owned by the calling principal.
// Registration carries no cross-entity precondition: any authenticated
// caller may register. The vendor starts unverified with rating 0 and
// empty reviews and bookings.
func (p *Planner) RegisterVendor(ctx context.Context, owner uint64, in RegisterVendorInput) (model.Vendor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if in.Name == "" || in.Description == "" || in.ServiceCost == 0 {
		return model.Vendor{}, Errorf(KindInvalidInput, "name, description, and service cost are required")
	}
	if !in.Category.Valid() {
		return model.Vendor{}, Errorf(KindInvalidInput, "unknown vendor category %q", in.Category)
	}

	id, err := p.ids.Next(ctx)
	if err != nil {
		return model.Vendor{}, err
	}
	vendor := model.Vendor{
		ID:           id,
		Owner:        owner,
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		ServiceCost:  in.ServiceCost,
		Availability: in.Availability,
		Rating:       0,
		Reviews:      []model.Review{},
		Bookings:     []uint64{},
		Verified:     false,
		Portfolio:    in.Portfolio,
	}
	if err := p.vendors.Put(ctx, id, vendor); err != nil {
		return model.Vendor{}, err
	}
	return vendor, nil
}

// VerifyVendor marks a vendor as verified. The operation is deliberately
// not owner-gated; see verify-vendor-booking for the gated path.
func (p *Planner) VerifyVendor(ctx context.Context, vendorID uint64) (model.Vendor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	vendor, err := p.getVendor(ctx, vendorID)
	if err != nil {
		return model.Vendor{}, err
	}
	updated := vendor.Clone()
	updated.Verified = true
	if err := p.vendors.Put(ctx, vendorID, updated); err != nil {
		return model.Vendor{}, err
	}
	return updated, nil
}

// UpdateVendorAvailability replaces the vendor's availability set
// wholesale with newAvailability.
func (p *Planner) UpdateVendorAvailability(ctx context.Context, vendorID uint64, newAvailability []string) (model.Vendor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	vendor, err := p.getVendor(ctx, vendorID)
	if err != nil {
		return model.Vendor{}, err
	}
	updated := vendor.Clone()
	updated.Availability = newAvailability
	if err := p.vendors.Put(ctx, vendorID, updated); err != nil {
		return model.Vendor{}, err
	}
	return updated, nil
}

// VerifyVendorBooking confirms the booking for vendorID on the given
// wedding. Only the vendor's registering principal may confirm; every
// booking for the vendor on that wedding transitions to confirmed.
func (p *Planner) VerifyVendorBooking(ctx context.Context, caller, vendorID, weddingID uint64) (model.VendorBooking, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	vendor, err := p.getVendor(ctx, vendorID)
	if err != nil {
		return model.VendorBooking{}, err
	}
	if vendor.Owner != caller {
		return model.VendorBooking{}, Errorf(KindUnauthorizedAction, "you are not authorized to perform this action")
	}
	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.VendorBooking{}, err
	}
	idx := wedding.FindBooking(vendorID)
	if idx < 0 {
		return model.VendorBooking{}, Errorf(KindError, "vendor booking not found")
	}

	updated := wedding.Clone()
	var confirmed model.VendorBooking
	for i, b := range updated.Vendors {
		if b.VendorID == vendorID {
			b.Status = model.BookingConfirmed
			updated.Vendors[i] = b
			confirmed = b
		}
	}
	if err := p.weddings.Put(ctx, weddingID, updated); err != nil {
		return model.VendorBooking{}, err
	}
	return confirmed, nil
}
