package planner

import (
	"context"
	"testing"

	"github.com/planora/wedding-planner/internal/model"
	"github.com/planora/wedding-planner/internal/store"
)

// newTestPlanner builds a planner over fresh in-memory state.
func newTestPlanner() *Planner {
	vendors := store.New[model.Vendor](store.NewMemoryBackend())
	weddings := store.New[model.Wedding](store.NewMemoryBackend())
	ids := store.NewIDGenerator(store.NewMemoryCell())
	return New(vendors, weddings, ids)
}

func mustRegisterVendor(t *testing.T, p *Planner, owner uint64, availability []string) model.Vendor {
	t.Helper()
	v, err := p.RegisterVendor(context.Background(), owner, RegisterVendorInput{
		Name:         "Golden Hour Photos",
		Category:     model.CategoryPhotography,
		Description:  "full-day coverage",
		ServiceCost:  2500,
		Availability: availability,
	})
	if err != nil {
		t.Fatalf("RegisterVendor: %v", err)
	}
	return v
}

func mustCreateWedding(t *testing.T, p *Planner, date string, guestCount uint64) model.Wedding {
	t.Helper()
	w, err := p.CreateWedding(context.Background(), CreateWeddingInput{
		CoupleNames: []string{"Ada", "Lin"},
		Date:        date,
		Budget:      40000,
		Location:    "Lakeside Hall",
		GuestCount:  guestCount,
	})
	if err != nil {
		t.Fatalf("CreateWedding: %v", err)
	}
	return w
}

func wantKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := KindOf(err); got != kind {
		t.Fatalf("expected %s error, got %s (%v)", kind, got, err)
	}
}

func TestRegisterVendorDefaults(t *testing.T) {
	p := newTestPlanner()
	v := mustRegisterVendor(t, p, 42, []string{"2026-09-12"})

	if v.Owner != 42 {
		t.Fatalf("owner = %d, want 42", v.Owner)
	}
	if v.Verified {
		t.Fatal("new vendor must start unverified")
	}
	if v.Rating != 0 || len(v.Reviews) != 0 || len(v.Bookings) != 0 {
		t.Fatalf("new vendor carries non-empty state: %+v", v)
	}
}

func TestRegisterVendorValidation(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()

	_, err := p.RegisterVendor(ctx, 1, RegisterVendorInput{
		Category: model.CategoryMusic, Description: "d", ServiceCost: 1,
	})
	wantKind(t, err, KindInvalidInput)

	_, err = p.RegisterVendor(ctx, 1, RegisterVendorInput{
		Name: "n", Category: "GARDENING", Description: "d", ServiceCost: 1,
	})
	wantKind(t, err, KindInvalidInput)
}

func TestVendorIDsAreDistinct(t *testing.T) {
	p := newTestPlanner()
	a := mustRegisterVendor(t, p, 1, nil)
	b := mustRegisterVendor(t, p, 1, nil)
	if a.ID == b.ID {
		t.Fatalf("both vendors got id %d", a.ID)
	}
	if b.ID <= a.ID {
		t.Fatalf("ids not increasing: %d then %d", a.ID, b.ID)
	}
}

func TestVerifyVendor(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	v := mustRegisterVendor(t, p, 1, nil)

	// Verification is open to any caller, so no principal is required.
	verified, err := p.VerifyVendor(ctx, v.ID)
	if err != nil {
		t.Fatalf("VerifyVendor: %v", err)
	}
	if !verified.Verified {
		t.Fatal("vendor not marked verified")
	}

	_, err = p.VerifyVendor(ctx, 999)
	wantKind(t, err, KindVendorNotFound)
}

func TestUpdateVendorAvailabilityReplacesWholesale(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	v := mustRegisterVendor(t, p, 1, []string{"2026-01-01", "2026-02-02"})

	updated, err := p.UpdateVendorAvailability(ctx, v.ID, []string{"2026-03-03"})
	if err != nil {
		t.Fatalf("UpdateVendorAvailability: %v", err)
	}
	if len(updated.Availability) != 1 || updated.Availability[0] != "2026-03-03" {
		t.Fatalf("availability not replaced: %v", updated.Availability)
	}
}

func TestCreateWeddingRejectsOnlyWhenAllFieldsEmpty(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()

	_, err := p.CreateWedding(ctx, CreateWeddingInput{})
	wantKind(t, err, KindInvalidInput)

	// A single non-zero field is enough to pass the guard.
	w, err := p.CreateWedding(ctx, CreateWeddingInput{Location: "Barn"})
	if err != nil {
		t.Fatalf("CreateWedding with one field: %v", err)
	}
	if w.Status != model.WeddingPlanning {
		t.Fatalf("status = %s, want planning", w.Status)
	}
	if w.Vendors == nil || w.Tasks == nil || w.GuestList == nil || w.Registry == nil || w.Timeline == nil {
		t.Fatal("nested collections must be initialized empty, not nil")
	}
}

func TestBookVendorHappyPath(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)
	v := mustRegisterVendor(t, p, 7, []string{"2026-09-12"})

	details := "ceremony only"
	res, err := p.BookVendor(ctx, BookVendorInput{
		VendorID: v.ID, WeddingID: w.ID, WeddingOffer: 2000, AdditionalDetails: &details,
	})
	if err != nil {
		t.Fatalf("BookVendor: %v", err)
	}
	if res.Booking.Status != model.BookingPending {
		t.Fatalf("booking status = %s, want pending", res.Booking.Status)
	}
	if res.Booking.Date != "2026-09-12" {
		t.Fatalf("booking date = %s, want wedding date", res.Booking.Date)
	}
	if len(res.Wedding.Vendors) != 1 {
		t.Fatalf("wedding booking list length = %d", len(res.Wedding.Vendors))
	}
	if len(res.Vendor.Bookings) != 1 || res.Vendor.Bookings[0] != w.ID {
		t.Fatalf("vendor back-references = %v", res.Vendor.Bookings)
	}
}

func TestBookVendorFailuresLeaveAggregatesUnchanged(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)
	v := mustRegisterVendor(t, p, 7, []string{"2026-10-01"}) // not the wedding date

	_, err := p.BookVendor(ctx, BookVendorInput{VendorID: v.ID, WeddingID: 999})
	wantKind(t, err, KindWeddingNotFound)

	_, err = p.BookVendor(ctx, BookVendorInput{VendorID: 999, WeddingID: w.ID})
	wantKind(t, err, KindVendorNotFound)

	_, err = p.BookVendor(ctx, BookVendorInput{VendorID: v.ID, WeddingID: w.ID})
	wantKind(t, err, KindDateUnavailable)

	gotW, err := p.GetWeddingDetails(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWeddingDetails: %v", err)
	}
	if len(gotW.Vendors) != 0 {
		t.Fatalf("failed bookings mutated the wedding: %v", gotW.Vendors)
	}
	gotV, err := p.GetVendorDetails(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetVendorDetails: %v", err)
	}
	if len(gotV.Bookings) != 0 {
		t.Fatalf("failed bookings mutated the vendor: %v", gotV.Bookings)
	}
}

func TestCancelVendorBookingRemovesAllButKeepsBackReference(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)
	v := mustRegisterVendor(t, p, 7, []string{"2026-09-12"})
	other := mustRegisterVendor(t, p, 8, []string{"2026-09-12"})

	// Book the same vendor twice plus one other vendor.
	for _, id := range []uint64{v.ID, v.ID, other.ID} {
		if _, err := p.BookVendor(ctx, BookVendorInput{VendorID: id, WeddingID: w.ID, WeddingOffer: 100}); err != nil {
			t.Fatalf("BookVendor %d: %v", id, err)
		}
	}

	updated, err := p.CancelVendorBooking(ctx, w.ID, v.ID)
	if err != nil {
		t.Fatalf("CancelVendorBooking: %v", err)
	}
	if len(updated.Vendors) != 1 || updated.Vendors[0].VendorID != other.ID {
		t.Fatalf("cancellation removed the wrong bookings: %v", updated.Vendors)
	}

	// The vendor's back-reference list is not pruned on cancellation.
	gotV, err := p.GetVendorDetails(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetVendorDetails: %v", err)
	}
	if len(gotV.Bookings) != 2 {
		t.Fatalf("back-references = %v, want both retained", gotV.Bookings)
	}

	_, err = p.CancelVendorBooking(ctx, w.ID, v.ID)
	wantKind(t, err, KindVendorNotFound)
}

func TestVerifyVendorBookingOwnerGated(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)
	v := mustRegisterVendor(t, p, 7, []string{"2026-09-12"})

	if _, err := p.BookVendor(ctx, BookVendorInput{VendorID: v.ID, WeddingID: w.ID, WeddingOffer: 100}); err != nil {
		t.Fatalf("BookVendor: %v", err)
	}

	_, err := p.VerifyVendorBooking(ctx, 99, v.ID, w.ID)
	wantKind(t, err, KindUnauthorizedAction)

	booking, err := p.VerifyVendorBooking(ctx, 7, v.ID, w.ID)
	if err != nil {
		t.Fatalf("VerifyVendorBooking: %v", err)
	}
	if booking.Status != model.BookingConfirmed {
		t.Fatalf("booking status = %s, want confirmed", booking.Status)
	}
}

func TestVerifyVendorBookingTransitionsEveryMatch(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)
	v := mustRegisterVendor(t, p, 7, []string{"2026-09-12"})

	for i := 0; i < 2; i++ {
		if _, err := p.BookVendor(ctx, BookVendorInput{VendorID: v.ID, WeddingID: w.ID, WeddingOffer: 100}); err != nil {
			t.Fatalf("BookVendor: %v", err)
		}
	}
	if _, err := p.VerifyVendorBooking(ctx, 7, v.ID, w.ID); err != nil {
		t.Fatalf("VerifyVendorBooking: %v", err)
	}

	got, err := p.GetWeddingDetails(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWeddingDetails: %v", err)
	}
	for i, b := range got.Vendors {
		if b.Status != model.BookingConfirmed {
			t.Fatalf("booking %d status = %s, want confirmed", i, b.Status)
		}
	}
}

func TestVerifyVendorBookingWithoutBooking(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)
	v := mustRegisterVendor(t, p, 7, []string{"2026-09-12"})

	_, err := p.VerifyVendorBooking(ctx, 7, v.ID, w.ID)
	wantKind(t, err, KindError)
}
