package planner

import (
	"context"
	"testing"

	"github.com/planora/wedding-planner/internal/model"
)

func TestSearchVendorsByCategory(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()

	_, err := p.SearchVendorsByCategory(ctx, model.CategoryMusic)
	wantKind(t, err, KindVendorNotFound)

	mustRegisterVendor(t, p, 1, nil) // photography
	if _, err := p.RegisterVendor(ctx, 2, RegisterVendorInput{
		Name: "Brass Section", Category: model.CategoryMusic, Description: "live band", ServiceCost: 1200,
	}); err != nil {
		t.Fatalf("RegisterVendor: %v", err)
	}

	music, err := p.SearchVendorsByCategory(ctx, model.CategoryMusic)
	if err != nil {
		t.Fatalf("SearchVendorsByCategory: %v", err)
	}
	if len(music) != 1 || music[0].Name != "Brass Section" {
		t.Fatalf("unexpected matches: %+v", music)
	}
}

func TestGetAllVendorsScanCompleteness(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()

	_, err := p.GetAllVendors(ctx)
	wantKind(t, err, KindVendorNotFound)

	const n = 5
	for i := 0; i < n; i++ {
		mustRegisterVendor(t, p, uint64(i), nil)
	}
	vendors, err := p.GetAllVendors(ctx)
	if err != nil {
		t.Fatalf("GetAllVendors: %v", err)
	}
	if len(vendors) != n {
		t.Fatalf("got %d vendors, want %d", len(vendors), n)
	}
	seen := make(map[uint64]bool)
	for _, v := range vendors {
		if seen[v.ID] {
			t.Fatalf("duplicate vendor id %d", v.ID)
		}
		seen[v.ID] = true
	}
}

func TestSearchWeddingsByDate(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()

	mustCreateWedding(t, p, "2026-09-12", 50)
	mustCreateWedding(t, p, "2026-09-12", 20)
	mustCreateWedding(t, p, "2026-12-31", 80)

	matches, err := p.SearchWeddingsByDate(ctx, "2026-09-12")
	if err != nil {
		t.Fatalf("SearchWeddingsByDate: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d weddings, want 2", len(matches))
	}

	_, err = p.SearchWeddingsByDate(ctx, "2027-01-01")
	wantKind(t, err, KindWeddingNotFound)
}

func TestGetWeddingTimelineEmptyIsAnError(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	_, err := p.GetWeddingTimeline(ctx, w.ID)
	wantKind(t, err, KindNoTimelineItems)

	if _, err := p.AddTimelineItem(ctx, AddTimelineItemInput{
		WeddingID: w.ID, Time: "14:00", Description: "ceremony", Status: model.TimelinePending,
	}); err != nil {
		t.Fatalf("AddTimelineItem: %v", err)
	}
	items, err := p.GetWeddingTimeline(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWeddingTimeline: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}

	_, err = p.GetWeddingTimeline(ctx, 999)
	wantKind(t, err, KindWeddingNotFound)
}

func TestGuestProjections(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	_, err := p.GetGuestList(ctx, w.ID)
	wantKind(t, err, KindError)

	mustRSVP(t, p, w.ID, "ada@example.com", true)
	mustRSVP(t, p, w.ID, "lin@example.com", false)

	guests, err := p.GetGuestList(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetGuestList: %v", err)
	}
	if len(guests) != 2 {
		t.Fatalf("got %d guests, want 2", len(guests))
	}

	g, err := p.GetGuestDetails(ctx, w.ID, "ada@example.com")
	if err != nil {
		t.Fatalf("GetGuestDetails: %v", err)
	}
	if !g.PlusOne {
		t.Fatalf("wrong guest: %+v", g)
	}

	status, err := p.GetGuestRSVPStatus(ctx, w.ID, "lin@example.com")
	if err != nil {
		t.Fatalf("GetGuestRSVPStatus: %v", err)
	}
	if status != model.RSVPPending {
		t.Fatalf("status = %s, want pending", status)
	}

	// The count covers every submitted RSVP regardless of status.
	count, err := p.GetGuestRSVPCount(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetGuestRSVPCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	_, err = p.GetGuestDetails(ctx, w.ID, "nobody@example.com")
	wantKind(t, err, KindError)
}

func TestTaskAndRegistryProjections(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	_, err := p.GetTaskList(ctx, w.ID)
	wantKind(t, err, KindError)
	_, err = p.GetRegistryItems(ctx, w.ID)
	wantKind(t, err, KindError)

	task, err := p.AddTask(ctx, AddTaskInput{WeddingID: w.ID, Title: "Order cake", Budget: 300})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := p.AddRegistryItem(ctx, AddRegistryItemInput{WeddingID: w.ID, Name: "Toaster", Price: 60}); err != nil {
		t.Fatalf("AddRegistryItem: %v", err)
	}

	gotTask, err := p.GetTaskDetails(ctx, w.ID, task.ID)
	if err != nil {
		t.Fatalf("GetTaskDetails: %v", err)
	}
	if gotTask != task {
		t.Fatalf("got %+v, want %+v", gotTask, task)
	}
	_, err = p.GetTaskDetails(ctx, w.ID, task.ID+50)
	wantKind(t, err, KindError)

	item, err := p.GetRegistryItemDetails(ctx, w.ID, "Toaster")
	if err != nil {
		t.Fatalf("GetRegistryItemDetails: %v", err)
	}
	if item.Name != "Toaster" {
		t.Fatalf("got %+v", item)
	}
	_, err = p.GetRegistryItemDetails(ctx, w.ID, "Kettle")
	wantKind(t, err, KindError)
}

func TestGetAllWeddings(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()

	_, err := p.GetAllWeddings(ctx)
	wantKind(t, err, KindWeddingNotFound)

	const n = 3
	for i := 0; i < n; i++ {
		mustCreateWedding(t, p, "2026-09-12", 50)
	}
	weddings, err := p.GetAllWeddings(ctx)
	if err != nil {
		t.Fatalf("GetAllWeddings: %v", err)
	}
	if len(weddings) != n {
		t.Fatalf("got %d weddings, want %d", len(weddings), n)
	}
}
