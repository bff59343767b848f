package planner

import (
	"context"

	"github.com/planora/wedding-planner/internal/model"
)

// Query projections are pure, read-only derivations over the stores.
// Empty result sets are reported conditions, not silent successes: every
// projection returns a not-found error when the target aggregate is absent
// or nothing matched the filter.

// GetVendorDetails returns the vendor with the given id.
func (p *Planner) GetVendorDetails(ctx context.Context, vendorID uint64) (model.Vendor, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.getVendor(ctx, vendorID)
}

// SearchVendorsByCategory returns all vendors offering the given category.
func (p *Planner) SearchVendorsByCategory(ctx context.Context, category model.Category) ([]model.Vendor, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries, err := p.vendors.Scan(ctx)
	if err != nil {
		return nil, err
	}
	var matches []model.Vendor
	for _, e := range entries {
		if e.Value.Category == category {
			matches = append(matches, e.Value)
		}
	}
	if len(matches) == 0 {
		return nil, Errorf(KindVendorNotFound, "no vendors found in the %q category", category)
	}
	return matches, nil
}

// GetAllVendors returns every registered vendor.
func (p *Planner) GetAllVendors(ctx context.Context) ([]model.Vendor, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries, err := p.vendors.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, Errorf(KindVendorNotFound, "no vendors found")
	}
	vendors := make([]model.Vendor, 0, len(entries))
	for _, e := range entries {
		vendors = append(vendors, e.Value)
	}
	return vendors, nil
}

// GetWeddingDetails returns the wedding with the given id.
func (p *Planner) GetWeddingDetails(ctx context.Context, weddingID uint64) (model.Wedding, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.getWedding(ctx, weddingID)
}

// GetAllWeddings returns every wedding.
func (p *Planner) GetAllWeddings(ctx context.Context) ([]model.Wedding, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries, err := p.weddings.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, Errorf(KindWeddingNotFound, "no weddings found")
	}
	weddings := make([]model.Wedding, 0, len(entries))
	for _, e := range entries {
		weddings = append(weddings, e.Value)
	}
	return weddings, nil
}

// SearchWeddingsByDate returns every wedding scheduled on the given date.
func (p *Planner) SearchWeddingsByDate(ctx context.Context, date string) ([]model.Wedding, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries, err := p.weddings.Scan(ctx)
	if err != nil {
		return nil, err
	}
	var matches []model.Wedding
	for _, e := range entries {
		if e.Value.Date == date {
			matches = append(matches, e.Value)
		}
	}
	if len(matches) == 0 {
		return nil, Errorf(KindWeddingNotFound, "no weddings found on date: %s", date)
	}
	return matches, nil
}

// GetWeddingTimeline returns the wedding's timeline entries.
func (p *Planner) GetWeddingTimeline(ctx context.Context, weddingID uint64) ([]model.TimelineItem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if len(wedding.Timeline) == 0 {
		return nil, Errorf(KindNoTimelineItems, "no timeline items found for this wedding")
	}
	return wedding.Timeline, nil
}

// GetGuestList returns the wedding's guest list.
func (p *Planner) GetGuestList(ctx context.Context, weddingID uint64) ([]model.Guest, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if len(wedding.GuestList) == 0 {
		return nil, Errorf(KindError, "no guests found for this wedding")
	}
	return wedding.GuestList, nil
}

// GetGuestDetails returns a single guest by email.
func (p *Planner) GetGuestDetails(ctx context.Context, weddingID uint64, email string) (model.Guest, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.Guest{}, err
	}
	idx := wedding.FindGuest(email)
	if idx < 0 {
		return model.Guest{}, Errorf(KindError, "guest not found")
	}
	return wedding.GuestList[idx], nil
}

// GetGuestRSVPStatus returns the RSVP status of the guest with email.
func (p *Planner) GetGuestRSVPStatus(ctx context.Context, weddingID uint64, email string) (model.RSVPStatus, error) {
	guest, err := p.GetGuestDetails(ctx, weddingID, email)
	if err != nil {
		return "", err
	}
	return guest.RSVPStatus, nil
}

// GetGuestRSVPCount returns the number of submitted RSVPs, regardless of
// status.
func (p *Planner) GetGuestRSVPCount(ctx context.Context, weddingID uint64) (uint64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return 0, err
	}
	return uint64(len(wedding.GuestList)), nil
}

// GetTaskList returns the wedding's task list.
func (p *Planner) GetTaskList(ctx context.Context, weddingID uint64) ([]model.Task, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if len(wedding.Tasks) == 0 {
		return nil, Errorf(KindError, "no tasks found for this wedding")
	}
	return wedding.Tasks, nil
}

// GetTaskDetails returns a single task by id.
func (p *Planner) GetTaskDetails(ctx context.Context, weddingID, taskID uint64) (model.Task, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.Task{}, err
	}
	idx := wedding.FindTask(taskID)
	if idx < 0 {
		return model.Task{}, Errorf(KindError, "task not found")
	}
	return wedding.Tasks[idx], nil
}

// GetRegistryItems returns the wedding's registry.
func (p *Planner) GetRegistryItems(ctx context.Context, weddingID uint64) ([]model.RegistryItem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if len(wedding.Registry) == 0 {
		return nil, Errorf(KindError, "no registry items found for this wedding")
	}
	return wedding.Registry, nil
}

// GetRegistryItemDetails returns a single registry item by name.
func (p *Planner) GetRegistryItemDetails(ctx context.Context, weddingID uint64, itemName string) (model.RegistryItem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.RegistryItem{}, err
	}
	idx := wedding.FindRegistryItem(itemName)
	if idx < 0 {
		return model.RegistryItem{}, Errorf(KindError, "registry item not found")
	}
	return wedding.Registry[idx], nil
}
