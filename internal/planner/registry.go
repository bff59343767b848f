package planner

import (
	"context"

	"github.com/planora/wedding-planner/internal/model"
)

// AddRegistryItemInput carries the fields of a registry item.
type AddRegistryItemInput struct {
	WeddingID   uint64
	Name        string
	Description string
	Price       uint64
}

// AddRegistryItem appends an available registry item. Name is the natural
// key within one wedding's registry; duplicates are rejected.
func (p *Planner) AddRegistryItem(ctx context.Context, in AddRegistryItemInput) (model.RegistryItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, in.WeddingID)
	if err != nil {
		return model.RegistryItem{}, err
	}
	if wedding.FindRegistryItem(in.Name) >= 0 {
		return model.RegistryItem{}, Errorf(KindError, "registry item already exists")
	}

	item := model.RegistryItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Status:      model.RegistryAvailable,
		PurchasedBy: "",
	}

	updated := wedding.Clone()
	updated.Registry = append(updated.Registry, item)
	if err := p.weddings.Put(ctx, in.WeddingID, updated); err != nil {
		return model.RegistryItem{}, err
	}
	return item, nil
}

// UpdateRegistryItemStatus sets the status and purchaser of the named
// registry item.
func (p *Planner) UpdateRegistryItemStatus(ctx context.Context, weddingID uint64, itemName string, status model.RegistryStatus, purchasedBy string) (model.RegistryItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.RegistryItem{}, err
	}
	idx := wedding.FindRegistryItem(itemName)
	if idx < 0 {
		return model.RegistryItem{}, Errorf(KindError, "registry item not found")
	}

	updated := wedding.Clone()
	updated.Registry[idx].Status = status
	updated.Registry[idx].PurchasedBy = purchasedBy
	if err := p.weddings.Put(ctx, weddingID, updated); err != nil {
		return model.RegistryItem{}, err
	}
	return updated.Registry[idx], nil
}

// DeleteRegistryItem removes exactly the named item, leaving the rest of
// the registry untouched.
func (p *Planner) DeleteRegistryItem(ctx context.Context, weddingID uint64, itemName string) (model.RegistryItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.RegistryItem{}, err
	}
	idx := wedding.FindRegistryItem(itemName)
	if idx < 0 {
		return model.RegistryItem{}, Errorf(KindError, "registry item not found")
	}
	removed := wedding.Registry[idx]

	updated := wedding.Clone()
	updated.Registry = append(updated.Registry[:idx], updated.Registry[idx+1:]...)
	if err := p.weddings.Put(ctx, weddingID, updated); err != nil {
		return model.RegistryItem{}, err
	}
	return removed, nil
}
