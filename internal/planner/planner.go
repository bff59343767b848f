// Package planner implements the aggregate operation core: vendor and
// wedding lifecycles over two keyed stores and the shared identity
// generator. Every write follows the same protocol — read the full
// aggregate, derive a new value, validate, then replace the whole record —
// and the planner's lock serializes those sequences so no two writers ever
// interleave. The protocol is not safe under interleaving (last write wins
// on the whole record), so the lock spans both stores.
package planner

import (
	"context"
	"sync"

	"github.com/planora/wedding-planner/internal/model"
	"github.com/planora/wedding-planner/internal/store"
)

// Planner bundles the vendor store, the wedding store and the identity
// generator. Construct one per process; the stores carry all state.
type Planner struct {
	mu       sync.RWMutex
	vendors  *store.Store[model.Vendor]
	weddings *store.Store[model.Wedding]
	ids      *store.IDGenerator
}

// New constructs a Planner. All dependencies must be non-nil.
func New(vendors *store.Store[model.Vendor], weddings *store.Store[model.Wedding], ids *store.IDGenerator) *Planner {
	if vendors == nil || weddings == nil || ids == nil {
		panic("nil dependency passed to planner.New")
	}
	return &Planner{vendors: vendors, weddings: weddings, ids: ids}
}

// getVendor loads a vendor or returns the not-found error for id. Callers
// must hold the planner lock.
func (p *Planner) getVendor(ctx context.Context, id uint64) (model.Vendor, error) {
	v, ok, err := p.vendors.Get(ctx, id)
	if err != nil {
		return model.Vendor{}, err
	}
	if !ok {
		return model.Vendor{}, Errorf(KindVendorNotFound, "vendor with id=%d not found", id)
	}
	return v, nil
}

// getWedding loads a wedding or returns the not-found error for id.
// Callers must hold the planner lock.
func (p *Planner) getWedding(ctx context.Context, id uint64) (model.Wedding, error) {
	w, ok, err := p.weddings.Get(ctx, id)
	if err != nil {
		return model.Wedding{}, err
	}
	if !ok {
		return model.Wedding{}, Errorf(KindWeddingNotFound, "wedding with id=%d not found", id)
	}
	return w, nil
}
