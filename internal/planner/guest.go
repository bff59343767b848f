package planner

import (
	"context"

	"github.com/planora/wedding-planner/internal/model"
)

// GuestRSVPInput carries a guest's RSVP submission.
type GuestRSVPInput struct {
	WeddingID           uint64
	Name                string
	Email               string
	DietaryRestrictions string
	PlusOne             bool
}

// GuestRSVP appends a pending, unassigned guest to the wedding's guest
// list. Email is the natural key within one wedding: a second submission
// with the same email is rejected and the guest list is unchanged.
func (p *Planner) GuestRSVP(ctx context.Context, in GuestRSVPInput) (model.Guest, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, in.WeddingID)
	if err != nil {
		return model.Guest{}, err
	}
	if wedding.FindGuest(in.Email) >= 0 {
		return model.Guest{}, Errorf(KindError, "guest RSVP already submitted")
	}

	guest := model.Guest{
		Name:                in.Name,
		Email:               in.Email,
		RSVPStatus:          model.RSVPPending,
		DietaryRestrictions: in.DietaryRestrictions,
		PlusOne:             in.PlusOne,
		TableAssignment:     model.Unassigned(),
	}

	updated := wedding.Clone()
	updated.GuestList = append(updated.GuestList, guest)
	if err := p.weddings.Put(ctx, in.WeddingID, updated); err != nil {
		return model.Guest{}, err
	}
	return guest, nil
}

// ApproveRSVP confirms a guest and assigns their table. The capacity check
// runs against the pre-approval confirmed load — the guest being approved
// is not counted — and it runs before the guest lookup, so a full wedding
// reports the capacity error even for an unknown email. Both behaviors are
// preserved from the reference implementation.
func (p *Planner) ApproveRSVP(ctx context.Context, weddingID uint64, email string, table model.TableAssignment) (model.Guest, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.Guest{}, err
	}
	if wedding.ConfirmedSeats() >= wedding.GuestCount {
		return model.Guest{}, Errorf(KindBudgetExceeded, "available seats exceeded the wedding limit")
	}
	idx := wedding.FindGuest(email)
	if idx < 0 {
		return model.Guest{}, Errorf(KindError, "guest not found in the RSVP list")
	}

	updated := wedding.Clone()
	updated.GuestList[idx].RSVPStatus = model.RSVPConfirmed
	updated.GuestList[idx].TableAssignment = table
	if err := p.weddings.Put(ctx, weddingID, updated); err != nil {
		return model.Guest{}, err
	}
	return updated.GuestList[idx], nil
}
