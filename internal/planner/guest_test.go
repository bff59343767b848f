package planner

import (
	"context"
	"fmt"
	"testing"

	"github.com/planora/wedding-planner/internal/model"
)

func mustRSVP(t *testing.T, p *Planner, weddingID uint64, email string, plusOne bool) model.Guest {
	t.Helper()
	g, err := p.GuestRSVP(context.Background(), GuestRSVPInput{
		WeddingID: weddingID,
		Name:      "Guest " + email,
		Email:     email,
		PlusOne:   plusOne,
	})
	if err != nil {
		t.Fatalf("GuestRSVP %s: %v", email, err)
	}
	return g
}

func mustApprove(t *testing.T, p *Planner, weddingID uint64, email string) {
	t.Helper()
	if _, err := p.ApproveRSVP(context.Background(), weddingID, email, model.TableAssignment{Kind: model.TableNumbered, Number: 1}); err != nil {
		t.Fatalf("ApproveRSVP %s: %v", email, err)
	}
}

func TestGuestRSVPDefaults(t *testing.T) {
	p := newTestPlanner()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	g := mustRSVP(t, p, w.ID, "ada@example.com", true)
	if g.RSVPStatus != model.RSVPPending {
		t.Fatalf("status = %s, want pending", g.RSVPStatus)
	}
	if g.TableAssignment.Kind != model.TableUnassigned {
		t.Fatalf("table = %s, want unassigned", g.TableAssignment)
	}
}

func TestGuestRSVPDuplicateEmailRejected(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	mustRSVP(t, p, w.ID, "ada@example.com", false)
	_, err := p.GuestRSVP(ctx, GuestRSVPInput{WeddingID: w.ID, Name: "Ada again", Email: "ada@example.com"})
	wantKind(t, err, KindError)

	got, err := p.GetWeddingDetails(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWeddingDetails: %v", err)
	}
	if len(got.GuestList) != 1 {
		t.Fatalf("guest list length = %d, want 1", len(got.GuestList))
	}
}

func TestApproveRSVPAssignsTable(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)
	mustRSVP(t, p, w.ID, "ada@example.com", false)

	table := model.TableAssignment{Kind: model.TableVIP}
	g, err := p.ApproveRSVP(ctx, w.ID, "ada@example.com", table)
	if err != nil {
		t.Fatalf("ApproveRSVP: %v", err)
	}
	if g.RSVPStatus != model.RSVPConfirmed {
		t.Fatalf("status = %s, want confirmed", g.RSVPStatus)
	}
	if g.TableAssignment != table {
		t.Fatalf("table = %s, want VIP", g.TableAssignment)
	}
}

func TestApproveRSVPChecksPreApprovalLoad(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 10)

	// Fill to a confirmed load of 9: nine solo guests.
	for i := 0; i < 9; i++ {
		email := fmt.Sprintf("guest%d@example.com", i)
		mustRSVP(t, p, w.ID, email, false)
		mustApprove(t, p, w.ID, email)
	}

	// Pre-approval load 9 < 10, so a tenth approval still passes — even
	// with a plus-one, whose extra seat is not counted by the gate.
	mustRSVP(t, p, w.ID, "pair@example.com", true)
	mustApprove(t, p, w.ID, "pair@example.com")

	got, err := p.GetWeddingDetails(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWeddingDetails: %v", err)
	}
	if load := got.ConfirmedSeats(); load != 11 {
		t.Fatalf("confirmed load = %d, want 11", load)
	}

	// Load is now past capacity; any further approval is rejected.
	mustRSVP(t, p, w.ID, "late@example.com", false)
	_, err = p.ApproveRSVP(ctx, w.ID, "late@example.com", model.Unassigned())
	wantKind(t, err, KindBudgetExceeded)
}

func TestApproveRSVPCapacityCheckedBeforeGuestLookup(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 1)
	mustRSVP(t, p, w.ID, "only@example.com", false)
	mustApprove(t, p, w.ID, "only@example.com")

	// A full wedding reports capacity even for an email not on the list.
	_, err := p.ApproveRSVP(ctx, w.ID, "nobody@example.com", model.Unassigned())
	wantKind(t, err, KindBudgetExceeded)
}

func TestApproveRSVPUnknownGuest(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	_, err := p.ApproveRSVP(ctx, w.ID, "nobody@example.com", model.Unassigned())
	wantKind(t, err, KindError)
}

func TestConfirmedSeatsWeighsPlusOnes(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	mustRSVP(t, p, w.ID, "solo@example.com", false)
	mustRSVP(t, p, w.ID, "pair@example.com", true)
	mustRSVP(t, p, w.ID, "pending@example.com", true) // never approved
	mustApprove(t, p, w.ID, "solo@example.com")
	mustApprove(t, p, w.ID, "pair@example.com")

	got, err := p.GetWeddingDetails(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWeddingDetails: %v", err)
	}
	if load := got.ConfirmedSeats(); load != 3 {
		t.Fatalf("confirmed load = %d, want 3 (1 solo + 2 plus-one)", load)
	}
}
