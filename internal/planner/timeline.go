package planner

import (
	"context"

	"github.com/planora/wedding-planner/internal/model"
)

// AddTimelineItemInput carries the fields of a timeline entry. Status is
// caller-supplied (pending, completed or overdue).
type AddTimelineItemInput struct {
	WeddingID   uint64
	Time        string
	Description string
	Responsible string
	Status      model.TimelineStatus
}

// AddTimelineItem appends an entry to the wedding's timeline. Times are
// not unique: multiple entries may share one.
func (p *Planner) AddTimelineItem(ctx context.Context, in AddTimelineItemInput) (model.TimelineItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, in.WeddingID)
	if err != nil {
		return model.TimelineItem{}, err
	}

	item := model.TimelineItem{
		WeddingID:   in.WeddingID,
		Time:        in.Time,
		Description: in.Description,
		Responsible: in.Responsible,
		Status:      in.Status,
	}

	updated := wedding.Clone()
	updated.Timeline = append(updated.Timeline, item)
	if err := p.weddings.Put(ctx, in.WeddingID, updated); err != nil {
		return model.TimelineItem{}, err
	}
	return item, nil
}

// MarkTimelineItemCompleted sets every timeline entry whose time equals
// the given value to completed. Matching is by value, not by unique index:
// all entries sharing the time transition together. No match is an error.
func (p *Planner) MarkTimelineItemCompleted(ctx context.Context, weddingID uint64, time string) (model.Wedding, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.Wedding{}, err
	}

	updated := wedding.Clone()
	matched := false
	for i, item := range updated.Timeline {
		if item.Time == time {
			updated.Timeline[i].Status = model.TimelineCompleted
			matched = true
		}
	}
	if !matched {
		return model.Wedding{}, Errorf(KindError, "no timeline item found with time: %s", time)
	}

	if err := p.weddings.Put(ctx, weddingID, updated); err != nil {
		return model.Wedding{}, err
	}
	return updated, nil
}
