package planner

import (
	"context"
	"testing"

	"github.com/planora/wedding-planner/internal/model"
)

func TestTaskLifecycle(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	task, err := p.AddTask(ctx, AddTaskInput{
		WeddingID:   w.ID,
		Title:       "Order flowers",
		Description: "peonies",
		Deadline:    "2026-08-01",
		AssignedTo:  "Ada",
		Budget:      800,
	})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.Status != model.TaskPending {
		t.Fatalf("status = %s, want pending", task.Status)
	}
	if task.ID == w.ID {
		t.Fatal("task id collides with a previously issued id")
	}

	// Status update touches only the status field.
	updated, err := p.UpdateTaskStatus(ctx, w.ID, task.ID, model.TaskInProgress)
	if err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if updated.Status != model.TaskInProgress {
		t.Fatalf("status = %s, want in-progress", updated.Status)
	}
	want := task
	want.Status = model.TaskInProgress
	if updated != want {
		t.Fatalf("update changed more than status: got %+v, want %+v", updated, want)
	}

	removed, err := p.DeleteTask(ctx, w.ID, task.ID)
	if err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if removed.ID != task.ID {
		t.Fatalf("removed task id = %d, want %d", removed.ID, task.ID)
	}
	got, err := p.GetWeddingDetails(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWeddingDetails: %v", err)
	}
	if len(got.Tasks) != 0 {
		t.Fatalf("task list not empty after delete: %v", got.Tasks)
	}
}

func TestDeleteTaskUnknownIDLeavesListUnchanged(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	task, err := p.AddTask(ctx, AddTaskInput{WeddingID: w.ID, Title: "Book DJ"})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	_, err = p.DeleteTask(ctx, w.ID, task.ID+100)
	wantKind(t, err, KindError)

	got, err := p.GetWeddingDetails(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWeddingDetails: %v", err)
	}
	if len(got.Tasks) != 1 {
		t.Fatalf("failed delete mutated the task list: %v", got.Tasks)
	}
}

func TestRegistryDuplicateNameRejected(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	item, err := p.AddRegistryItem(ctx, AddRegistryItemInput{WeddingID: w.ID, Name: "Toaster", Price: 60})
	if err != nil {
		t.Fatalf("AddRegistryItem: %v", err)
	}
	if item.Status != model.RegistryAvailable || item.PurchasedBy != "" {
		t.Fatalf("new item = %+v, want available and unpurchased", item)
	}

	_, err = p.AddRegistryItem(ctx, AddRegistryItemInput{WeddingID: w.ID, Name: "Toaster", Price: 80})
	wantKind(t, err, KindError)
}

func TestRegistryUpdateAndDelete(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	for _, name := range []string{"Toaster", "Kettle", "Blender"} {
		if _, err := p.AddRegistryItem(ctx, AddRegistryItemInput{WeddingID: w.ID, Name: name, Price: 50}); err != nil {
			t.Fatalf("AddRegistryItem %s: %v", name, err)
		}
	}

	bought, err := p.UpdateRegistryItemStatus(ctx, w.ID, "Kettle", model.RegistryPurchased, "lin@example.com")
	if err != nil {
		t.Fatalf("UpdateRegistryItemStatus: %v", err)
	}
	if bought.Status != model.RegistryPurchased || bought.PurchasedBy != "lin@example.com" {
		t.Fatalf("update result = %+v", bought)
	}

	removed, err := p.DeleteRegistryItem(ctx, w.ID, "Toaster")
	if err != nil {
		t.Fatalf("DeleteRegistryItem: %v", err)
	}
	if removed.Name != "Toaster" {
		t.Fatalf("removed %q, want Toaster", removed.Name)
	}

	got, err := p.GetWeddingDetails(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWeddingDetails: %v", err)
	}
	if len(got.Registry) != 2 {
		t.Fatalf("registry length = %d, want 2", len(got.Registry))
	}
	for _, it := range got.Registry {
		if it.Name == "Toaster" {
			t.Fatal("Toaster still present after delete")
		}
	}

	_, err = p.DeleteRegistryItem(ctx, w.ID, "Vase")
	wantKind(t, err, KindError)
}

func TestMarkTimelineItemCompletedMatchesByValue(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()
	w := mustCreateWedding(t, p, "2026-09-12", 50)

	entries := []AddTimelineItemInput{
		{WeddingID: w.ID, Time: "14:00", Description: "ceremony", Status: model.TimelinePending},
		{WeddingID: w.ID, Time: "14:00", Description: "photos", Status: model.TimelinePending},
		{WeddingID: w.ID, Time: "18:00", Description: "dinner", Status: model.TimelinePending},
	}
	for _, in := range entries {
		if _, err := p.AddTimelineItem(ctx, in); err != nil {
			t.Fatalf("AddTimelineItem: %v", err)
		}
	}

	updated, err := p.MarkTimelineItemCompleted(ctx, w.ID, "14:00")
	if err != nil {
		t.Fatalf("MarkTimelineItemCompleted: %v", err)
	}
	// Every entry sharing the time transitions together.
	for _, item := range updated.Timeline {
		want := model.TimelinePending
		if item.Time == "14:00" {
			want = model.TimelineCompleted
		}
		if item.Status != want {
			t.Fatalf("item %q at %s has status %s, want %s", item.Description, item.Time, item.Status, want)
		}
	}

	_, err = p.MarkTimelineItemCompleted(ctx, w.ID, "23:00")
	wantKind(t, err, KindError)
}
