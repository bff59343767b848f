package planner

import (
	"context"

	"github.com/planora/wedding-planner/internal/model"
)

// AddTaskInput carries the fields of a task creation request. The task id
// is issued by the shared generator, never supplied by the client.
type AddTaskInput struct {
	WeddingID   uint64
	Title       string
	Description string
	Deadline    string
	AssignedTo  string
	Budget      uint64
}

// AddTask appends a pending task to the wedding's task list.
func (p *Planner) AddTask(ctx context.Context, in AddTaskInput) (model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, in.WeddingID)
	if err != nil {
		return model.Task{}, err
	}

	id, err := p.ids.Next(ctx)
	if err != nil {
		return model.Task{}, err
	}
	task := model.Task{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Deadline:    in.Deadline,
		AssignedTo:  in.AssignedTo,
		Status:      model.TaskPending,
		Budget:      in.Budget,
	}

	updated := wedding.Clone()
	updated.Tasks = append(updated.Tasks, task)
	if err := p.weddings.Put(ctx, in.WeddingID, updated); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// UpdateTaskStatus sets the status of the task with taskID, leaving every
// other field intact.
func (p *Planner) UpdateTaskStatus(ctx context.Context, weddingID, taskID uint64, status model.TaskStatus) (model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.Task{}, err
	}
	idx := wedding.FindTask(taskID)
	if idx < 0 {
		return model.Task{}, Errorf(KindError, "task not found")
	}

	updated := wedding.Clone()
	updated.Tasks[idx].Status = status
	if err := p.weddings.Put(ctx, weddingID, updated); err != nil {
		return model.Task{}, err
	}
	return updated.Tasks[idx], nil
}

// DeleteTask removes the task with taskID from the wedding. An unknown id
// is an error and leaves the task list untouched.
func (p *Planner) DeleteTask(ctx context.Context, weddingID, taskID uint64) (model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wedding, err := p.getWedding(ctx, weddingID)
	if err != nil {
		return model.Task{}, err
	}
	idx := wedding.FindTask(taskID)
	if idx < 0 {
		return model.Task{}, Errorf(KindError, "task not found")
	}
	removed := wedding.Tasks[idx]

	updated := wedding.Clone()
	updated.Tasks = append(updated.Tasks[:idx], updated.Tasks[idx+1:]...)
	if err := p.weddings.Put(ctx, weddingID, updated); err != nil {
		return model.Task{}, err
	}
	return removed, nil
}
