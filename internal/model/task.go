package model

// TaskStatus is the lifecycle of a planning task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// Task is a planning step owned by a wedding. Its id comes from the shared
// identity generator, never from the client.
type Task struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    string     `json:"deadline"`
	AssignedTo  string     `json:"assigned_to"`
	Status      TaskStatus `json:"status"`
	Budget      uint64     `json:"budget"`
}
