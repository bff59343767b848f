package model

// TimelineStatus marks the state of a timeline entry.
type TimelineStatus string

const (
	TimelinePending   TimelineStatus = "pending"
	TimelineCompleted TimelineStatus = "completed"
	TimelineOverdue   TimelineStatus = "overdue"
)

// TimelineItem is a scheduled moment in a wedding's day-of timeline. Time
// is matched by value when marking items completed: every entry sharing a
// time transitions together.
type TimelineItem struct {
	WeddingID   uint64         `json:"wedding_id"`
	Time        string         `json:"time"`
	Description string         `json:"description"`
	Responsible string         `json:"responsible"`
	Status      TimelineStatus `json:"status"`
}
