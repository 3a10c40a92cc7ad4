package model

// Task is the domain model for a single task entry.
// CreatedAt is an RFC 3339 timestamp captured at creation and never
// changed afterwards.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// Counts summarizes a task list in one pass over it.
type Counts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}
