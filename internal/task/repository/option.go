package repository

import "time"

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// UserID always applies; exactly one of ID or GoogleEventID selects the row.
type GetOneTaskOptions struct {
	UserID        string
	ID            string
	GoogleEventID string
}

// ListTasksOptions holds filter parameters for listing Tasks. The time
// window is half-open: [From, To).
type ListTasksOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}
