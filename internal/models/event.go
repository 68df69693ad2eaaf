package models

import "time"

// Event is a calendar entry served by the demo events endpoint.
// End is nil for open-ended events.
type Event struct {
	ID    int        `json:"id"`
	Title string     `json:"title"`
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}
