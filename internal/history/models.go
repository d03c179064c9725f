package history

import "time"

// Entry is one recorded match outcome.
type Entry struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"sessionId"`
	EventID   string    `json:"eventId"`
	EventName string    `json:"eventName"`
	OwnerName string    `json:"ownerName,omitempty"`
	Score     int       `json:"score"`
	Fragments []string  `json:"fragments,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary aggregates the stored history for diagnostic output.
type Summary struct {
	Total    int          `json:"total"`
	Sessions int          `json:"sessions"`
	Owners   []OwnerCount `json:"owners,omitempty"`
}

// OwnerCount pairs an owner name with how many matches it accounts for.
type OwnerCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
