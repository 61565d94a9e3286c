package models

import "time"

// Checklist is a named collection of items owned by exactly one user.
type Checklist struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	UserID      int       `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	Items       []Item    `json:"items"`
}

// Item is a single todo entry belonging to one checklist.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Completed   bool   `json:"completed"`
	ChecklistID int    `json:"checklist_id"`
}
