package models

import "time"

// Author is a denormalized snapshot of the announcing user, captured at
// announcement-creation time. It does not track later changes to the user.
type Author struct {
	ID      string          `json:"id" firestore:"id"`
	Name    string          `json:"name" firestore:"name"`
	Roles   []string        `json:"roles" firestore:"roles"`
	College CollegeSnapshot `json:"college" firestore:"college"`
}

// Announcement represents a campus announcement.
type Announcement struct {
	ID         string    `json:"id,omitempty" firestore:"-"`
	Title      string    `json:"title" firestore:"title"`
	Body       string    `json:"body" firestore:"body"`
	Department string    `json:"department" firestore:"department"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
	Visibility []string  `json:"visibility" firestore:"visibility"`
	ImageURLs  []string  `json:"imageUrls" firestore:"imageUrls"`
	Author     Author    `json:"author" firestore:"author"`
}
