package models

import "time"

// Post is a blog entry written by a single user.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// UserID references the author (users.id).
	UserID int64  `json:"userId"`
	Status Status `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// User is the eagerly loaded author. Nil when not loaded.
	User *User `json:"user,omitempty"`

	// Comments holds the eagerly loaded active comments of the post.
	Comments []Comment `json:"comments,omitempty"`
}
