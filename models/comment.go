package models

import "time"

// Comment is a reply left by a user on a post.
type Comment struct {
	ID      int64  `json:"id"`
	Comment string `json:"comment"`

	// UserID references the author (users.id).
	UserID int64 `json:"userId"`

	// PostID references the commented post (posts.id).
	PostID int64  `json:"postId"`
	Status Status `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// User is the eagerly loaded author. Nil when not loaded.
	User *User `json:"user,omitempty"`
}
