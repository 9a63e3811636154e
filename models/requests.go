package models

// SignupRequest is the body of POST /api/v1/users/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// CreatePostRequest is the body of POST /api/v1/posts.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest is a partial update; nil fields are left untouched.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// CreateCommentRequest is the body of POST /api/v1/comments.
type CreateCommentRequest struct {
	PostID  int64  `json:"postId"`
	Comment string `json:"comment"`
}

// UpdateCommentRequest is a partial update; nil fields are left untouched.
type UpdateCommentRequest struct {
	Comment *string `json:"comment,omitempty"`
}
