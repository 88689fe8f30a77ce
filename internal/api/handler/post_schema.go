package handler

import "time"

// errorResponse documents the standard error envelope in swagger output.
// The live envelope is rendered by the central HTTP error handler.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// --- Request types ---

type createPostRequest struct {
	Title     string `json:"title"     validate:"required,max=255"`
	Content   string `json:"content"   validate:"required"`
	Published bool   `json:"published"`
}

// updatePostRequest is a partial update; omitted fields are left untouched.
type updatePostRequest struct {
	Title     *string `json:"title"     validate:"omitempty,min=1,max=255"`
	Content   *string `json:"content"   validate:"omitempty,min=1"`
	Published *bool   `json:"published"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type authorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type postResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Published bool            `json:"published"`
	AuthorID  string          `json:"author_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Author    *authorResponse `json:"author,omitempty"`
}

type listPostsResponse struct {
	Posts []postResponse `json:"posts"`
}

type deletePostResponse struct {
	Message string `json:"message"`
}
