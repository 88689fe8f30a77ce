package handler

import (
	"github.com/rolebase/blog-api/internal/core/ports"
)

func toPostResponse(d ports.PostDetail) postResponse {
	resp := postResponse{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		Published: d.Published,
		AuthorID:  d.AuthorID,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
	if d.Author != nil {
		resp.Author = &authorResponse{
			ID:    d.Author.ID,
			Name:  d.Author.Name,
			Email: d.Author.Email,
		}
	}
	return resp
}

func toListPostsResponse(details []ports.PostDetail) listPostsResponse {
	posts := make([]postResponse, len(details))
	for i, d := range details {
		posts[i] = toPostResponse(d)
	}
	return listPostsResponse{Posts: posts}
}
