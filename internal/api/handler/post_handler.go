package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rolebase/blog-api/internal/api/metrics"
	"github.com/rolebase/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts. The route runs under OptionalAuth: an anonymous
// caller is valid and simply sees published posts only.
//
// @Summary      List posts visible to the caller
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPostsResponse
// @Failure      500  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	details, err := h.service.List(c.Request().Context(), ctxViewerRole(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListPostsResponse(details))
}

// Get handles GET /posts/:id. Hidden and absent posts are indistinguishable.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"), ctxViewerRole(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(*detail))
}

// Create handles POST /posts (WRITER or ADMIN). The author is always the
// authenticated caller; published defaults to false.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
		AuthorID:  userID,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(strconv.FormatBool(detail.Published)).Inc()
	return c.JSON(http.StatusCreated, toPostResponse(*detail))
}

// Update handles PATCH /posts/:id (ADMIN only).
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [patch]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPostResponse(*detail))
}

// Delete handles DELETE /posts/:id (ADMIN only).
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  deletePostResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletePostResponse{Message: "post deleted"})
}
