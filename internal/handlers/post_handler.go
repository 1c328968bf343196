package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"github.com/bondbuddies/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles post, like, share and comment HTTP requests
type PostHandler struct {
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
	likeRepository    repositories.LikeRepository
	engagement        *services.EngagementService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository, engagement *services.EngagementService) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		commentRepository: commentRepo,
		likeRepository:    likeRepo,
		engagement:        engagement,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/feed", h.GetFeed)
	g.GET("/posts/:post_id", h.GetPost)
	g.DELETE("/posts/:post_id", h.DeletePost)
	g.GET("/users/:id/posts", h.GetUserPosts)
	g.POST("/posts/:post_id/likes", h.LikePost)
	g.DELETE("/posts/:post_id/likes", h.UnlikePost)
	g.POST("/posts/:post_id/share", h.SharePost)
	g.POST("/posts/:post_id/comments", h.CommentPost)
	g.GET("/posts/:post_id/comments", h.GetComments)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.engagement.CreatePost(c.Request().Context(), currentUserID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPosts returns paginated posts, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	skip := int64((page - 1) * limit)

	posts, err := h.postRepository.GetAllPosts(c.Request().Context(), skip, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"data": posts, "page": page, "limit": limit})
}

// GetFeed returns posts from users the current user follows, newest first
func (h *PostHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	skip := int64((page - 1) * limit)

	posts, err := h.engagement.Feed(c.Request().Context(), currentUserID, skip, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"data": posts, "page": page, "limit": limit})
}

// GetPost returns a single post with the caller's like state
func (h *PostHandler) GetPost(c echo.Context) error {
	postID := c.Param("post_id")
	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	liked, err := h.likeRepository.HasUserLikedPost(postID, getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	// The like rows are the authority; the document counter is a cache.
	likes, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"post": post, "liked": liked, "likes_count": likes})
}

// DeletePost removes a post owned by the current user
func (h *PostHandler) DeletePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID := c.Param("post_id")
	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.AuthorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post author")
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUserPosts returns a user's posts, newest first
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	skip := int64((page - 1) * limit)

	posts, err := h.postRepository.GetPostsByAuthor(c.Request().Context(), uint(authorID), skip, int64(limit))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"data": posts, "page": page, "limit": limit})
}

// LikePost handles liking a post
func (h *PostHandler) LikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ok, err := h.engagement.LikePost(c.Request().Context(), currentUserID, c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusConflict, "Post not found or already liked")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

// UnlikePost handles unliking a post
func (h *PostHandler) UnlikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	removed, err := h.engagement.UnlikePost(c.Request().Context(), currentUserID, c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !removed {
		return echo.NewHTTPError(http.StatusNotFound, "Like not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// SharePost records a share of the post
func (h *PostHandler) SharePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ok, err := h.engagement.SharePost(c.Request().Context(), currentUserID, c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// CommentPost adds a comment to a post
func (h *PostHandler) CommentPost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.engagement.CommentPost(c.Request().Context(), currentUserID, c.Param("post_id"), req.Content)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if comment == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetComments lists comments for a post
func (h *PostHandler) GetComments(c echo.Context) error {
	postID := c.Param("post_id")
	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	total, err := h.commentRepository.GetCommentsCountByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"data": comments, "total": total})
}
