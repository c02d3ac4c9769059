package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amdkholil/django-blog/internal/models"
	"github.com/amdkholil/django-blog/internal/service"
)

type PostHandler struct {
	service *service.PostService
}

func NewPostHandler(s *service.PostService) *PostHandler {
	return &PostHandler{service: s}
}

type createPostReq struct {
	Title           string            `json:"title" binding:"required,min=1,max=200"`
	Slug            string            `json:"slug" binding:"omitempty,max=200"`
	Content         string            `json:"content" binding:"required,min=1"`
	MetaTitle       string            `json:"meta_title" binding:"omitempty,max=60"`
	MetaDescription string            `json:"meta_description" binding:"omitempty,max=160"`
	AuthorID        uint              `json:"author_id" binding:"required"`
	CategoryID      *uint             `json:"category_id"`
	TagIDs          []uint            `json:"tag_ids"`
	Status          models.PostStatus `json:"status" binding:"omitempty,oneof=draft published archived"`
	PublishDate     *time.Time        `json:"publish_date"`
	FeaturedImageID *uint             `json:"featured_image_id"`
	AllowComments   *bool             `json:"allow_comments"`
	IsFeatured      bool              `json:"is_featured"`
}

type updatePostReq struct {
	Title           string            `json:"title" binding:"required,min=1,max=200"`
	Slug            string            `json:"slug" binding:"omitempty,max=200"`
	Content         string            `json:"content" binding:"required,min=1"`
	MetaTitle       string            `json:"meta_title" binding:"omitempty,max=60"`
	MetaDescription string            `json:"meta_description" binding:"omitempty,max=160"`
	CategoryID      *uint             `json:"category_id"`
	TagIDs          []uint            `json:"tag_ids"`
	Status          models.PostStatus `json:"status" binding:"required,oneof=draft published archived"`
	PublishDate     *time.Time        `json:"publish_date"`
	FeaturedImageID *uint             `json:"featured_image_id"`
	AllowComments   *bool             `json:"allow_comments"`
	IsFeatured      bool              `json:"is_featured"`
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req createPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	allowComments := true
	if req.AllowComments != nil {
		allowComments = *req.AllowComments
	}
	post, err := h.service.CreatePost(c.Request.Context(), service.CreatePostInput{
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
		TagIDs:          req.TagIDs,
		Status:          req.Status,
		PublishDate:     req.PublishDate,
		FeaturedImageID: req.FeaturedImageID,
		AllowComments:   allowComments,
		IsFeatured:      req.IsFeatured,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.service.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		writeError(c, err)
		return
	}
	if c.Query("related") == "true" {
		related, err := h.service.RelatedPosts(c.Request.Context(), post.ID, 0)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"post": post, "related_posts": related})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	allowComments := true
	if req.AllowComments != nil {
		allowComments = *req.AllowComments
	}
	post, err := h.service.UpdatePost(c.Request.Context(), id, service.UpdatePostInput{
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CategoryID:      req.CategoryID,
		TagIDs:          req.TagIDs,
		Status:          req.Status,
		PublishDate:     req.PublishDate,
		FeaturedImageID: req.FeaturedImageID,
		AllowComments:   allowComments,
		IsFeatured:      req.IsFeatured,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPosts serves the named scopes. The filter runs against the clock
// on every request, so a scheduled post crosses into the published
// scope the moment its publish date passes.
func (h *PostHandler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		posts []models.Post
		err   error
	)
	switch scope := c.DefaultQuery("scope", "published"); scope {
	case "published":
		posts, err = h.service.Published(ctx)
	case "scheduled":
		posts, err = h.service.Scheduled(ctx)
	case "featured":
		posts, err = h.service.Featured(ctx)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown scope: " + scope})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) RecordView(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.ViewPost(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	res, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
