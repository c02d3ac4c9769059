package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amdkholil/django-blog/internal/service"
)

type CommentHandler struct {
	service *service.CommentService
}

func NewCommentHandler(s *service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

type commentReq struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Website string `json:"website" binding:"omitempty,url"`
	Content string `json:"content" binding:"required"`
}

// Submit stores a new comment in the moderation queue.
func (h *CommentHandler) Submit(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	comment, err := h.service.SubmitComment(c.Request.Context(), postID, service.SubmitCommentInput{
		Name:    req.Name,
		Email:   req.Email,
		Website: req.Website,
		Content: req.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// List returns the approved comments for a post, oldest first.
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.service.ApprovedCommentsBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
