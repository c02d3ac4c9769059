package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amdkholil/django-blog/internal/models"
	"github.com/amdkholil/django-blog/internal/repository"
)

type CategoryHandler struct {
	repo *repository.CategoryRepository
}

func NewCategoryHandler(repo *repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

type categoryReq struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cat := &models.Category{Name: req.Name, Slug: req.Slug, Description: req.Description}
	if err := h.repo.Create(c.Request.Context(), cat); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	cat, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cat.Name = req.Name
	cat.Slug = req.Slug
	cat.Description = req.Description
	if err := h.repo.Save(c.Request.Context(), cat); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Delete removes the category. Posts that referenced it survive with a
// nulled category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	cat, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), cat.ID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
