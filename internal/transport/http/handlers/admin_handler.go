package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amdkholil/django-blog/internal/admin"
)

type AdminHandler struct {
	registry *admin.Registry
}

func NewAdminHandler(registry *admin.Registry) *AdminHandler {
	return &AdminHandler{registry: registry}
}

type bulkActionReq struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

func (h *AdminHandler) PostAction(c *gin.Context) {
	h.dispatch(c, h.registry.PostAction)
}

func (h *AdminHandler) CommentAction(c *gin.Context) {
	h.dispatch(c, h.registry.CommentAction)
}

// dispatch resolves the named action and runs it over the selection,
// reporting the number of affected rows.
func (h *AdminHandler) dispatch(c *gin.Context, lookup func(string) (admin.Action, error)) {
	action, err := lookup(c.Param("action"))
	if err != nil {
		writeError(c, err)
		return
	}
	var req bulkActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	count, err := action(c.Request.Context(), req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}
