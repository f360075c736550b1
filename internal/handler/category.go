package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories CategoryStore
}

func NewCategoryHandler(categories CategoryStore) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List returns up to ?size= categories plus the total stored count. The
// count ignores the limit. A missing or unparsable size means no limit.
func (h *CategoryHandler) List(c *gin.Context) {
	size, _ := strconv.ParseInt(c.Query("size"), 10, 64)
	categories, err := h.categories.List(c.Request.Context(), size)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	count, err := h.categories.Count(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"count": count, "categories": categories})
}
