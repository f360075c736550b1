package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

type WishlistHandler struct {
	wishlist WishlistStore
}

func NewWishlistHandler(wishlist WishlistStore) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// Create adds an entry unless one already exists for the productId. The
// dedup key is the product alone, so a second buyer cannot wishlist a
// product someone else already has.
func (h *WishlistHandler) Create(c *gin.Context) {
	var entry model.Wishlist
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	existing, err := h.wishlist.FindByProduct(c.Request.Context(), entry.ProductID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(200, gin.H{"acknowledged": false, "message": "already added to wishlist"})
		return
	}
	res, err := h.wishlist.Insert(c.Request.Context(), entry)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, insertBody(res))
}

func (h *WishlistHandler) ListByBuyer(c *gin.Context) {
	entries, err := h.wishlist.ListByBuyer(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, entries)
}
