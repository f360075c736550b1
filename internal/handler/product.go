package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

type ProductHandler struct {
	products ProductStore
	users    UserStore
}

func NewProductHandler(products ProductStore, users UserStore) *ProductHandler {
	return &ProductHandler{products: products, users: users}
}

// Create inserts the posted product, stamping isSellerVerification from the
// owning user's isVerify flag. The read and the insert are two independent
// store calls.
func (h *ProductHandler) Create(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	owner, err := h.users.FindByEmail(c.Request.Context(), product.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if owner != nil {
		product.IsSellerVerification = owner.IsVerify
	}
	res, err := h.products.Insert(c.Request.Context(), product)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, insertBody(res))
}

func (h *ProductHandler) ListMine(c *gin.Context) {
	products, err := h.products.ListByOwner(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, products)
}

// Delete removes a product by id. Any authenticated caller may delete any
// product; there is no ownership check.
func (h *ProductHandler) Delete(c *gin.Context) {
	res, err := h.products.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, deleteBody(res))
}

// Advertise sets the advertise flag only when the body says so; otherwise
// the route answers with an empty 200, like the original's unanswered branch.
func (h *ProductHandler) Advertise(c *gin.Context) {
	var body struct {
		IsAdvertise bool `json:"isAdvertise"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if !body.IsAdvertise {
		return
	}
	res, err := h.products.SetAdvertised(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, updateBody(res))
}

// ByCategory lists unbooked products of the category named in ?path=.
func (h *ProductHandler) ByCategory(c *gin.Context) {
	products, err := h.products.ListByCategory(c.Request.Context(), c.Query("path"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, products)
}

func (h *ProductHandler) Advertised(c *gin.Context) {
	products, err := h.products.ListAdvertised(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, products)
}
