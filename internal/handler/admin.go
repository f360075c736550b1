package handler

import "github.com/gin-gonic/gin"

type AdminHandler struct {
	users    UserStore
	products ProductStore
}

func NewAdminHandler(users UserStore, products ProductStore) *AdminHandler {
	return &AdminHandler{users: users, products: products}
}

func (h *AdminHandler) AllSellers(c *gin.Context) {
	h.listByRole(c, "isSeller")
}

func (h *AdminHandler) AllBuyers(c *gin.Context) {
	h.listByRole(c, "isBuyer")
}

func (h *AdminHandler) listByRole(c *gin.Context, flag string) {
	users, err := h.users.ListByRole(c.Request.Context(), flag)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, users)
}

// DeleteUser serves both /seller/:id and /buyer/:id; the row is deleted by
// id without checking that it actually carries the claimed role.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	res, err := h.users.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, deleteBody(res))
}

// VerifySeller flips the user's isVerify and bulk-flags every product owned
// by that email. Two independent writes.
func (h *AdminHandler) VerifySeller(c *gin.Context) {
	email := c.Query("email")
	userResult, err := h.users.SetVerified(c.Request.Context(), email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	productResult, err := h.products.VerifyAllByOwner(c.Request.Context(), email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{
		"userResult":    updateBody(userResult),
		"productResult": updateBody(productResult),
	})
}
