package handler

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// Create stores a user unless the email already has a row. A duplicate gets
// an empty 200: the original server simply never answered that branch, and
// clients tolerate the empty body.
func (h *UserHandler) Create(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	existing, err := h.users.FindByEmail(c.Request.Context(), user.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		return
	}
	res, err := h.users.Insert(c.Request.Context(), user)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, insertBody(res))
}

// Get returns the stored document for ?email=, or a null body when absent.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.FindByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, user)
}

func (h *UserHandler) IsSeller(c *gin.Context) {
	h.roleCheck(c, "isSeller", func(u *model.User) bool { return u.IsSeller })
}

func (h *UserHandler) IsAdmin(c *gin.Context) {
	h.roleCheck(c, "isAdmin", func(u *model.User) bool { return u.IsAdmin })
}

func (h *UserHandler) IsBuyer(c *gin.Context) {
	h.roleCheck(c, "isBuyer", func(u *model.User) bool { return u.IsBuyer })
}

// roleCheck answers {flag:true} or 403. An email with no user row is a 500:
// the original dereferenced the missing document and threw.
func (h *UserHandler) roleCheck(c *gin.Context, flag string, has func(*model.User) bool) {
	user, err := h.users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(500, gin.H{"error": mongo.ErrNoDocuments.Error()})
		return
	}
	if !has(user) {
		c.JSON(403, gin.H{"acknowledged": false, "message": "forbidden access"})
		return
	}
	c.JSON(200, gin.H{flag: true})
}
