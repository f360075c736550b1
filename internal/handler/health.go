package handler

import "github.com/gin-gonic/gin"

func Live(c *gin.Context) {
	c.String(200, "Pay&Buy server is running")
}
