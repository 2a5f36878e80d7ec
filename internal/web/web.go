// Package web serves the bot's static documentation page.
package web

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed doc.html
var docPage []byte

func RegisterRoutes(router gin.IRouter) {
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/doc")
	})
	router.GET("/doc", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", docPage)
	})
}
