// Package web serves the embedded browser front end: a single page that
// talks to the JSON API with a bearer token kept in localStorage.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

func RegisterRoutes(router *gin.Engine) {
	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}

	index, err := assets.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	router.StaticFS("/static", http.FS(staticFS))
}
