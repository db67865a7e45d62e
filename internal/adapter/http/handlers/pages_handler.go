package handlers

import (
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the fixed site documents.

type PagesHandler struct {
	pages fs.FS
}

func NewPagesHandler(pages fs.FS) *PagesHandler {
	return &PagesHandler{pages: pages}
}

// Page returns a handler that writes pages/<name> as HTML.
func (h *PagesHandler) Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := fs.ReadFile(h.pages, "pages/"+name)
		if err != nil {
			log.Printf("[pages][handler] missing page name=%s err=%v", name, err)
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
	}
}
