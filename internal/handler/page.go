package handler

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed all:static
var staticFS embed.FS

// PageHandler serves the browser search form.
type PageHandler struct {
	index  []byte
	assets http.Handler
}

// NewPageHandler loads the embedded page assets.
func NewPageHandler() (*PageHandler, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	index, err := fs.ReadFile(sub, "index.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		index:  index,
		assets: http.StripPrefix("/static/", http.FileServer(http.FS(sub))),
	}, nil
}

// Index handles GET /.
func (h *PageHandler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, h.index)
}

// Assets handles GET /static/*.
func (h *PageHandler) Assets(c echo.Context) error {
	h.assets.ServeHTTP(c.Response(), c.Request())
	return nil
}
