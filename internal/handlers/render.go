package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = []string{"projects", "project_detail", "confirm_delete"}

// Renderer holds one template set per page, each sharing the layout and the
// dialog partials.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageTemplates))}
	for _, name := range pageTemplates {
		tmpl, err := template.ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

func (r *Renderer) HTML(c *gin.Context, status int, name string, data any) {
	tmpl, ok := r.pages[name]
	if !ok {
		c.String(http.StatusInternalServerError, "unknown page %q", name)
		return
	}
	c.Render(status, render.HTML{Template: tmpl, Name: "layout", Data: data})
}

type pageData[T any] struct {
	Page T
}
