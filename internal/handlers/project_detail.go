package handlers

import (
	"errors"
	"net/http"

	"ai-architect-console/internal/pages"
	"github.com/gin-gonic/gin"
)

type ProjectDetailHandler struct {
	projects  pages.ProjectGetter
	creations pages.CreationService
	images    pages.ImageLinker
	locale    pages.Locale
	renderer  *Renderer
}

func NewProjectDetailHandler(projects pages.ProjectGetter, creations pages.CreationService, images pages.ImageLinker, locale pages.Locale, renderer *Renderer) *ProjectDetailHandler {
	return &ProjectDetailHandler{
		projects:  projects,
		creations: creations,
		images:    images,
		locale:    locale,
		renderer:  renderer,
	}
}

type generateInput struct {
	Prompt         string `form:"prompt"`
	ParametersJSON string `form:"parametersJson"`
}

func (h *ProjectDetailHandler) mount(c *gin.Context) (*pages.ProjectDetail, bool) {
	page := pages.NewProjectDetail(c.Param("project_id"), h.projects, h.creations, h.images, h.locale)
	_ = page.Mount(c.Request.Context())
	return page, c.Request.Context().Err() == nil
}

func (h *ProjectDetailHandler) render(c *gin.Context, page *pages.ProjectDetail, status int) {
	if page.BlockingError() != "" {
		switch {
		case page.InvalidID():
			status = http.StatusBadRequest
		case page.NotFound():
			status = http.StatusNotFound
		default:
			status = http.StatusBadGateway
		}
	}
	h.renderer.HTML(c, status, "project_detail", pageData[*pages.ProjectDetail]{Page: page})
}

// GetProject renders the project page; ?creation=N opens that creation's
// detail dialog.
func (h *ProjectDetailHandler) GetProject(c *gin.Context) {
	page, ok := h.mount(c)
	if !ok {
		return
	}

	if raw := c.Query("creation"); raw != "" {
		if id, err := pages.ParseProjectID(raw); err == nil {
			page.Select(id)
		}
	}

	h.render(c, page, http.StatusOK)
}

func (h *ProjectDetailHandler) Generate(c *gin.Context) {
	page, ok := h.mount(c)
	if !ok {
		return
	}

	var in generateInput
	if err := c.ShouldBind(&in); err != nil {
		page.Form.Error = "Invalid form submission."
		h.render(c, page, http.StatusBadRequest)
		return
	}
	page.Form.Prompt = in.Prompt
	page.Form.ParametersJSON = in.ParametersJSON

	if err := page.Generate(c.Request.Context()); err != nil {
		if c.Request.Context().Err() != nil {
			return
		}
		status := http.StatusBadGateway
		if errors.Is(err, pages.ErrPromptRequired) || errors.Is(err, pages.ErrInvalidParameters) {
			status = http.StatusUnprocessableEntity
		}
		_ = c.Error(err)
		h.render(c, page, status)
		return
	}

	h.render(c, page, http.StatusOK)
}
