package handlers

import (
	"errors"
	"net/http"

	"ai-architect-console/internal/models"
	"ai-architect-console/internal/pages"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ProjectsHandler struct {
	projects pages.ProjectService
	locale   pages.Locale
	renderer *Renderer
}

func NewProjectsHandler(projects pages.ProjectService, locale pages.Locale, renderer *Renderer) *ProjectsHandler {
	return &ProjectsHandler{
		projects: projects,
		locale:   locale,
		renderer: renderer,
	}
}

type projectInput struct {
	Name        string `form:"name" binding:"required,max=255"`
	Description string `form:"description" binding:"max=5000"`
}

// mount builds the list page and runs its initial fetch. It reports false when
// the browser went away before the fetch finished.
func (h *ProjectsHandler) mount(c *gin.Context) (*pages.ProjectList, bool) {
	page := pages.NewProjectList(h.projects, h.locale)
	_ = page.Mount(c.Request.Context())
	return page, c.Request.Context().Err() == nil
}

func (h *ProjectsHandler) render(c *gin.Context, page *pages.ProjectList, status int) {
	if status == http.StatusOK && page.BlockingError() != "" {
		status = http.StatusBadGateway
	}
	h.renderer.HTML(c, status, "projects", pageData[*pages.ProjectList]{Page: page})
}

// ListProjects renders the table. ?dialog=new or ?dialog=edit&id=N opens the
// project dialog on top of it.
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	page, ok := h.mount(c)
	if !ok {
		return
	}

	switch c.Query("dialog") {
	case "new":
		page.OpenCreate()
	case "edit":
		if id, err := pages.ParseProjectID(c.Query("id")); err == nil {
			page.OpenEditByID(id)
		}
	}

	h.render(c, page, http.StatusOK)
}

func (h *ProjectsHandler) NewProject(c *gin.Context) {
	page, ok := h.mount(c)
	if !ok {
		return
	}
	page.OpenCreate()
	h.render(c, page, http.StatusOK)
}

func (h *ProjectsHandler) EditProject(c *gin.Context) {
	page, ok := h.mount(c)
	if !ok {
		return
	}

	status := http.StatusOK
	id, err := pages.ParseProjectID(c.Param("project_id"))
	if err != nil {
		page.Alert = pages.MsgInvalidProjectID
		status = http.StatusBadRequest
	} else if !page.OpenEditByID(id) && page.BlockingError() == "" {
		page.Alert = pages.MsgProjectNotFound
		status = http.StatusNotFound
	}
	h.render(c, page, status)
}

func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	h.save(c, pages.Create{})
}

func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	id, err := pages.ParseProjectID(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	// save swaps in the loaded project when the list contains it
	h.save(c, pages.Edit{Project: models.Project{ID: id}})
}

func (h *ProjectsHandler) save(c *gin.Context, mode pages.Mode) {
	page, ok := h.mount(c)
	if !ok {
		return
	}

	if e, isEdit := mode.(pages.Edit); isEdit {
		if project, found := page.Find(e.Project.ID); found {
			mode = pages.Edit{Project: project}
		}
	}

	form := pages.NewProjectForm(mode)
	var in projectInput
	bindErr := c.ShouldBind(&in)
	form.Name = in.Name
	form.Description = in.Description

	if bindErr != nil {
		form.Error = bindingMessage(bindErr)
		page.Dialog = &form
		h.render(c, page, http.StatusUnprocessableEntity)
		return
	}

	if err := page.Save(c.Request.Context(), form); err != nil {
		if c.Request.Context().Err() != nil {
			return
		}
		status := http.StatusBadGateway
		if errors.Is(err, pages.ErrNameRequired) {
			status = http.StatusUnprocessableEntity
		}
		_ = c.Error(err)
		h.render(c, page, status)
		return
	}

	h.render(c, page, http.StatusOK)
}

func (h *ProjectsHandler) ConfirmDelete(c *gin.Context) {
	id, err := pages.ParseProjectID(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	h.renderer.HTML(c, http.StatusOK, "confirm_delete", gin.H{"ProjectID": id})
}

// DeleteProject deletes only when the confirmation form said yes; any other
// answer returns to the unchanged list.
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	id, err := pages.ParseProjectID(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	confirmed := c.PostForm("confirm") == "yes"
	if !confirmed {
		c.Redirect(http.StatusSeeOther, "/projects")
		return
	}

	page, ok := h.mount(c)
	if !ok {
		return
	}
	if err := page.Delete(c.Request.Context(), id, confirmed); err != nil {
		if c.Request.Context().Err() != nil {
			return
		}
		_ = c.Error(err)
		h.render(c, page, http.StatusBadGateway)
		return
	}
	h.render(c, page, http.StatusOK)
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid form submission."
	}
	for _, fe := range verrs {
		switch {
		case fe.Field() == "Name" && fe.Tag() == "required":
			return pages.MsgNameRequired
		case fe.Tag() == "max":
			return fe.Field() + " must be at most " + fe.Param() + " characters."
		}
	}
	return "Invalid form submission."
}
