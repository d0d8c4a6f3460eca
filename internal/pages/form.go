package pages

import (
	"strings"

	"ai-architect-console/internal/models"
)

// Mode selects what the project dialog does. It is either Create or Edit.
type Mode interface {
	isMode()
}

type Create struct{}

type Edit struct {
	Project models.Project
}

func (Create) isMode() {}
func (Edit) isMode()   {}

// ProjectForm is the shared add/edit project dialog.
type ProjectForm struct {
	Mode        Mode
	Name        string
	Description string
	Error       string
}

// NewProjectForm opens the dialog with fields taken from mode, never from a
// previous opening.
func NewProjectForm(mode Mode) ProjectForm {
	f := ProjectForm{Mode: mode}
	if e, ok := mode.(Edit); ok {
		f.Name = e.Project.Name
		f.Description = e.Project.Description
	}
	return f
}

func (f ProjectForm) IsEdit() bool {
	_, ok := f.Mode.(Edit)
	return ok
}

// ProjectID is the edited project's id, or 0 when creating.
func (f ProjectForm) ProjectID() int64 {
	if e, ok := f.Mode.(Edit); ok {
		return e.Project.ID
	}
	return 0
}

func (f ProjectForm) Title() string {
	if f.IsEdit() {
		return "Edit Project"
	}
	return "Add New Project"
}

func (f ProjectForm) Hint() string {
	if f.IsEdit() {
		return "Make changes to your project here. Click save when you're done."
	}
	return "Fill in the details for your new project. Click save to create it."
}

func (f ProjectForm) SubmitLabel() string {
	if f.IsEdit() {
		return "Save Changes"
	}
	return "Create Project"
}

func (f ProjectForm) PendingLabel() string {
	if f.IsEdit() {
		return "Saving..."
	}
	return "Creating..."
}

func (f ProjectForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

func (f ProjectForm) CreateRequest() models.CreateProjectRequest {
	return models.CreateProjectRequest{
		Name:        f.Name,
		Description: f.Description,
	}
}

func (f ProjectForm) UpdateRequest() models.UpdateProjectRequest {
	name, description := f.Name, f.Description
	return models.UpdateProjectRequest{
		Name:        &name,
		Description: &description,
	}
}
