package pages

import (
	"context"
	"fmt"

	"ai-architect-console/internal/fetchstate"
	"ai-architect-console/internal/models"
	"github.com/rs/zerolog"
)

const descriptionPreviewLen = 100

type ProjectRow struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   string
}

// ProjectList is the projects table together with its add/edit dialog and
// delete action. Every successful mutation is followed by a full refetch.
type ProjectList struct {
	svc    ProjectService
	locale Locale

	Projects fetchstate.State[[]models.Project]
	// Dialog is the open add/edit dialog, nil when closed.
	Dialog *ProjectForm
	// Alert is a blocking message from a failed save or delete.
	Alert string
}

func NewProjectList(svc ProjectService, locale Locale) *ProjectList {
	return &ProjectList{svc: svc, locale: locale}
}

func (p *ProjectList) Mount(ctx context.Context) error {
	return p.refresh(ctx)
}

func (p *ProjectList) refresh(ctx context.Context) error {
	err := p.Projects.Load(ctx, p.svc.ListProjects)
	if err != nil && ctx.Err() == nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to fetch projects")
	}
	return err
}

func (p *ProjectList) OpenCreate() {
	form := NewProjectForm(Create{})
	p.Dialog = &form
}

func (p *ProjectList) OpenEdit(project models.Project) {
	form := NewProjectForm(Edit{Project: project})
	p.Dialog = &form
}

// OpenEditByID opens the edit dialog for a project in the loaded list.
func (p *ProjectList) OpenEditByID(projectID int64) bool {
	project, ok := p.Find(projectID)
	if !ok {
		return false
	}
	p.OpenEdit(project)
	return true
}

func (p *ProjectList) Find(projectID int64) (models.Project, bool) {
	projects, _ := p.Projects.Data()
	for _, project := range projects {
		if project.ID == projectID {
			return project, true
		}
	}
	return models.Project{}, false
}

// Save submits the dialog. On success the dialog closes and the list is
// refetched; a refetch failure only affects the list state, not the result.
func (p *ProjectList) Save(ctx context.Context, form ProjectForm) error {
	p.Dialog = &form
	p.Dialog.Error = ""

	if err := form.Validate(); err != nil {
		p.Dialog.Error = MsgNameRequired
		return err
	}

	var err error
	switch m := form.Mode.(type) {
	case Create:
		_, err = p.svc.CreateProject(ctx, form.CreateRequest())
	case Edit:
		_, err = p.svc.UpdateProject(ctx, m.Project.ID, form.UpdateRequest())
	default:
		err = fmt.Errorf("unsupported dialog mode %T", m)
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to save project")
		p.Alert = "Error saving project: " + err.Error()
		return fmt.Errorf("failed to save project: %w", err)
	}

	p.Dialog = nil
	_ = p.refresh(ctx)
	return nil
}

// Delete removes a project once the user confirmed. Without confirmation
// nothing is sent and the list is left as it is.
func (p *ProjectList) Delete(ctx context.Context, projectID int64, confirmed bool) error {
	if !confirmed {
		return nil
	}

	if err := p.svc.DeleteProject(ctx, projectID); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("project_id", projectID).Msg("failed to delete project")
		p.Alert = "Error deleting project: " + err.Error()
		return fmt.Errorf("failed to delete project: %w", err)
	}

	_ = p.refresh(ctx)
	return nil
}

// Rows keeps the server's order.
func (p *ProjectList) Rows() []ProjectRow {
	projects, _ := p.Projects.Data()
	rows := make([]ProjectRow, len(projects))
	for i, project := range projects {
		rows[i] = ProjectRow{
			ID:          project.ID,
			Name:        project.Name,
			Description: Truncate(project.Description, descriptionPreviewLen),
			CreatedAt:   p.locale.Date(project.CreatedAt),
		}
	}
	return rows
}

// BlockingError replaces the whole page: nothing was ever loaded.
func (p *ProjectList) BlockingError() string {
	if p.Projects.Blocking() {
		return MsgProjectsLoadFailed
	}
	return ""
}

// RefreshError is shown above still-visible stale rows.
func (p *ProjectList) RefreshError() string {
	if p.Projects.Stale() {
		return "Error refreshing projects: " + MsgProjectsLoadFailed
	}
	return ""
}

func (p *ProjectList) IsEmpty() bool {
	projects, ok := p.Projects.Data()
	return ok && len(projects) == 0
}
