package pages

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"ai-architect-console/internal/backend"
	"ai-architect-console/internal/fetchstate"
	"ai-architect-console/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const promptPreviewLen = 50

type ProjectView struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

type CreationCard struct {
	ID            int64
	PromptPreview string
	Prompt        string
	Status        models.CreationStatus
	StatusClass   string
	// ImageURL is set only for completed creations with an output file.
	ImageURL   string
	Processing bool
	CreatedAt  string
}

// ProjectDetail is one project with its image creation history and the
// text-to-image form.
type ProjectDetail struct {
	projects  ProjectGetter
	creations CreationService
	images    ImageLinker
	locale    Locale

	ProjectID int64
	idErr     error

	Project   fetchstate.State[models.Project]
	Creations fetchstate.State[[]models.ImageCreation]
	Form      GenerationForm
	// Selected is the open creation detail dialog, nil when closed.
	Selected *CreationDetail
}

// ParseProjectID accepts only positive decimal ids.
func ParseProjectID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidProjectID
	}
	return id, nil
}

func NewProjectDetail(rawID string, projects ProjectGetter, creations CreationService, images ImageLinker, locale Locale) *ProjectDetail {
	id, err := ParseProjectID(rawID)
	return &ProjectDetail{
		projects:  projects,
		creations: creations,
		images:    images,
		locale:    locale,
		ProjectID: id,
		idErr:     err,
	}
}

// Mount fetches the project and its creations concurrently. The two fetches
// are independent: one failing leaves the other's result intact.
func (p *ProjectDetail) Mount(ctx context.Context) error {
	if p.idErr != nil {
		return p.idErr
	}

	var g errgroup.Group
	g.Go(func() error { return p.loadProject(ctx) })
	g.Go(func() error { return p.RefreshCreations(ctx) })
	return g.Wait()
}

func (p *ProjectDetail) loadProject(ctx context.Context) error {
	err := p.Project.Load(ctx, func(ctx context.Context) (models.Project, error) {
		project, err := p.projects.GetProject(ctx, p.ProjectID)
		if err != nil {
			return models.Project{}, err
		}
		return *project, nil
	})
	if err != nil && ctx.Err() == nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("project_id", p.ProjectID).Msg("failed to fetch project details")
	}
	return err
}

func (p *ProjectDetail) RefreshCreations(ctx context.Context) error {
	if p.idErr != nil {
		return p.idErr
	}
	err := p.Creations.Load(ctx, func(ctx context.Context) ([]models.ImageCreation, error) {
		creations, err := p.creations.ListImageCreations(ctx, p.ProjectID)
		if err != nil {
			return nil, err
		}
		return SortNewestFirst(creations), nil
	})
	if err != nil && ctx.Err() == nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("project_id", p.ProjectID).Msg("failed to fetch image creations")
	}
	return err
}

// Generate submits the form and refetches the history after a successful
// submission.
func (p *ProjectDetail) Generate(ctx context.Context) error {
	if p.idErr != nil {
		p.Form.Error = MsgInvalidProjectID
		return p.idErr
	}
	if _, err := p.Form.Submit(ctx, p.creations, p.ProjectID); err != nil {
		if !errors.Is(err, ErrPromptRequired) && !errors.Is(err, ErrInvalidParameters) {
			zerolog.Ctx(ctx).Error().Err(err).Int64("project_id", p.ProjectID).Msg("failed to generate image")
		}
		return err
	}
	_ = p.RefreshCreations(ctx)
	return nil
}

// Select opens the detail dialog for a loaded creation.
func (p *ProjectDetail) Select(creationID int64) bool {
	creations, _ := p.Creations.Data()
	for i := range creations {
		if creations[i].ID == creationID {
			p.Selected = NewCreationDetail(&creations[i], p.images, p.locale)
			return true
		}
	}
	return false
}

// BlockingError is non-empty when the project itself cannot be shown.
func (p *ProjectDetail) BlockingError() string {
	switch {
	case p.idErr != nil:
		return MsgInvalidProjectID
	case p.Project.Blocking() && errors.Is(p.Project.Err(), backend.ErrNotFound):
		return MsgProjectNotFound
	case p.Project.Blocking():
		return MsgProjectLoadFailed
	}
	if _, ok := p.Project.Data(); !ok {
		return MsgProjectNotFound
	}
	return ""
}

func (p *ProjectDetail) NotFound() bool {
	return p.Project.Blocking() && errors.Is(p.Project.Err(), backend.ErrNotFound)
}

func (p *ProjectDetail) InvalidID() bool {
	return p.idErr != nil
}

func (p *ProjectDetail) View() ProjectView {
	project, _ := p.Project.Data()
	return ProjectView{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   p.locale.DateTime(project.CreatedAt),
		UpdatedAt:   p.locale.DateTime(project.UpdatedAt),
	}
}

func (p *ProjectDetail) CreationsError() string {
	if p.Creations.Phase() == fetchstate.Failed {
		return MsgCreationsFailed
	}
	return ""
}

func (p *ProjectDetail) NoCreations() bool {
	creations, ok := p.Creations.Data()
	return ok && len(creations) == 0 && p.Creations.Phase() == fetchstate.Loaded
}

// Cards are newest first.
func (p *ProjectDetail) Cards() []CreationCard {
	creations, _ := p.Creations.Data()
	cards := make([]CreationCard, len(creations))
	for i, c := range creations {
		card := CreationCard{
			ID:            c.ID,
			PromptPreview: Truncate(c.PromptText, promptPreviewLen),
			Prompt:        c.PromptText,
			Status:        c.Status,
			StatusClass:   statusClass(c.Status),
			Processing:    c.Status.InProgress(),
			CreatedAt:     p.locale.DateTime(c.CreatedAt),
		}
		if c.HasOutputImage() {
			card.ImageURL = p.images.OutputImageURL(c.ProjectID, c.OutputImageFileName)
		}
		cards[i] = card
	}
	return cards
}

// SortNewestFirst returns a copy ordered by CreatedAt descending; ties keep
// the server's order.
func SortNewestFirst(creations []models.ImageCreation) []models.ImageCreation {
	sorted := slices.Clone(creations)
	slices.SortStableFunc(sorted, func(a, b models.ImageCreation) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
	return sorted
}
