// Package pages holds the view models behind the console's screens. A page is
// built per request, mounted (fetches issued), mutated by user actions and
// then rendered; nothing survives between requests.
package pages

import (
	"context"
	"errors"

	"ai-architect-console/internal/models"
)

var (
	ErrNameRequired      = errors.New("project name is required")
	ErrPromptRequired    = errors.New("prompt is required")
	ErrInvalidParameters = errors.New("parameters are not valid JSON")
	ErrInvalidProjectID  = errors.New("invalid project id")
)

// User-facing messages.
const (
	MsgNameRequired       = "Name is required."
	MsgPromptRequired     = "Prompt cannot be empty."
	MsgInvalidParameters  = "Parameters must be valid JSON."
	MsgInvalidProjectID   = "Invalid or no project ID provided."
	MsgProjectNotFound    = "Project not found."
	MsgProjectLoadFailed  = "Failed to load project details."
	MsgProjectsLoadFailed = "Failed to load projects. Please try again later."
	MsgCreationsFailed    = "Failed to load image creations."
)

type ProjectService interface {
	ProjectGetter
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, projectID int64, req models.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID int64) error
}

type ProjectGetter interface {
	GetProject(ctx context.Context, projectID int64) (*models.Project, error)
}

type CreationService interface {
	GenerateTextToImage(ctx context.Context, projectID int64, req models.CreateTextToImageRequest) (*models.ImageCreation, error)
	ListImageCreations(ctx context.Context, projectID int64) ([]models.ImageCreation, error)
}

// ImageLinker builds browser-facing URLs for generated images.
type ImageLinker interface {
	OutputImageURL(projectID int64, fileName string) string
}
