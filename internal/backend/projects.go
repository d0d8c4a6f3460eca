package backend

import (
	"context"
	"fmt"
	"net/http"

	"ai-architect-console/internal/models"
)

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, projectID int64) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodGet, projectPath(projectID), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, projectID int64, req models.UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPut, projectPath(projectID), req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, projectID int64) error {
	return c.do(ctx, http.MethodDelete, projectPath(projectID), nil, nil)
}

func projectPath(projectID int64) string {
	return fmt.Sprintf("/projects/%d", projectID)
}
