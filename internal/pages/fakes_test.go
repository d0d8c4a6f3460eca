package pages_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ai-architect-console/internal/backend"
	"ai-architect-console/internal/models"
)

var errBackendDown = errors.New("backend down")

// fakeBackend is an in-memory stand-in for the REST backend that records
// every call in order.
type fakeBackend struct {
	mu        sync.Mutex
	calls     []string
	projects  []models.Project
	creations map[int64][]models.ImageCreation
	nextID    int64

	failList     bool
	failGet      error
	failSave     bool
	failDelete   bool
	failCreation bool
	failGenerate bool
}

func newFakeBackend(projects ...models.Project) *fakeBackend {
	return &fakeBackend{
		projects:  projects,
		creations: map[int64][]models.ImageCreation{},
		nextID:    100,
	}
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) ListProjects(ctx context.Context) ([]models.Project, error) {
	f.record("GET /projects")
	if f.failList {
		return nil, errBackendDown
	}
	return append([]models.Project(nil), f.projects...), nil
}

func (f *fakeBackend) GetProject(ctx context.Context, projectID int64) (*models.Project, error) {
	f.record(fmt.Sprintf("GET /projects/%d", projectID))
	if f.failGet != nil {
		return nil, f.failGet
	}
	for _, p := range f.projects {
		if p.ID == projectID {
			return &p, nil
		}
	}
	return nil, &backend.APIError{Method: "GET", Path: fmt.Sprintf("/projects/%d", projectID), StatusCode: 404}
}

func (f *fakeBackend) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	f.record("POST /projects")
	if f.failSave {
		return nil, errBackendDown
	}
	f.nextID++
	p := models.Project{ID: f.nextID, Name: req.Name, Description: req.Description, CreatedAt: models.NewTimestamp(time.Now())}
	f.projects = append(f.projects, p)
	return &p, nil
}

func (f *fakeBackend) UpdateProject(ctx context.Context, projectID int64, req models.UpdateProjectRequest) (*models.Project, error) {
	f.record(fmt.Sprintf("PUT /projects/%d", projectID))
	if f.failSave {
		return nil, errBackendDown
	}
	for i := range f.projects {
		if f.projects[i].ID == projectID {
			if req.Name != nil {
				f.projects[i].Name = *req.Name
			}
			if req.Description != nil {
				f.projects[i].Description = *req.Description
			}
			return &f.projects[i], nil
		}
	}
	return nil, &backend.APIError{Method: "PUT", StatusCode: 404}
}

func (f *fakeBackend) DeleteProject(ctx context.Context, projectID int64) error {
	f.record(fmt.Sprintf("DELETE /projects/%d", projectID))
	if f.failDelete {
		return errBackendDown
	}
	kept := f.projects[:0]
	for _, p := range f.projects {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	f.projects = kept
	return nil
}

func (f *fakeBackend) GenerateTextToImage(ctx context.Context, projectID int64, req models.CreateTextToImageRequest) (*models.ImageCreation, error) {
	f.record(fmt.Sprintf("POST /projects/%d/image-creations/text-to-image", projectID))
	if f.failGenerate {
		return nil, errBackendDown
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c := models.ImageCreation{
		ID:             f.nextID,
		ProjectID:      projectID,
		InputType:      models.InputTextToImage,
		PromptText:     req.PromptText,
		ParametersJSON: req.ParametersJSON,
		Status:         models.StatusPending,
		CreatedAt:      models.NewTimestamp(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	f.creations[projectID] = append(f.creations[projectID], c)
	return &c, nil
}

func (f *fakeBackend) ListImageCreations(ctx context.Context, projectID int64) ([]models.ImageCreation, error) {
	f.record(fmt.Sprintf("GET /projects/%d/image-creations", projectID))
	if f.failCreation {
		return nil, errBackendDown
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ImageCreation(nil), f.creations[projectID]...), nil
}

type fakeLinker struct{}

func (fakeLinker) OutputImageURL(projectID int64, fileName string) string {
	return fmt.Sprintf("http://api.test/media/output/%d/%s", projectID, fileName)
}

func ts(s string) models.Timestamp {
	t, err := models.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return t
}
