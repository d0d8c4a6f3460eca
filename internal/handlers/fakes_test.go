package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"ai-architect-console/internal/backend"
	"ai-architect-console/internal/handlers"
	"ai-architect-console/internal/media"
	"ai-architect-console/internal/models"
	"ai-architect-console/internal/pages"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("backend down")

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type fakeBackend struct {
	mu        sync.Mutex
	calls     []string
	projects  []models.Project
	creations map[int64][]models.ImageCreation
	nextID    int64

	lastCreate   *models.CreateProjectRequest
	lastGenerate *models.CreateTextToImageRequest

	failList     bool
	failGet      bool
	failSave     bool
	failDelete   bool
	failGenerate bool
}

func newFakeBackend(projects ...models.Project) *fakeBackend {
	return &fakeBackend{
		projects:  projects,
		creations: map[int64][]models.ImageCreation{},
		nextID:    100,
	}
}

func (f *fakeBackend) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) ListProjects(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GET /projects")
	if f.failList {
		return nil, errBackendDown
	}
	return append([]models.Project(nil), f.projects...), nil
}

func (f *fakeBackend) GetProject(ctx context.Context, projectID int64) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GET /projects/%d", projectID)
	if f.failGet {
		return nil, errBackendDown
	}
	for _, p := range f.projects {
		if p.ID == projectID {
			return &p, nil
		}
	}
	return nil, &backend.APIError{Method: http.MethodGet, Path: fmt.Sprintf("/projects/%d", projectID), StatusCode: http.StatusNotFound}
}

func (f *fakeBackend) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("POST /projects")
	f.lastCreate = &req
	if f.failSave {
		return nil, errBackendDown
	}
	f.nextID++
	p := models.Project{ID: f.nextID, Name: req.Name, Description: req.Description, CreatedAt: ts("2024-05-01T10:00:00Z")}
	f.projects = append(f.projects, p)
	return &p, nil
}

func (f *fakeBackend) UpdateProject(ctx context.Context, projectID int64, req models.UpdateProjectRequest) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("PUT /projects/%d", projectID)
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
	return nil, &backend.APIError{Method: http.MethodPut, StatusCode: http.StatusNotFound}
}

func (f *fakeBackend) DeleteProject(ctx context.Context, projectID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DELETE /projects/%d", projectID)
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
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("POST /projects/%d/image-creations/text-to-image", projectID)
	f.lastGenerate = &req
	if f.failGenerate {
		return nil, errBackendDown
	}
	f.nextID++
	c := models.ImageCreation{
		ID:         f.nextID,
		ProjectID:  projectID,
		InputType:  models.InputTextToImage,
		PromptText: req.PromptText,
		Status:     models.StatusPending,
		CreatedAt:  models.NewTimestamp(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	f.creations[projectID] = append(f.creations[projectID], c)
	return &c, nil
}

func (f *fakeBackend) ListImageCreations(ctx context.Context, projectID int64) ([]models.ImageCreation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GET /projects/%d/image-creations", projectID)
	return append([]models.ImageCreation(nil), f.creations[projectID]...), nil
}

type fakeResolver struct {
	fail bool
}

func (fakeResolver) OutputImageURL(projectID int64, fileName string) string {
	return fmt.Sprintf("http://api.test/media/output/%d/%s", projectID, fileName)
}

func (r fakeResolver) FetchOutputImage(ctx context.Context, projectID int64, fileName string) (*media.Image, error) {
	if r.fail {
		return nil, errBackendDown
	}
	return &media.Image{Data: pngBytes, ContentType: "image/png"}, nil
}

func ts(s string) models.Timestamp {
	t, err := models.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestRouter(t *testing.T, svc *fakeBackend, resolver media.Resolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := handlers.NewRouter(handlers.Dependencies{
		Projects:  svc,
		Creations: svc,
		Media:     resolver,
		Locale:    pages.Locale{Location: time.UTC},
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
