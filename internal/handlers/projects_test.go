package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"ai-architect-console/internal/models"
	"ai-architect-console/internal/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func villa() models.Project {
	return models.Project{ID: 1, Name: "Villa", Description: "Sea view", CreatedAt: ts("2024-01-01T00:00:00Z"), UpdatedAt: ts("2024-01-02T00:00:00Z")}
}

func TestListProjects_RendersRows(t *testing.T) {
	long := strings.Repeat("x", 150)
	var projects []models.Project
	for i := 1; i <= 15; i++ {
		projects = append(projects, models.Project{
			ID:          int64(i),
			Name:        fmt.Sprintf("Project %d", i),
			Description: long,
			CreatedAt:   ts("2024-03-05T12:00:00Z"),
		})
	}
	router := newTestRouter(t, newFakeBackend(projects...), fakeResolver{})

	w := get(router, "/projects")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	for i := 1; i <= 15; i++ {
		assert.Contains(t, body, fmt.Sprintf(`data-project-id="%d"`, i))
	}
	assert.Contains(t, body, "3/5/2024")
	assert.Contains(t, body, strings.Repeat("x", 100)+"...")
	assert.NotContains(t, body, strings.Repeat("x", 101))
}

func TestListProjects_Empty(t *testing.T) {
	router := newTestRouter(t, newFakeBackend(), fakeResolver{})

	w := get(router, "/projects")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No projects found.")
}

func TestListProjects_FetchFailure(t *testing.T) {
	svc := newFakeBackend(villa())
	svc.failList = true
	router := newTestRouter(t, svc, fakeResolver{})

	w := get(router, "/projects")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), pages.MsgProjectsLoadFailed)
	assert.NotContains(t, w.Body.String(), "<table>")
}

func TestNewProject_OpensEmptyDialog(t *testing.T) {
	router := newTestRouter(t, newFakeBackend(villa()), fakeResolver{})

	w := get(router, "/projects/new")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Add New Project")
	assert.Contains(t, body, `action="/projects"`)
	assert.Contains(t, body, "Create Project")
	assert.NotContains(t, body, `value="Villa"`)
}

func TestCreateProject_SendsRequestAndRefetches(t *testing.T) {
	svc := newFakeBackend()
	router := newTestRouter(t, svc, fakeResolver{})

	w := postForm(router, "/projects", url.Values{"name": {"Demo"}, "description": {""}})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastCreate)
	assert.Equal(t, models.CreateProjectRequest{Name: "Demo", Description: ""}, *svc.lastCreate)
	assert.Equal(t, []string{"GET /projects", "POST /projects", "GET /projects"}, svc.Calls())
	assert.Contains(t, w.Body.String(), "<td>Demo</td>")
	assert.NotContains(t, w.Body.String(), "<dialog open>")
}

func TestCreateProject_BlankNameSendsNothing(t *testing.T) {
	for name, value := range map[string]string{"empty": "", "whitespace": "   "} {
		t.Run(name, func(t *testing.T) {
			svc := newFakeBackend()
			router := newTestRouter(t, svc, fakeResolver{})

			w := postForm(router, "/projects", url.Values{"name": {value}, "description": {"kept"}})

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), pages.MsgNameRequired)
			assert.Contains(t, w.Body.String(), ">kept</textarea>")
			assert.Equal(t, []string{"GET /projects"}, svc.Calls())
		})
	}
}

func TestCreateProject_BackendFailureKeepsDialog(t *testing.T) {
	svc := newFakeBackend()
	svc.failSave = true
	router := newTestRouter(t, svc, fakeResolver{})

	w := postForm(router, "/projects", url.Values{"name": {"Demo"}})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Error saving project: backend down")
	assert.Contains(t, body, `value="Demo"`)
}

func TestEditProject_PrefillsDialog(t *testing.T) {
	router := newTestRouter(t, newFakeBackend(villa()), fakeResolver{})

	w := get(router, "/projects/1/edit")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Edit Project")
	assert.Contains(t, body, `action="/projects/1"`)
	assert.Contains(t, body, `value="Villa"`)
	assert.Contains(t, body, ">Sea view</textarea>")
	assert.Contains(t, body, "Save Changes")
}

func TestEditProject_UnknownAndInvalidID(t *testing.T) {
	router := newTestRouter(t, newFakeBackend(villa()), fakeResolver{})

	w := get(router, "/projects/99/edit")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), pages.MsgProjectNotFound)

	w = get(router, "/projects/abc/edit")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), pages.MsgInvalidProjectID)
}

func TestUpdateProject_SendsPut(t *testing.T) {
	svc := newFakeBackend(villa())
	router := newTestRouter(t, svc, fakeResolver{})

	w := postForm(router, "/projects/1", url.Values{"name": {"Villa Nova"}, "description": {"Sea view"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"GET /projects", "PUT /projects/1", "GET /projects"}, svc.Calls())
	assert.Contains(t, w.Body.String(), "<td>Villa Nova</td>")
}

func TestDeleteProject_ConfirmFlow(t *testing.T) {
	svc := newFakeBackend(villa(), models.Project{ID: 2, Name: "Cabin", CreatedAt: ts("2024-01-03T00:00:00Z")})
	router := newTestRouter(t, svc, fakeResolver{})

	w := get(router, "/projects/1/delete")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Are you sure you want to delete this project?")
	assert.Empty(t, svc.Calls())

	w = postForm(router, "/projects/1/delete", url.Values{"confirm": {"no"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/projects", w.Header().Get("Location"))
	assert.Empty(t, svc.Calls())

	w = postForm(router, "/projects/1/delete", url.Values{"confirm": {"yes"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"GET /projects", "DELETE /projects/1", "GET /projects"}, svc.Calls())
	assert.NotContains(t, w.Body.String(), "<td>Villa</td>")
	assert.Contains(t, w.Body.String(), "<td>Cabin</td>")
}

func TestDeleteProject_Failure(t *testing.T) {
	svc := newFakeBackend(villa())
	svc.failDelete = true
	router := newTestRouter(t, svc, fakeResolver{})

	w := postForm(router, "/projects/1/delete", url.Values{"confirm": {"yes"}})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Error deleting project: backend down")
	assert.Contains(t, w.Body.String(), "<td>Villa</td>")
}
