package handlers

import (
	"net/http"

	"ai-architect-console/internal/media"
	"ai-architect-console/internal/middleware"
	"ai-architect-console/internal/pages"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Projects  pages.ProjectService
	Creations pages.CreationService
	Media     media.Resolver
	Locale    pages.Locale
	Logger    zerolog.Logger
}

func NewRouter(deps Dependencies) (*gin.Engine, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	projectsHandler := NewProjectsHandler(deps.Projects, deps.Locale, renderer)
	detailHandler := NewProjectDetailHandler(deps.Projects, deps.Creations, deps.Media, deps.Locale, renderer)
	mediaHandler := NewMediaHandler(deps.Creations, deps.Media)

	router := gin.New()
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(gin.Recovery())

	router.GET("/health", HealthHandler)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/projects")
	})

	projects := router.Group("/projects")
	projects.GET("", projectsHandler.ListProjects)
	projects.POST("", projectsHandler.CreateProject)
	projects.GET("/new", projectsHandler.NewProject)
	projects.GET("/:project_id", detailHandler.GetProject)
	projects.POST("/:project_id", projectsHandler.UpdateProject)
	projects.GET("/:project_id/edit", projectsHandler.EditProject)
	projects.GET("/:project_id/delete", projectsHandler.ConfirmDelete)
	projects.POST("/:project_id/delete", projectsHandler.DeleteProject)
	projects.POST("/:project_id/generate", detailHandler.Generate)
	projects.GET("/:project_id/creations/:creation_id/image", mediaHandler.OutputImage)

	return router, nil
}
