package handlers

import (
	"errors"
	"net/http"

	"ai-architect-console/internal/backend"
	"ai-architect-console/internal/media"
	"ai-architect-console/internal/models"
	"ai-architect-console/internal/pages"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type MediaHandler struct {
	creations pages.CreationService
	resolver  media.Resolver
}

func NewMediaHandler(creations pages.CreationService, resolver media.Resolver) *MediaHandler {
	return &MediaHandler{
		creations: creations,
		resolver:  resolver,
	}
}

// OutputImage streams a completed creation's generated image.
func (h *MediaHandler) OutputImage(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := pages.ParseProjectID(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	creationID, err := pages.ParseProjectID(c.Param("creation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid creation id"})
		return
	}

	creations, err := h.creations.ListImageCreations(ctx, projectID)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, backend.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse{Error: "failed to load image creations", Message: err.Error()})
		return
	}

	var creation *models.ImageCreation
	for i := range creations {
		if creations[i].ID == creationID {
			creation = &creations[i]
			break
		}
	}
	if creation == nil || !creation.HasOutputImage() {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image not available"})
		return
	}

	img, err := h.resolver.FetchOutputImage(ctx, projectID, creation.OutputImageFileName)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("creation_id", creationID).Msg("failed to fetch output image")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "failed to fetch image", Message: err.Error()})
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+creation.OutputImageFileName+`"`)
	c.Data(http.StatusOK, img.ContentType, img.Data)
}
