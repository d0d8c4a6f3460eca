package backend

import (
	"context"
	"fmt"
	"net/http"

	"ai-architect-console/internal/models"
)

// GenerateTextToImage submits a generation request. The returned record is
// normally still pending; callers refetch to observe later status changes.
func (c *Client) GenerateTextToImage(ctx context.Context, projectID int64, req models.CreateTextToImageRequest) (*models.ImageCreation, error) {
	var creation models.ImageCreation
	path := projectPath(projectID) + "/image-creations/text-to-image"
	if err := c.do(ctx, http.MethodPost, path, req, &creation); err != nil {
		return nil, err
	}
	return &creation, nil
}

func (c *Client) ListImageCreations(ctx context.Context, projectID int64) ([]models.ImageCreation, error) {
	var creations []models.ImageCreation
	if err := c.do(ctx, http.MethodGet, projectPath(projectID)+"/image-creations", nil, &creations); err != nil {
		return nil, err
	}
	if creations == nil {
		creations = []models.ImageCreation{}
	}
	return creations, nil
}

// OutputImagePath is the backend path serving a generated image.
func OutputImagePath(projectID int64, fileName string) string {
	return fmt.Sprintf("/media/output/%d/%s", projectID, fileName)
}

// FetchOutputImage downloads a generated image from the backend media route.
func (c *Client) FetchOutputImage(ctx context.Context, projectID int64, fileName string) ([]byte, string, error) {
	return c.fetchRaw(ctx, OutputImagePath(projectID, fileName))
}
