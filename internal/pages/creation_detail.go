package pages

import "ai-architect-console/internal/models"

// CreationDetail is the read-only dialog for one image creation.
type CreationDetail struct {
	ID            int64
	ProjectID     int64
	ImageURL      string
	Prompt        string
	Status        models.CreationStatus
	StatusClass   string
	InputType     models.InputType
	Model         string
	Parameters    string
	CreatedAt     string
	InputImage    string
	GeneratedText string
}

// NewCreationDetail returns nil when there is no creation to show.
func NewCreationDetail(c *models.ImageCreation, images ImageLinker, locale Locale) *CreationDetail {
	if c == nil {
		return nil
	}

	d := &CreationDetail{
		ID:            c.ID,
		ProjectID:     c.ProjectID,
		Prompt:        orNA(c.PromptText),
		Status:        c.Status,
		StatusClass:   statusClass(c.Status),
		InputType:     c.InputType,
		Model:         orNA(c.AIModelUsed),
		CreatedAt:     locale.DateTime(c.CreatedAt),
		InputImage:    c.InputImageFileName,
		GeneratedText: c.GeneratedText,
	}
	if c.ParametersJSON != "{}" {
		d.Parameters = c.ParametersJSON
	}
	if c.HasOutputImage() {
		d.ImageURL = images.OutputImageURL(c.ProjectID, c.OutputImageFileName)
	}
	return d
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func statusClass(s models.CreationStatus) string {
	switch s {
	case models.StatusCompleted:
		return "completed"
	case models.StatusFailed:
		return "failed"
	default:
		return "in-progress"
	}
}
