package models

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectRequest is a partial update; nil fields are left untouched by the backend.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateTextToImageRequest struct {
	PromptText string `json:"promptText"`
	// Optional opaque JSON blob forwarded to the model, e.g. {"sampleCount": 1}
	ParametersJSON string `json:"parametersJson,omitempty"`
}
