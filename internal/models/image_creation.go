package models

// InputType is the kind of generation operation requested.
type InputType string

const (
	InputTextToImage        InputType = "TEXT_TO_IMAGE"
	InputImageToImageSketch InputType = "IMAGE_TO_IMAGE_SKETCH"
	InputImageToText        InputType = "IMAGE_TO_TEXT"
	InputImageToImageStyle  InputType = "IMAGE_TO_IMAGE_STYLE"
)

func (t InputType) Label() string {
	switch t {
	case InputTextToImage:
		return "Text to image"
	case InputImageToImageSketch:
		return "Sketch to image"
	case InputImageToText:
		return "Image to text"
	case InputImageToImageStyle:
		return "Style transfer"
	default:
		return string(t)
	}
}

// CreationStatus is the lifecycle stage reported by the backend.
type CreationStatus string

const (
	StatusPending    CreationStatus = "PENDING"
	StatusProcessing CreationStatus = "PROCESSING"
	StatusCompleted  CreationStatus = "COMPLETED"
	StatusFailed     CreationStatus = "FAILED"
)

// InProgress reports whether the backend is still working on the creation.
func (s CreationStatus) InProgress() bool {
	return s == StatusPending || s == StatusProcessing
}

type ImageCreation struct {
	ID                  int64          `json:"id"`
	ProjectID           int64          `json:"projectId"`
	InputType           InputType      `json:"inputType"`
	PromptText          string         `json:"promptText,omitempty"`
	InputImageFileName  string         `json:"inputImageFileName,omitempty"`
	OutputImageFileName string         `json:"outputImageFileName,omitempty"`
	GeneratedText       string         `json:"generatedText,omitempty"`
	Status              CreationStatus `json:"status"`
	AIModelUsed         string         `json:"aiModelUsed,omitempty"`
	ParametersJSON      string         `json:"parametersJson,omitempty"`
	CreatedAt           Timestamp      `json:"createdAt"`
}

// HasOutputImage reports whether a finished image can be displayed.
func (c ImageCreation) HasOutputImage() bool {
	return c.Status == StatusCompleted && c.OutputImageFileName != ""
}
