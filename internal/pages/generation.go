package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-architect-console/internal/models"
)

type GenerationPhase int

const (
	GenerationIdle GenerationPhase = iota
	GenerationSubmitting
)

// GenerationForm is the text-to-image form. It moves idle -> submitting and
// back to idle, with Error set when the submission failed.
type GenerationForm struct {
	Prompt         string
	ParametersJSON string
	Phase          GenerationPhase
	Error          string
}

func (f *GenerationForm) Submitting() bool {
	return f.Phase == GenerationSubmitting
}

// Submit validates locally and, only if that passes, sends the request. The
// inputs are cleared on success and kept on failure.
func (f *GenerationForm) Submit(ctx context.Context, svc CreationService, projectID int64) (*models.ImageCreation, error) {
	f.Error = ""

	if strings.TrimSpace(f.Prompt) == "" {
		f.Error = MsgPromptRequired
		return nil, ErrPromptRequired
	}

	req := models.CreateTextToImageRequest{PromptText: f.Prompt}
	if params := strings.TrimSpace(f.ParametersJSON); params != "" {
		if !json.Valid([]byte(params)) {
			f.Error = MsgInvalidParameters
			return nil, ErrInvalidParameters
		}
		req.ParametersJSON = params
	}

	f.Phase = GenerationSubmitting
	defer func() { f.Phase = GenerationIdle }()

	creation, err := svc.GenerateTextToImage(ctx, projectID, req)
	if err != nil {
		f.Error = "Failed to generate image: " + err.Error()
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	f.Prompt = ""
	f.ParametersJSON = ""
	return creation, nil
}
