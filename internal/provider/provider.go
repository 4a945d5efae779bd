package provider

import (
	"context"
	"io"
)

type GenerationInput struct {
	Prompt      string
	AspectRatio string
	Count       int
}

// ImageGenerator produces a batch of image byte streams for a prompt. The
// returned slice may be shorter than Count; callers bill only what arrives.
type ImageGenerator interface {
	Generate(ctx context.Context, input GenerationInput) ([]io.ReadCloser, error)
}
