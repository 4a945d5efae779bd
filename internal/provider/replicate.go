package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/replicate/replicate-go"
)

type ReplicateGenerator struct {
	client     *replicate.Client
	modelID    string
	httpClient *http.Client
}

func NewReplicateGenerator(token, modelID string) (*ReplicateGenerator, error) {
	client, err := replicate.NewClient(replicate.WithToken(token))
	if err != nil {
		return nil, fmt.Errorf("failed to create replicate client: %w", err)
	}

	return &ReplicateGenerator{
		client:     client,
		modelID:    modelID,
		httpClient: &http.Client{},
	}, nil
}

func (g *ReplicateGenerator) Generate(ctx context.Context, input GenerationInput) ([]io.ReadCloser, error) {
	predictionInput := replicate.PredictionInput{
		"prompt":         input.Prompt,
		"go_fast":        true,
		"megapixels":     "1",
		"num_outputs":    input.Count,
		"aspect_ratio":   input.AspectRatio,
		"output_format":  "png",
		"output_quality": 80,
	}

	output, err := g.client.Run(ctx, g.modelID, predictionInput, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to run model %s: %w", g.modelID, err)
	}

	items, ok := output.([]interface{})
	if !ok {
		items = []interface{}{output}
	}

	var streams []io.ReadCloser
	for _, item := range items {
		url, ok := item.(string)
		if !ok {
			continue
		}

		stream, err := g.fetchOutput(ctx, url)
		if err != nil {
			// one unreadable output must not sink the rest of the batch
			continue
		}

		streams = append(streams, stream)
	}

	return streams, nil
}

func (g *ReplicateGenerator) fetchOutput(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for output %s: %s", url, err.Error())
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch output %s: %s", url, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("output server responded with status %d: %s", resp.StatusCode, string(body))
	}

	return resp.Body, nil
}
