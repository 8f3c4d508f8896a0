package generation

import (
	"context"
	"strings"

	"github.com/codecraft/roadmap-api/internal/llm"
	"github.com/codecraft/roadmap-api/internal/types"
)

// GenerateRoadmap runs the full pipeline for one roadmap request:
// build prompt, invoke the model, sanitize, validate. Any stage failure
// short-circuits the rest; nothing is retried.
func GenerateRoadmap(ctx context.Context, client llm.Client, domain string) (*types.RoadmapDocument, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, &InputError{Field: "domain", Message: "domain is required"}
	}

	prompt := BuildRoadmapPrompt(domain)

	raw, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "roadmap generation failed", Cause: err}
	}

	return ValidateRoadmap(Sanitize(raw))
}
