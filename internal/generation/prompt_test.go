package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRoadmapPrompt(t *testing.T) {
	prompt := BuildRoadmapPrompt("Frontend Development")

	assert.Contains(t, prompt, "Frontend Development")
	for _, key := range []string{"sections", "topics", "title", "description"} {
		assert.Contains(t, prompt, key, "prompt must spell out schema key %q", key)
	}
	assert.NotContains(t, prompt, "{{.Domain}}", "placeholder must be substituted")
}

func TestBuildRoadmapPrompt_Deterministic(t *testing.T) {
	first := BuildRoadmapPrompt("Machine Learning")
	second := BuildRoadmapPrompt("Machine Learning")
	assert.Equal(t, first, second)
}

func TestBuildResumeAnalysisPrompt(t *testing.T) {
	resume := "Ten years of Go experience.\nBuilt distributed systems."
	role := "Senior Backend Engineer"

	prompt := BuildResumeAnalysisPrompt(resume, role)

	assert.Contains(t, prompt, resume, "resume text must be embedded verbatim")
	assert.Contains(t, prompt, role)
	for _, key := range []string{"score", "strengths", "weaknesses", "suggestions"} {
		assert.Contains(t, prompt, key)
	}
}

func TestBuildResumeAnalysisPrompt_NoTruncation(t *testing.T) {
	long := strings.Repeat("Led migration of payment services to Kubernetes. ", 200)
	prompt := BuildResumeAnalysisPrompt(long, "Platform Engineer")
	assert.Contains(t, prompt, long)
}
