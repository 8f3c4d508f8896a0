package generation

import (
	"context"
	"strings"

	"github.com/codecraft/roadmap-api/internal/llm"
	"github.com/codecraft/roadmap-api/internal/types"
)

// AnalyzeResume scores extracted resume text against a job description.
// The caller is responsible for extracting text from the uploaded file;
// this function only runs the generation pipeline. Results are transient
// and never persisted.
func AnalyzeResume(ctx context.Context, client llm.Client, resumeText, jobDescription string) (*types.ResumeAnalysis, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, &InputError{Field: "resumeText", Message: "resume text is required"}
	}
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return nil, &InputError{Field: "jobDescription", Message: "job description is required"}
	}

	prompt := BuildResumeAnalysisPrompt(resumeText, jobDescription)

	raw, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "resume analysis failed", Cause: err}
	}

	return ValidateResumeAnalysis(Sanitize(raw))
}
