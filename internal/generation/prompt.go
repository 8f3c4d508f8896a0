package generation

import (
	"github.com/codecraft/roadmap-api/internal/prompts"
)

// BuildRoadmapPrompt constructs the instruction string for roadmap
// generation. The prompt fully specifies the expected JSON shape and
// embeds the caller-supplied domain verbatim. Pure function of its input.
func BuildRoadmapPrompt(domain string) string {
	template := prompts.MustGet("generation.json", "roadmap")
	return prompts.Format(template, map[string]string{
		"Domain": domain,
	})
}

// BuildResumeAnalysisPrompt constructs the instruction string for scoring
// a resume against a job description. Both inputs are embedded verbatim,
// without truncation.
func BuildResumeAnalysisPrompt(resumeText, jobDescription string) string {
	template := prompts.MustGet("generation.json", "resume-analysis")
	return prompts.Format(template, map[string]string{
		"ResumeText":     resumeText,
		"JobDescription": jobDescription,
	})
}
