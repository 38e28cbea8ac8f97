package llm

import "fmt"

// AnalyzePrompt builds the gap-analysis prompt. The provider is asked
// for strict JSON; the caller still validates because models drift.
func AnalyzePrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) analyzer.
Compare the resume below against the job description and respond with ONLY a JSON object, no markdown fences, no prose, in exactly this shape:
{"score": <integer 0-100>, "feedback": "<one or two sentences of actionable feedback>", "missingKeywords": ["<keyword>", ...]}

Rules:
- score reflects how well the resume matches the job description.
- missingKeywords lists concrete skills or technologies from the job description that the resume lacks, most important first.
- feedback must be non-empty.

RESUME:
%s

JOB DESCRIPTION:
%s`, resumeText, jobDescription)
}

// SummaryPrompt builds the summary-rewrite prompt.
func SummaryPrompt(summary, jobDescription string) string {
	return fmt.Sprintf(`You are an expert resume writer.
Rewrite the professional summary below so it targets the job description. Keep it to 2-4 sentences, first person implied, no headline, no markdown. Respond with the rewritten summary text only.

CURRENT SUMMARY:
%s

JOB DESCRIPTION:
%s`, summary, jobDescription)
}
