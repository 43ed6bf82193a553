package ai

import (
	"fmt"
	"unicode/utf8"
)

// Token budgets per generation use
const (
	TokensAcknowledgment = 200
	TokensAnalysis       = 400
	TokensExcerpt        = 100
	TokensSEO            = 50
	TokensBlogSummary    = 200
	TokensTestimonial    = 150
	TokensCaseSummary    = 150
	TokensChat           = 250
	TokensAnalytics      = 150
)

// Prompt input truncation boundaries
const (
	contactMessagePreview = 200
	resumePreview         = 1500
	excerptContentPreview = 500
	seoContentPreview     = 300
)

// ContactAckPrompt builds the acknowledgment email prompt for a contact
// submission. An empty subject reads as a general inquiry.
func ContactAckPrompt(name, subject, message string) string {
	if subject == "" {
		subject = "General Inquiry"
	}
	return fmt.Sprintf(`Write a professional acknowledgment email for a contact form submission.
Name: %s
Subject: %s
Message: %s

Keep it brief, professional, and assure them we'll respond within 24-48 hours.`,
		name, subject, truncate(message, contactMessagePreview))
}

// AnalysisPrompt builds the resume analysis prompt for a job application
func AnalysisPrompt(jobTitle, resumeText string) string {
	return fmt.Sprintf(`Analyze this resume for the position of %s.
Resume Content: %s

Provide a JSON analysis with:
1. skills: List of identified skills
2. experience_years: Estimated years of experience
3. education: Education level
4. match_score: Score from 1-10 for job fit
5. summary: Brief 2-sentence summary

Return only valid JSON.`, jobTitle, truncate(resumeText, resumePreview))
}

// ApplicationAckPrompt builds the acknowledgment email prompt sent after
// a job application
func ApplicationAckPrompt(name, jobTitle string) string {
	return fmt.Sprintf(`Write a professional job application acknowledgment email.
Candidate: %s
Position: %s

Thank them for applying to MasterSolis InfoTech and inform them we'll review their application.`,
		name, jobTitle)
}

// ExcerptPrompt builds the two-sentence excerpt prompt for a blog post
func ExcerptPrompt(title, content string) string {
	return fmt.Sprintf(`Write a compelling 2-sentence excerpt for this blog post:
Title: %s
Content: %s`, title, truncate(content, excerptContentPreview))
}

// SEOPrompt builds the meta description prompt for a blog post
func SEOPrompt(title, content string) string {
	return fmt.Sprintf(`Write an SEO-optimized meta description (max 160 characters) for:
Title: %s
Content: %s`, title, truncate(content, seoContentPreview))
}

// BlogSummaryPrompt builds the on-demand bullet summary prompt for a post
func BlogSummaryPrompt(title, content string) string {
	return fmt.Sprintf(`Summarize this blog post in 3-4 bullet points:
Title: %s
Content: %s`, title, content)
}

// TestimonialPrompt builds a testimonial rewrite prompt from raw client
// feedback and optional context
func TestimonialPrompt(feedback, context string) string {
	return fmt.Sprintf(`Based on this client feedback data, write a professional testimonial:
%s
%s

Make it authentic, specific, and impactful. Max 3 sentences.`, feedback, context)
}

// CaseSummaryPrompt builds the case study summary prompt
func CaseSummaryPrompt(challenge, solution, results string) string {
	return fmt.Sprintf(`Summarize this case study in 2-3 sentences:
Challenge: %s
Solution: %s
Results: %s`, challenge, solution, results)
}

// ChatPrompt builds the chatbot prompt with the fixed business preamble
func ChatPrompt(message string) string {
	return fmt.Sprintf(`You are a helpful assistant for MasterSolis InfoTech, an IT consulting company.
Services: Cloud Solutions, IT Services, Web Development, Full Stack Training, Projects, Internships.

User question: %s

Provide a helpful, professional response.`, message)
}

// AnalyticsPrompt builds the business-health narrative prompt from
// aggregate counts
func AnalyticsPrompt(contacts, applications, jobs, blogs, projects int64) string {
	return fmt.Sprintf(`Generate a brief analytics summary:
- %d contact submissions
- %d job applications
- %d active job postings
- %d published blogs
- %d projects

Provide 2-3 insights about business health.`, contacts, applications, jobs, blogs, projects)
}

// truncate caps s at n bytes, backing off to the previous rune boundary
// so the cut never yields invalid UTF-8
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
