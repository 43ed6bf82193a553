package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/mocks"
	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/repository"
	"github.com/mastersolis/marketing-api/internal/service"
)

type serviceEnv struct {
	services     *service.Services
	contacts     *mocks.MockContactRepository
	jobs         *mocks.MockJobRepository
	applications *mocks.MockApplicationRepository
	blogs        *mocks.MockBlogRepository
	projects     *mocks.MockProjectRepository
	gen          *mocks.MockGenerator
	extractor    *mocks.MockExtractor
}

func setupServices() *serviceEnv {
	env := &serviceEnv{
		contacts:     mocks.NewMockContactRepository(),
		jobs:         mocks.NewMockJobRepository(),
		applications: mocks.NewMockApplicationRepository(),
		blogs:        mocks.NewMockBlogRepository(),
		projects:     mocks.NewMockProjectRepository(),
		gen:          mocks.NewMockGenerator("Generated text"),
		extractor:    mocks.NewMockExtractor("PDF resume text", "DOCX resume text"),
	}

	repos := &repository.Repositories{
		Contact:     env.contacts,
		Job:         env.jobs,
		Application: env.applications,
		Blog:        env.blogs,
		Testimonial: mocks.NewMockTestimonialRepository(),
		Project:     env.projects,
		CaseStudy:   mocks.NewMockCaseStudyRepository(),
		Admin:       mocks.NewMockAdminRepository(),
	}

	env.services = service.NewServices(repos, env.gen, env.extractor, zerolog.Nop())
	return env
}

func TestContactSubmit_AcknowledgmentAfterPersist(t *testing.T) {
	env := setupServices()

	contact, err := env.services.Contact.Submit(context.Background(), &models.ContactRequest{
		Name:    "Jordan Reed",
		Email:   "jordan@example.com",
		Message: "Interested in cloud migration.",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if contact.ID == "" {
		t.Error("Submission should receive an id")
	}
	if contact.Timestamp.IsZero() {
		t.Error("Submission should be timestamped")
	}

	if len(env.contacts.Contacts) != 1 {
		t.Fatalf("Expected 1 stored contact, got %d", len(env.contacts.Contacts))
	}
	if env.gen.Calls() != 1 {
		t.Fatalf("Expected 1 generation call, got %d", env.gen.Calls())
	}
	if !strings.Contains(env.gen.Prompts[0], "General Inquiry") {
		t.Errorf("Empty subject should default to General Inquiry in the prompt: %q", env.gen.Prompts[0])
	}
}

func TestContactSubmit_StoreFailureSkipsAcknowledgment(t *testing.T) {
	env := setupServices()
	env.contacts.InsertError = errors.New("write failed")

	_, err := env.services.Contact.Submit(context.Background(), &models.ContactRequest{
		Name: "N", Email: "n@example.com", Message: "m",
	})
	if err == nil {
		t.Fatal("Expected an error when the store write fails")
	}
	if env.gen.Calls() != 0 {
		t.Errorf("No acknowledgment should be generated after a failed write, got %d calls", env.gen.Calls())
	}
}

func TestJobUpdate_NotFound(t *testing.T) {
	env := setupServices()

	_, err := env.services.Job.Update(context.Background(), "missing", &models.JobRequest{
		Title: "t", Department: "d", Location: "l", Type: "Full-time", Description: "x",
	})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestApplicationSubmit_FileTypeDispatch(t *testing.T) {
	env := setupServices()
	req := &models.ApplicationRequest{
		JobID: "job-1", JobTitle: "Backend Engineer",
		Name: "Sam", Email: "sam@example.com", Phone: "555",
	}

	app, err := env.services.Application.Submit(context.Background(), req, "Resume.PDF", []byte("x"))
	if err != nil {
		t.Fatalf("PDF submit failed: %v", err)
	}
	if app.ResumeText != "PDF resume text" {
		t.Errorf("Expected PDF extraction, got %q", app.ResumeText)
	}

	app, err = env.services.Application.Submit(context.Background(), req, "resume.doc", []byte("x"))
	if err != nil {
		t.Fatalf("DOC submit failed: %v", err)
	}
	if app.ResumeText != "DOCX resume text" {
		t.Errorf("Expected DOCX extraction for .doc, got %q", app.ResumeText)
	}

	_, err = env.services.Application.Submit(context.Background(), req, "resume.txt", []byte("x"))
	if !errors.Is(err, service.ErrUnsupportedFileType) {
		t.Errorf("Expected ErrUnsupportedFileType, got %v", err)
	}

	env.extractor.PDFText = ""
	_, err = env.services.Application.Submit(context.Background(), req, "resume.pdf", []byte("x"))
	if !errors.Is(err, service.ErrEmptyExtraction) {
		t.Errorf("Expected ErrEmptyExtraction, got %v", err)
	}
}

func TestApplicationSubmit_AnalysisStoredWithRecord(t *testing.T) {
	env := setupServices()

	app, err := env.services.Application.Submit(context.Background(), &models.ApplicationRequest{
		JobID: "job-1", JobTitle: "Backend Engineer",
		Name: "Sam", Email: "sam@example.com", Phone: "555",
	}, "resume.pdf", []byte("x"))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if app.AIAnalysis == nil {
		t.Fatal("Expected analysis on the stored application")
	}
	if app.AIAnalysis.RawAnalysis != "Generated text" {
		t.Errorf("Unexpected analysis text: %q", app.AIAnalysis.RawAnalysis)
	}
	if app.AIAnalysis.ResumeLength != len("PDF resume text") {
		t.Errorf("Unexpected resume length: %d", app.AIAnalysis.ResumeLength)
	}
	if app.Status != models.ApplicationStatusPending {
		t.Errorf("Expected pending status, got %s", app.Status)
	}

	// First call analyzes the resume, second acknowledges the candidate
	if env.gen.Calls() != 2 {
		t.Fatalf("Expected 2 generation calls, got %d", env.gen.Calls())
	}
	if !strings.Contains(env.gen.Prompts[0], "Analyze this resume") {
		t.Errorf("First prompt should be the analysis: %q", env.gen.Prompts[0])
	}
	if !strings.Contains(env.gen.Prompts[1], "acknowledgment email") {
		t.Errorf("Second prompt should be the acknowledgment: %q", env.gen.Prompts[1])
	}
}

func TestBlogCreate_SlugAndEnrichment(t *testing.T) {
	env := setupServices()

	post, err := env.services.Blog.Create(context.Background(), &models.BlogRequest{
		Title:   "Scaling Go Services/Part 1",
		Content: "Long content about scaling.",
		Author:  "Dana",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if post.Slug != "scaling-go-services-part-1" {
		t.Errorf("Unexpected slug: %q", post.Slug)
	}
	if post.Excerpt != "Generated text" || post.SEODescription != "Generated text" {
		t.Errorf("Enrichment missing: excerpt=%q seo=%q", post.Excerpt, post.SEODescription)
	}
	if post.CreatedDate.IsZero() || post.UpdatedDate.IsZero() {
		t.Error("Create should set both dates")
	}

	// Both generations run before the write so the stored document
	// already carries them
	stored := env.blogs.Posts[0]
	if stored.Excerpt != "Generated text" || stored.SEODescription != "Generated text" {
		t.Error("Stored post missing enrichment")
	}

	if env.gen.MaxTokens[0] != 100 || env.gen.MaxTokens[1] != 50 {
		t.Errorf("Unexpected token budgets: %v", env.gen.MaxTokens)
	}
}

func TestBlogSummarize_NotFound(t *testing.T) {
	env := setupServices()

	_, err := env.services.Blog.Summarize(context.Background(), "missing")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAdminAnalytics_Counts(t *testing.T) {
	env := setupServices()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		env.contacts.Create(ctx, &models.ContactSubmission{ID: "c"})
	}
	env.jobs.Create(ctx, &models.JobPosting{ID: "j1", Status: models.JobStatusActive})
	env.jobs.Create(ctx, &models.JobPosting{ID: "j2", Status: models.JobStatusActive})
	env.jobs.Create(ctx, &models.JobPosting{ID: "j3", Status: models.JobStatusClosed})
	env.blogs.Create(ctx, &models.BlogPost{ID: "b1", Published: true})
	env.blogs.Create(ctx, &models.BlogPost{ID: "b2", Published: false})
	env.projects.Create(ctx, &models.Project{ID: "p1"})

	analytics, err := env.services.Admin.Analytics(ctx)
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}

	if analytics.TotalContacts != 3 {
		t.Errorf("Expected 3 contacts, got %d", analytics.TotalContacts)
	}
	if analytics.TotalJobs != 2 {
		t.Errorf("Expected 2 active jobs, got %d", analytics.TotalJobs)
	}
	if analytics.TotalBlogs != 1 {
		t.Errorf("Expected 1 published blog, got %d", analytics.TotalBlogs)
	}
	if analytics.TotalProjects != 1 {
		t.Errorf("Expected 1 project, got %d", analytics.TotalProjects)
	}
	if analytics.AISummary != "Generated text" {
		t.Errorf("Unexpected summary: %q", analytics.AISummary)
	}
}

func TestChat_DegradesToFallback(t *testing.T) {
	env := setupServices()
	env.gen.Response = "Content generation temporarily unavailable."

	response := env.services.Chat.Chat(context.Background(), "Do you offer internships?")
	if response != "Content generation temporarily unavailable." {
		t.Errorf("Unexpected response: %q", response)
	}
}
