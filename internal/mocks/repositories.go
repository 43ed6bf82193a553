package mocks

import (
	"context"

	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/repository"
)

// MockContactRepository is a mock implementation of ContactRepository
type MockContactRepository struct {
	Contacts    []*models.ContactSubmission
	InsertError error
}

var _ repository.ContactRepository = (*MockContactRepository)(nil)

func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

func (m *MockContactRepository) Create(ctx context.Context, contact *models.ContactSubmission) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Contacts = append(m.Contacts, contact)
	return nil
}

func (m *MockContactRepository) List(ctx context.Context) ([]*models.ContactSubmission, error) {
	out := make([]*models.ContactSubmission, 0, len(m.Contacts))
	out = append(out, m.Contacts...)
	return out, nil
}

func (m *MockContactRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Contacts)), nil
}

// MockJobRepository is a mock implementation of JobRepository
type MockJobRepository struct {
	Jobs        []*models.JobPosting
	InsertError error
}

var _ repository.JobRepository = (*MockJobRepository)(nil)

func NewMockJobRepository() *MockJobRepository {
	return &MockJobRepository{}
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Jobs = append(m.Jobs, job)
	return nil
}

func (m *MockJobRepository) List(ctx context.Context, status string) ([]*models.JobPosting, error) {
	out := make([]*models.JobPosting, 0)
	for _, j := range m.Jobs {
		if status == "" || string(j.Status) == status {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *MockJobRepository) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	for _, j := range m.Jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, nil
}

func (m *MockJobRepository) Update(ctx context.Context, id string, req *models.JobRequest) error {
	for _, j := range m.Jobs {
		if j.ID == id {
			j.Title = req.Title
			j.Department = req.Department
			j.Location = req.Location
			j.Type = req.Type
			j.Description = req.Description
			j.Requirements = req.Requirements
			j.Responsibilities = req.Responsibilities
			return nil
		}
	}
	return nil
}

func (m *MockJobRepository) Delete(ctx context.Context, id string) (int64, error) {
	for i, j := range m.Jobs {
		if j.ID == id {
			m.Jobs = append(m.Jobs[:i], m.Jobs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockJobRepository) CountByStatus(ctx context.Context, status models.JobStatus) (int64, error) {
	var n int64
	for _, j := range m.Jobs {
		if j.Status == status {
			n++
		}
	}
	return n, nil
}

// MockApplicationRepository is a mock implementation of ApplicationRepository
type MockApplicationRepository struct {
	Applications []*models.JobApplication
	InsertError  error
}

var _ repository.ApplicationRepository = (*MockApplicationRepository)(nil)

func NewMockApplicationRepository() *MockApplicationRepository {
	return &MockApplicationRepository{}
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *models.JobApplication) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Applications = append(m.Applications, app)
	return nil
}

func (m *MockApplicationRepository) List(ctx context.Context, jobID, status string) ([]*models.JobApplication, error) {
	out := make([]*models.JobApplication, 0)
	for _, a := range m.Applications {
		if jobID != "" && a.JobID != jobID {
			continue
		}
		if status != "" && string(a.Status) != status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id string) (*models.JobApplication, error) {
	for _, a := range m.Applications {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	for _, a := range m.Applications {
		if a.ID == id {
			a.Status = models.ApplicationStatus(status)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockApplicationRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Applications)), nil
}

// MockBlogRepository is a mock implementation of BlogRepository.
// Lookups by slug return the first match, mirroring the store.
type MockBlogRepository struct {
	Posts       []*models.BlogPost
	InsertError error
}

var _ repository.BlogRepository = (*MockBlogRepository)(nil)

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{}
}

func (m *MockBlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Posts = append(m.Posts, post)
	return nil
}

func (m *MockBlogRepository) List(ctx context.Context, published *bool) ([]*models.BlogPost, error) {
	out := make([]*models.BlogPost, 0)
	for _, p := range m.Posts {
		if published != nil && p.Published != *published {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	for _, p := range m.Posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockBlogRepository) DeleteBySlug(ctx context.Context, slug string) (int64, error) {
	for i, p := range m.Posts {
		if p.Slug == slug {
			m.Posts = append(m.Posts[:i], m.Posts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockBlogRepository) CountPublished(ctx context.Context) (int64, error) {
	var n int64
	for _, p := range m.Posts {
		if p.Published {
			n++
		}
	}
	return n, nil
}

// MockTestimonialRepository is a mock implementation of TestimonialRepository
type MockTestimonialRepository struct {
	Testimonials []*models.Testimonial
	InsertError  error
}

var _ repository.TestimonialRepository = (*MockTestimonialRepository)(nil)

func NewMockTestimonialRepository() *MockTestimonialRepository {
	return &MockTestimonialRepository{}
}

func (m *MockTestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Testimonials = append(m.Testimonials, testimonial)
	return nil
}

func (m *MockTestimonialRepository) List(ctx context.Context, featured *bool) ([]*models.Testimonial, error) {
	out := make([]*models.Testimonial, 0)
	for _, t := range m.Testimonials {
		if featured != nil && t.Featured != *featured {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	Projects    []*models.Project
	InsertError error
}

var _ repository.ProjectRepository = (*MockProjectRepository)(nil)

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{}
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Projects = append(m.Projects, project)
	return nil
}

func (m *MockProjectRepository) List(ctx context.Context, category string) ([]*models.Project, error) {
	out := make([]*models.Project, 0)
	for _, p := range m.Projects {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *MockProjectRepository) SearchByTech(ctx context.Context, tech string) ([]*models.Project, error) {
	out := make([]*models.Project, 0)
	for _, p := range m.Projects {
		for _, t := range p.Technologies {
			if t == tech {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.Projects)), nil
}

// MockCaseStudyRepository is a mock implementation of CaseStudyRepository
type MockCaseStudyRepository struct {
	CaseStudies []*models.CaseStudy
	InsertError error
}

var _ repository.CaseStudyRepository = (*MockCaseStudyRepository)(nil)

func NewMockCaseStudyRepository() *MockCaseStudyRepository {
	return &MockCaseStudyRepository{}
}

func (m *MockCaseStudyRepository) Create(ctx context.Context, study *models.CaseStudy) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.CaseStudies = append(m.CaseStudies, study)
	return nil
}

func (m *MockCaseStudyRepository) List(ctx context.Context) ([]*models.CaseStudy, error) {
	out := make([]*models.CaseStudy, 0, len(m.CaseStudies))
	out = append(out, m.CaseStudies...)
	return out, nil
}

// MockAdminRepository is a mock implementation of AdminRepository
type MockAdminRepository struct {
	Admins      map[string]*models.AdminUser
	InsertError error
}

var _ repository.AdminRepository = (*MockAdminRepository)(nil)

func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{Admins: make(map[string]*models.AdminUser)}
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Admins[admin.Username] = admin
	return nil
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	return m.Admins[username], nil
}

// NewRepositories bundles fresh mocks into a repository set for tests
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Contact:     NewMockContactRepository(),
		Job:         NewMockJobRepository(),
		Application: NewMockApplicationRepository(),
		Blog:        NewMockBlogRepository(),
		Testimonial: NewMockTestimonialRepository(),
		Project:     NewMockProjectRepository(),
		CaseStudy:   NewMockCaseStudyRepository(),
		Admin:       NewMockAdminRepository(),
	}
}
