package validation

import (
	"regexp"

	"github.com/mastersolis/marketing-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single request-shape validation error.
// Validation is shape only: required fields and email format. Business
// rules such as rating bounds or job type enums are not enforced.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// First returns the first error message, or empty when the slice is empty
func First(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Message
}

// ValidEmail reports whether the address has a plausible shape
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateContact validates a contact submission request
func ValidateContact(req *models.ContactRequest) []ValidationError {
	var errors []ValidationError

	if req.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	errors = appendEmailErrors(errors, req.Email)
	if req.Message == "" {
		errors = append(errors, ValidationError{Field: "message", Message: "message is required"})
	}

	return errors
}

// ValidateJob validates a job posting request
func ValidateJob(req *models.JobRequest) []ValidationError {
	var errors []ValidationError

	required := []struct {
		field string
		value string
	}{
		{"title", req.Title},
		{"department", req.Department},
		{"location", req.Location},
		{"type", req.Type},
		{"description", req.Description},
	}
	for _, f := range required {
		if f.value == "" {
			errors = append(errors, ValidationError{Field: f.field, Message: f.field + " is required"})
		}
	}

	return errors
}

// ValidateApplication validates the form fields of a job application
func ValidateApplication(req *models.ApplicationRequest) []ValidationError {
	var errors []ValidationError

	if req.JobID == "" {
		errors = append(errors, ValidationError{Field: "job_id", Message: "job_id is required"})
	}
	if req.JobTitle == "" {
		errors = append(errors, ValidationError{Field: "job_title", Message: "job_title is required"})
	}
	if req.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	errors = appendEmailErrors(errors, req.Email)
	if req.Phone == "" {
		errors = append(errors, ValidationError{Field: "phone", Message: "phone is required"})
	}

	return errors
}

// ValidateBlog validates a blog post request
func ValidateBlog(req *models.BlogRequest) []ValidationError {
	var errors []ValidationError

	if req.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if req.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}
	if req.Author == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "author is required"})
	}

	return errors
}

// ValidateTestimonial validates a testimonial request
func ValidateTestimonial(req *models.TestimonialRequest) []ValidationError {
	var errors []ValidationError

	if req.ClientName == "" {
		errors = append(errors, ValidationError{Field: "client_name", Message: "client_name is required"})
	}
	if req.Company == "" {
		errors = append(errors, ValidationError{Field: "company", Message: "company is required"})
	}
	if req.Content == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	return errors
}

// ValidateProject validates a project request
func ValidateProject(req *models.ProjectRequest) []ValidationError {
	var errors []ValidationError

	if req.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if req.Description == "" {
		errors = append(errors, ValidationError{Field: "description", Message: "description is required"})
	}
	if req.Category == "" {
		errors = append(errors, ValidationError{Field: "category", Message: "category is required"})
	}

	return errors
}

// ValidateCaseStudy validates a case study request
func ValidateCaseStudy(req *models.CaseStudyRequest) []ValidationError {
	var errors []ValidationError

	required := []struct {
		field string
		value string
	}{
		{"title", req.Title},
		{"client", req.Client},
		{"challenge", req.Challenge},
		{"solution", req.Solution},
		{"results", req.Results},
	}
	for _, f := range required {
		if f.value == "" {
			errors = append(errors, ValidationError{Field: f.field, Message: f.field + " is required"})
		}
	}

	return errors
}

// ValidateCredentials validates admin register/login payloads
func ValidateCredentials(req *models.AdminCredentials) []ValidationError {
	var errors []ValidationError

	if req.Username == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	}
	if req.Password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	}

	return errors
}

func appendEmailErrors(errors []ValidationError, email string) []ValidationError {
	if email == "" {
		return append(errors, ValidationError{Field: "email", Message: "email is required"})
	}
	if !emailRegex.MatchString(email) {
		return append(errors, ValidationError{Field: "email", Message: "invalid email format"})
	}
	return errors
}
