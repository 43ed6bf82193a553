package models

// ApplicationStatus represents the review state of a job application
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// ResumeAnalysis holds the AI-produced assessment of an uploaded resume
type ResumeAnalysis struct {
	RawAnalysis  string `json:"raw_analysis" bson:"raw_analysis"`
	ResumeLength int    `json:"resume_length" bson:"resume_length"`
}

// JobApplication represents a candidate's submission for a job posting.
// JobID is an unchecked reference; the posting may have been deleted.
type JobApplication struct {
	ID          string            `json:"id" bson:"id"`
	JobID       string            `json:"job_id" bson:"job_id"`
	JobTitle    string            `json:"job_title" bson:"job_title"`
	Name        string            `json:"name" bson:"name"`
	Email       string            `json:"email" bson:"email"`
	Phone       string            `json:"phone" bson:"phone"`
	ResumeText  string            `json:"resume_text" bson:"resume_text"`
	CoverLetter string            `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	AIAnalysis  *ResumeAnalysis   `json:"ai_analysis,omitempty" bson:"ai_analysis,omitempty"`
	Status      ApplicationStatus `json:"status" bson:"status"`
	AppliedDate Timestamp         `json:"applied_date" bson:"applied_date"`
}

// ApplicationRequest carries the multipart form fields of a submission.
// The resume file itself travels separately.
type ApplicationRequest struct {
	JobID       string `form:"job_id"`
	JobTitle    string `form:"job_title"`
	Name        string `form:"name"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	CoverLetter string `form:"cover_letter"`
}
