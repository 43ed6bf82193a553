package models

// JobStatus represents the lifecycle state of a job posting
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

// JobPosting represents an open position on the careers page
type JobPosting struct {
	ID               string    `json:"id" bson:"id"`
	Title            string    `json:"title" bson:"title"`
	Department       string    `json:"department" bson:"department"`
	Location         string    `json:"location" bson:"location"`
	Type             string    `json:"type" bson:"type"` // Full-time, Part-time, Contract, Internship
	Description      string    `json:"description" bson:"description"`
	Requirements     []string  `json:"requirements" bson:"requirements"`
	Responsibilities []string  `json:"responsibilities" bson:"responsibilities"`
	Status           JobStatus `json:"status" bson:"status"`
	PostedDate       Timestamp `json:"posted_date" bson:"posted_date"`
}

// JobRequest is the payload for creating or replacing a job posting
type JobRequest struct {
	Title            string   `json:"title"`
	Department       string   `json:"department"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
}
