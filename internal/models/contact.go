package models

// ContactSubmission represents a stored contact form submission
type ContactSubmission struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Timestamp Timestamp `json:"timestamp" bson:"timestamp"`
}

// ContactRequest is the payload for creating a contact submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
