package models

// AdminUser represents an administrator account.
// Email is derived from the username at registration time.
type AdminUser struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedDate  Timestamp `json:"created_date" bson:"created_date"`
}

// AdminCredentials is the payload for both registration and login
type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChatMessage is the chatbot request payload
type ChatMessage struct {
	Message string `json:"message"`
}

// Analytics aggregates collection counts with an AI narrative
type Analytics struct {
	TotalContacts     int64  `json:"total_contacts"`
	TotalApplications int64  `json:"total_applications"`
	TotalJobs         int64  `json:"total_jobs"`
	TotalBlogs        int64  `json:"total_blogs"`
	TotalProjects     int64  `json:"total_projects"`
	AISummary         string `json:"ai_summary"`
}
