package models

// CaseStudy represents a client case study with an AI-written summary
type CaseStudy struct {
	ID           string    `json:"id" bson:"id"`
	Title        string    `json:"title" bson:"title"`
	Client       string    `json:"client" bson:"client"`
	Challenge    string    `json:"challenge" bson:"challenge"`
	Solution     string    `json:"solution" bson:"solution"`
	Results      string    `json:"results" bson:"results"`
	AISummary    string    `json:"ai_summary,omitempty" bson:"ai_summary,omitempty"`
	Technologies []string  `json:"technologies" bson:"technologies"`
	Image        string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedDate  Timestamp `json:"created_date" bson:"created_date"`
}

// CaseStudyRequest is the payload for creating a case study
type CaseStudyRequest struct {
	Title        string   `json:"title"`
	Client       string   `json:"client"`
	Challenge    string   `json:"challenge"`
	Solution     string   `json:"solution"`
	Results      string   `json:"results"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
}
