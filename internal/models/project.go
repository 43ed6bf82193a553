package models

// Project represents a portfolio project
type Project struct {
	ID             string    `json:"id" bson:"id"`
	Title          string    `json:"title" bson:"title"`
	Description    string    `json:"description" bson:"description"`
	Technologies   []string  `json:"technologies" bson:"technologies"`
	Category       string    `json:"category" bson:"category"`
	Image          string    `json:"image,omitempty" bson:"image,omitempty"`
	Client         string    `json:"client,omitempty" bson:"client,omitempty"`
	CompletionDate string    `json:"completion_date,omitempty" bson:"completion_date,omitempty"`
	Featured       bool      `json:"featured" bson:"featured"`
	CreatedDate    Timestamp `json:"created_date" bson:"created_date"`
}

// ProjectRequest is the payload for creating a project
type ProjectRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Technologies   []string `json:"technologies"`
	Category       string   `json:"category"`
	Image          string   `json:"image"`
	Client         string   `json:"client"`
	CompletionDate string   `json:"completion_date"`
}
