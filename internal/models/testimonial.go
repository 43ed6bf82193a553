package models

// Testimonial represents a client testimonial.
// Rating is documented as 1-5 but not enforced.
type Testimonial struct {
	ID          string    `json:"id" bson:"id"`
	ClientName  string    `json:"client_name" bson:"client_name"`
	Company     string    `json:"company" bson:"company"`
	Position    string    `json:"position,omitempty" bson:"position,omitempty"`
	Content     string    `json:"content" bson:"content"`
	Rating      int       `json:"rating" bson:"rating"`
	Avatar      string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Featured    bool      `json:"featured" bson:"featured"`
	CreatedDate Timestamp `json:"created_date" bson:"created_date"`
}

// TestimonialRequest is the payload for creating a testimonial
type TestimonialRequest struct {
	ClientName string `json:"client_name"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
	Avatar     string `json:"avatar"`
}

// GenerateRequest is a pure AI passthrough payload: raw feedback text
// plus optional context; nothing is persisted.
type GenerateRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context"`
}
