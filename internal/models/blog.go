package models

import "strings"

// BlogPost represents a published or draft article.
// Slug is the natural key for lookup and delete; uniqueness is not
// enforced, so colliding slugs can coexist and lookups return the
// first match.
type BlogPost struct {
	ID             string    `json:"id" bson:"id"`
	Title          string    `json:"title" bson:"title"`
	Slug           string    `json:"slug" bson:"slug"`
	Content        string    `json:"content" bson:"content"`
	Excerpt        string    `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Author         string    `json:"author" bson:"author"`
	Tags           []string  `json:"tags" bson:"tags"`
	FeaturedImage  string    `json:"featured_image,omitempty" bson:"featured_image,omitempty"`
	SEODescription string    `json:"seo_description,omitempty" bson:"seo_description,omitempty"`
	Published      bool      `json:"published" bson:"published"`
	CreatedDate    Timestamp `json:"created_date" bson:"created_date"`
	UpdatedDate    Timestamp `json:"updated_date" bson:"updated_date"`
}

// BlogRequest is the payload for creating a blog post
type BlogRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Author        string   `json:"author"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featured_image"`
	Published     bool     `json:"published"`
}

// Slugify derives a URL slug from a post title: lowercase, with spaces
// and slashes replaced by hyphens. No further normalization is applied,
// so titles with other special characters produce them verbatim.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "/", "-")
	return slug
}
