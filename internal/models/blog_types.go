package models

import "time"

// BlogArticle is the model for the 'blog_articles' table.
// PublishedAt is set when the article is published and cleared when it is pulled back.
type BlogArticle struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Slug          string     `json:"slug" db:"slug"`
	Excerpt       string     `json:"excerpt" db:"excerpt"`
	Content       string     `json:"content" db:"content"`
	FeaturedImage string     `json:"featuredImage" db:"featured_image"`
	Author        string     `json:"author" db:"author"`
	IsPublished   bool       `json:"isPublished" db:"is_published"`
	PublishedAt   *time.Time `json:"publishedAt" db:"published_at"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

const excerptLength = 150

// Summary returns the excerpt, or the first 150 characters of the content
// followed by "..." when no excerpt was written.
func (a *BlogArticle) Summary() string {
	if a.Excerpt != "" {
		return a.Excerpt
	}
	runes := []rune(a.Content)
	if len(runes) <= excerptLength {
		return a.Content
	}
	return string(runes[:excerptLength]) + "..."
}

// DisplayAuthor falls back to "Admin" for articles without a byline.
func (a *BlogArticle) DisplayAuthor() string {
	if a.Author == "" {
		return "Admin"
	}
	return a.Author
}
