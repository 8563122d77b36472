package domain

import "strings"

// NoneValue is stored in place of a scalar field that was not found on the page
const NoneValue = "None"

// Article represents a news article stored in the articles table
type Article struct {
	ID         int64 // assigned by the store
	URL        string
	Title      string
	Category   string
	CreateDate string
	Body       []string
}

// JoinedBody returns the body paragraphs as a single newline separated text
func (a *Article) JoinedBody() string {
	return strings.Join(a.Body, "\n")
}

// Complete reports whether every field required for storage is present.
// Sentinel values count as present; an article without paragraphs does not.
func (a *Article) Complete() bool {
	if a == nil {
		return false
	}
	return a.Title != "" && a.Category != "" && a.CreateDate != "" && len(a.Body) > 0
}
