package domain

import "time"

// Book is a shelf item from the content store, read-only to this system.
type Book struct {
	ID           string
	Title        string
	Author       string
	CoverImage   string
	Rating       int // 0-5
	Year         string
	GoodreadsURL string
	Review       string
	ReviewEN     string
}

type SuggestionStatus string

const (
	SuggestionStatusNew       SuggestionStatus = "new"
	SuggestionStatusReviewed  SuggestionStatus = "reviewed"
	SuggestionStatusAdded     SuggestionStatus = "added"
	SuggestionStatusDismissed SuggestionStatus = "dismissed"
)

// Suggestion is a visitor-submitted book suggestion. Created only by the
// submission endpoint; status transitions happen in the content studio.
type Suggestion struct {
	BookTitle   string
	SubmittedAt time.Time
	Status      SuggestionStatus
	Notes       string
}

type ToolCategory struct {
	Label string
	Tools []string
}

// Project is experiment/project metadata served by the content store, with
// a compiled-in fallback when the fetch fails.
type Project struct {
	ID             string
	Title          string
	Year           string
	Description    string
	ImageSrc       string
	VideoSrc       string
	XLink          string
	TryItOutHref   string
	ToolCategories []ToolCategory
}
