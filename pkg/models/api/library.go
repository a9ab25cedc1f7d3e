package api

type Book struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	CoverImage   string `json:"coverImage"`
	Rating       int    `json:"rating"`
	Year         string `json:"year,omitempty"`
	GoodreadsURL string `json:"goodreadsUrl,omitempty"`
	Review       string `json:"review,omitempty"`
	ReviewEN     string `json:"review_en,omitempty"`
}

type SuggestionRequest struct {
	BookTitle string `json:"bookTitle"`
}

type SuggestionResponse struct {
	Success  bool   `json:"success"`
	SanityID string `json:"sanityId"`
	EmailID  string `json:"emailId,omitempty"`
}

type ToolCategory struct {
	Label string   `json:"label"`
	Tools []string `json:"tools"`
}

type Project struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Year           string         `json:"year"`
	Description    string         `json:"description"`
	ImageSrc       string         `json:"imageSrc"`
	VideoSrc       string         `json:"videoSrc,omitempty"`
	XLink          string         `json:"xLink,omitempty"`
	TryItOutHref   string         `json:"tryItOutHref,omitempty"`
	ToolCategories []ToolCategory `json:"toolCategories,omitempty"`
}

// Error is the JSON body for every non-2xx response.
type Error struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
