package project

import (
	"context"
	"fmt"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/rs/zerolog"
)

type ContentStore interface {
	Query(ctx context.Context, groq string, params map[string]string, result any) error
}

const projectQuery = `*[_type == "experimentProject" && slug.current == $slug][0]{
  "id": slug.current,
  title,
  year,
  description,
  "imageSrc": imageUrl,
  "videoSrc": videoUrl,
  xLink,
  tryItOutHref,
  toolCategories[]{ label, tools }
}`

type projectDoc struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Year           string `json:"year"`
	Description    string `json:"description"`
	ImageSrc       string `json:"imageSrc"`
	VideoSrc       string `json:"videoSrc"`
	XLink          string `json:"xLink"`
	TryItOutHref   string `json:"tryItOutHref"`
	ToolCategories []struct {
		Label string   `json:"label"`
		Tools []string `json:"tools"`
	} `json:"toolCategories"`
}

var ErrNotFound = fmt.Errorf("project not found")

// Explorer serves experiment/project metadata from the content store,
// falling back to compiled-in defaults when the fetch fails so the pages
// those projects live on keep working without the store.
type Explorer struct {
	store     ContentStore
	fallbacks map[string]domain.Project
}

func NewExplorer(store ContentStore) *Explorer {
	return &Explorer{
		store: store,
		fallbacks: map[string]domain.Project{
			"screentime": DefaultScreentimeProject(),
		},
	}
}

func (e *Explorer) GetProject(ctx context.Context, slug string) (domain.Project, error) {
	var doc *projectDoc
	err := e.store.Query(ctx, projectQuery, map[string]string{"slug": slug}, &doc)
	if err != nil || doc == nil || doc.ID == "" {
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("slug", slug).Msg("project fetch failed, trying fallback")
		}
		if fallback, ok := e.fallbacks[slug]; ok {
			return fallback, nil
		}
		if err != nil {
			return domain.Project{}, fmt.Errorf("get project %s: %w", slug, err)
		}
		return domain.Project{}, ErrNotFound
	}

	project := domain.Project{
		ID:           doc.ID,
		Title:        doc.Title,
		Year:         doc.Year,
		Description:  doc.Description,
		ImageSrc:     doc.ImageSrc,
		VideoSrc:     doc.VideoSrc,
		XLink:        doc.XLink,
		TryItOutHref: doc.TryItOutHref,
	}
	for _, tc := range doc.ToolCategories {
		project.ToolCategories = append(project.ToolCategories, domain.ToolCategory{
			Label: tc.Label,
			Tools: tc.Tools,
		})
	}
	return project, nil
}

// DefaultScreentimeProject is the fallback card for the screen-time
// receipt experiment.
func DefaultScreentimeProject() domain.Project {
	return domain.Project{
		ID:           "screentime",
		Title:        "Screentime Receipt",
		Year:         "2025",
		Description:  "A receipt for your daily or weekly screentime.",
		ImageSrc:     "https://image.mux.com/AdZWDHKkfyhXntZy01keNYtPB7Q6w8GxeaUWmP8501SLI/thumbnail.png",
		VideoSrc:     "https://stream.mux.com/AdZWDHKkfyhXntZy01keNYtPB7Q6w8GxeaUWmP8501SLI.m3u8",
		TryItOutHref: "/screentime",
		ToolCategories: []domain.ToolCategory{
			{Label: "Design", Tools: []string{"Figma"}},
			{Label: "Frontend", Tools: []string{"TypeScript", "React", "Vite"}},
			{Label: "Styling", Tools: []string{"Tailwind CSS"}},
		},
	}
}
