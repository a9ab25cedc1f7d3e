package adapters

import (
	"github.com/folio-tools/folio-api/pkg/models/api"
	"github.com/folio-tools/folio-api/pkg/models/domain"
)

func MapDomainBookToAPI(book domain.Book) api.Book {
	return api.Book{
		ID:           book.ID,
		Title:        book.Title,
		Author:       book.Author,
		CoverImage:   book.CoverImage,
		Rating:       book.Rating,
		Year:         book.Year,
		GoodreadsURL: book.GoodreadsURL,
		Review:       book.Review,
		ReviewEN:     book.ReviewEN,
	}
}

func MapDomainProjectToAPI(project domain.Project) api.Project {
	mapped := api.Project{
		ID:           project.ID,
		Title:        project.Title,
		Year:         project.Year,
		Description:  project.Description,
		ImageSrc:     project.ImageSrc,
		VideoSrc:     project.VideoSrc,
		XLink:        project.XLink,
		TryItOutHref: project.TryItOutHref,
	}
	for _, tc := range project.ToolCategories {
		mapped.ToolCategories = append(mapped.ToolCategories, api.ToolCategory{
			Label: tc.Label,
			Tools: tc.Tools,
		})
	}
	return mapped
}
