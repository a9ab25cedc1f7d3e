package library

import (
	"context"
	"fmt"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/rs/zerolog"
)

// ContentStore is the read surface of the content store consumed here.
type ContentStore interface {
	Query(ctx context.Context, groq string, params map[string]string, result any) error
	ImageURL(ref string, width int) (string, error)
}

// Published book shelf items, in curation order.
const shelfBooksQuery = `*[_type == "shelfItem" && isPublished == true && mediaType == "book"] | order(order asc) {
  _id,
  title,
  author,
  cover,
  externalCoverUrl,
  rating,
  year,
  goodreadsUrl,
  review,
  review_en
}`

const coverWidth = 400

type shelfItemDoc struct {
	ID     string `json:"_id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Cover  *struct {
		Asset struct {
			Ref string `json:"_ref"`
		} `json:"asset"`
	} `json:"cover"`
	ExternalCoverURL string `json:"externalCoverUrl"`
	Rating           int    `json:"rating"`
	Year             string `json:"year"`
	GoodreadsURL     string `json:"goodreadsUrl"`
	Review           string `json:"review"`
	ReviewEN         string `json:"review_en"`
}

// Explorer reads the book shelf out of the content store. Strictly
// read-only; shelf items are curated in the content studio.
type Explorer struct {
	store ContentStore
}

func NewExplorer(store ContentStore) *Explorer {
	return &Explorer{store: store}
}

func (e *Explorer) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var docs []shelfItemDoc
	if err := e.store.Query(ctx, shelfBooksQuery, nil, &docs); err != nil {
		return nil, fmt.Errorf("list shelf books: %w", err)
	}

	books := make([]domain.Book, 0, len(docs))
	for _, doc := range docs {
		books = append(books, e.transformBook(ctx, doc))
	}
	return books, nil
}

func (e *Explorer) transformBook(ctx context.Context, doc shelfItemDoc) domain.Book {
	// Prefer the uploaded cover asset; fall back to the external URL.
	cover := ""
	if doc.Cover != nil && doc.Cover.Asset.Ref != "" {
		url, err := e.store.ImageURL(doc.Cover.Asset.Ref, coverWidth)
		if err != nil {
			zerolog.Ctx(ctx).Warn().
				Err(err).
				Str("book", doc.Title).
				Msg("failed to build cover image URL")
		} else {
			cover = url
		}
	}
	if cover == "" {
		cover = doc.ExternalCoverURL
	}

	return domain.Book{
		ID:           doc.ID,
		Title:        doc.Title,
		Author:       doc.Author,
		CoverImage:   cover,
		Rating:       doc.Rating,
		Year:         doc.Year,
		GoodreadsURL: doc.GoodreadsURL,
		Review:       doc.Review,
		ReviewEN:     doc.ReviewEN,
	}
}
