package model

// Book represents a single catalog entry.  A book owns zero or
// more reviews.  Genre is a free-form category string; it is only
// interpreted by the recommendation scorer, which maps it onto the
// genre list captured at training time.  This struct corresponds
// to a row in the `books` table.
//
// Fields:
//
//	ID            – primary key identifier.
//	Title         – title of the book.
//	Author        – author name, uninterpreted.
//	Genre         – free-form genre/category string.
//	YearPublished – year of publication.
//	Summary       – stored blurb; input for the summary endpoint.
type Book struct {
	ID            uint64 `json:"id"`             // books.id
	Title         string `json:"title"`          // books.title
	Author        string `json:"author"`         // books.author
	Genre         string `json:"genre"`          // books.genre
	YearPublished int    `json:"year_published"` // books.year_published
	Summary       string `json:"summary"`        // books.summary
}
