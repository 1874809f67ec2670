package model

// Review is a user rating attached to exactly one book.  The user
// id is an opaque integer; there is no user table behind it.  The
// rating column is an unconstrained float in the schema, but the
// HTTP layer validates new ratings into [1,5].  This struct
// corresponds to a row in the `reviews` table.
//
// Fields:
//
//	ID         – primary key identifier.
//	BookID     – book this review belongs to (FK to books.id).
//	UserID     – opaque id of the reviewing user.
//	ReviewText – free-form review body.
//	Rating     – numeric rating given by the user.
type Review struct {
	ID         uint64  `json:"id"`          // reviews.id
	BookID     uint64  `json:"book_id"`     // reviews.book_id
	UserID     int64   `json:"user_id"`     // reviews.user_id
	ReviewText string  `json:"review_text"` // reviews.review_text
	Rating     float64 `json:"rating"`      // reviews.rating
}
