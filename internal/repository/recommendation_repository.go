// Package repository contains the candidate query feeding the recommendation
// scorer. Candidates are books of one genre inner-joined to their reviews with
// the mean rating computed per book. The inner join is deliberate: a book with
// zero reviews never becomes a candidate.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction

	"github.com/Masterminds/squirrel" // squirrel builds the aggregation query

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/model" // model holds the row structs
)

// Candidate pairs a book with the arithmetic mean of its review
// ratings.  The average is carried alongside the book for callers;
// the scorer does not feed it to the predictor.
type Candidate struct {
	Book      model.Book // the candidate book
	AvgRating float64    // mean of the book's review ratings
}

// RecommendationRepo runs the read-only candidate aggregation.
type RecommendationRepo struct {
	db *sql.DB
}

// NewRecommendationRepo constructs a RecommendationRepo with the given DB handle.
func NewRecommendationRepo(db *sql.DB) *RecommendationRepo {
	return &RecommendationRepo{db: db}
}

// CandidatesByGenre returns every book of the given genre that has at
// least one review, each paired with its average rating.  Rows are
// ordered by book id so the scorer's stable sort has a deterministic
// input order.  An unknown or empty genre simply yields an empty
// slice; genre validity against the training set is the scorer's job.
func (r *RecommendationRepo) CandidatesByGenre(ctx context.Context, genre string) ([]Candidate, error) {
	q, args, err := squirrel.StatementBuilder.
		Select("b.id", "b.title", "b.author", "b.genre", "b.year_published", "b.summary", "AVG(r.rating)").
		From("books b").
		Join("reviews r ON r.book_id = b.id").
		Where(squirrel.Eq{"b.genre": genre}).
		GroupBy("b.id", "b.title", "b.author", "b.genre", "b.year_published", "b.summary").
		OrderBy("b.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(
			&c.Book.ID, &c.Book.Title, &c.Book.Author, &c.Book.Genre,
			&c.Book.YearPublished, &c.Book.Summary, &c.AvgRating,
		); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
