// Package repository contains data access logic for reviews. A review always
// belongs to a book; Create verifies the parent row first so handlers can
// answer 404 instead of surfacing a raw foreign key violation.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel matching

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/model" // model holds the row structs
)

// ReviewRepo manages persistence for reviews.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo constructs a ReviewRepo with the given DB handle.
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Create inserts a review under the book named by rv.BookID. The book
// existence check and the insert run in one transaction so a
// concurrent book deletion cannot leave an orphaned review behind.
// ErrBookNotFound is returned when the parent book does not exist.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	// Verify the parent book exists inside the transaction
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM books WHERE id = ? LIMIT 1`, rv.BookID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrBookNotFound
		}
		return err
	}
	const q = `INSERT INTO reviews (book_id, user_id, review_text, rating) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, rv.BookID, rv.UserID, rv.ReviewText, rv.Rating)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId() // obtain the auto-incremented ID
	if err != nil {
		return err
	}
	rv.ID = uint64(id) // assign the generated ID to the review model
	return nil
}

// ListByBook returns all reviews for the given book ordered by id.
// A book with no reviews yields an empty slice and nil error; the
// caller decides whether a missing book matters.
func (r *ReviewRepo) ListByBook(ctx context.Context, bookID uint64) ([]model.Review, error) {
	const q = `SELECT id, book_id, user_id, review_text, rating
               FROM reviews
               WHERE book_id = ?
               ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.ReviewText, &rv.Rating); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
