// Package repository contains data access logic for the book catalog. This file
// defines repository methods for books. Every write is a single all-or-nothing
// statement or transaction; deleting a book cascades to its reviews inside one
// transaction so that no orphaned review rows survive.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel matching

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/model" // model holds the row structs
)

// BookRepo manages persistence for books.
type BookRepo struct {
	db *sql.DB
}

// NewBookRepo constructs a BookRepo with the given DB handle.
func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *BookRepo) DB() *sql.DB {
	return r.db
}

// Create inserts a new book and assigns the generated ID back to the
// struct.  All columns come from the caller; there are no DB-side
// defaults beyond the auto-increment id.
func (r *BookRepo) Create(ctx context.Context, b *model.Book) error {
	const q = `INSERT INTO books (title, author, genre, year_published, summary) VALUES (?, ?, ?, ?, ?)` // SQL insert for books
	res, err := r.db.ExecContext(ctx, q, b.Title, b.Author, b.Genre, b.YearPublished, b.Summary)         // execute insertion
	if err != nil {                                                                                      // check execution error
		return err // propagate the error
	}
	id, err := res.LastInsertId() // obtain the auto-incremented ID
	if err != nil {               // check error retrieving ID
		return err // propagate error
	}
	b.ID = uint64(id) // assign the generated ID to the book model
	return nil        // return nil on success
}

// List returns books ordered by id, honoring the skip/limit window.
// When no books fall in the window it returns an empty slice and nil
// error.
func (r *BookRepo) List(ctx context.Context, skip, limit int) ([]model.Book, error) {
	const q = `SELECT id, title, author, genre, year_published, summary
               FROM books
               ORDER BY id ASC
               LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.YearPublished, &b.Summary); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a book by its ID.  It returns ErrBookNotFound if
// there is no matching row.
func (r *BookRepo) GetByID(ctx context.Context, id uint64) (*model.Book, error) {
	const q = `SELECT id, title, author, genre, year_published, summary FROM books WHERE id = ?`
	var b model.Book
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.YearPublished, &b.Summary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Update performs a full replace of every mutable column.  The update
// is unconditional: callers supply every field, and old values never
// survive.  ErrBookNotFound is returned when the row does not exist.
func (r *BookRepo) Update(ctx context.Context, b *model.Book) error {
	const q = `UPDATE books
               SET title = ?, author = ?, genre = ?, year_published = ?, summary = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, b.Title, b.Author, b.Genre, b.YearPublished, b.Summary, b.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	// RowsAffected can be zero either because the row is missing or
	// because the new values equal the old ones.  Distinguish with an
	// existence probe so full replaces with identical values succeed.
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM books WHERE id = ? LIMIT 1`, b.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}

// Delete removes a book and all of its reviews. The deletion runs in a
// transaction so that no partial cleanup occurs: either the reviews and
// the book row all disappear, or nothing does. If the book does not
// exist, ErrBookNotFound is returned.
func (r *BookRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// Ensure rollback or commit at the end
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	// Verify the book exists before touching dependent rows
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM books WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrBookNotFound
		}
		return err
	}
	// Remove reviews referencing this book first so the FK never blocks
	if _, err = tx.ExecContext(ctx, `DELETE FROM reviews WHERE book_id = ?`, id); err != nil {
		return err
	}
	// Delete the book itself
	if _, err = tx.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
