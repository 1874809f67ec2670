// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrBookNotFound indicates that a referenced book does not
// exist, which handlers translate into an HTTP 404 response.
package repository

import "errors"

// ErrBookNotFound is returned when a book lookup matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrBookNotFound = errors.New("book not found")

// ErrReviewNotFound is returned when a review lookup matches no row.
var ErrReviewNotFound = errors.New("review not found")
