package handler // handler package contains book catalog handlers

import (
	"context"  // context carries request-scoped deadlines into the store
	"errors"   // errors matches repository sentinels through wrapping
	"net/http" // http provides status code constants
	"strconv"  // strconv parses pagination query parameters
	"strings"  // strings offers trimming utilities

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/model"      // model holds the row structs
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/repository" // repository defines the not-found sentinels
)

// Default pagination window for GET /books.
const (
	defaultSkip  = 0
	defaultLimit = 10
)

// BookStore is what the book handlers need from the catalog store.
// *repository.BookRepo implements it; tests substitute in-memory fakes.
type BookStore interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context, skip, limit int) ([]model.Book, error)
	GetByID(ctx context.Context, id uint64) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id uint64) error
}

// BookHandler bundles the store dependency for book CRUD endpoints.
type BookHandler struct {
	Books BookStore // Books provides book persistence
}

// NewBookHandler constructs a new BookHandler and panics if the store is nil.
func NewBookHandler(books BookStore) *BookHandler { // create a new handler with its store
	if books == nil { // check for nil dependency
		panic("nil store passed to NewBookHandler") // panic when the store is missing
	}
	return &BookHandler{Books: books} // return a pointer to the new handler
}

// bookPayload is the request body for create and full-replace update.
// Every field is supplied on every write; update is a replace, not a
// patch.
type bookPayload struct {
	Title         string `json:"title" validate:"required"`          // Title of the book
	Author        string `json:"author" validate:"required"`         // Author name
	Genre         string `json:"genre" validate:"required"`          // Free-form genre string
	YearPublished int    `json:"year_published" validate:"required"` // Year of publication
	Summary       string `json:"summary"`                            // Stored blurb, may be empty
}

// CreateBook handles POST /books and creates a new catalog entry
func (h *BookHandler) CreateBook(c echo.Context) error { // begin CreateBook handler
	var body bookPayload                  // payload struct for binding
	if err := c.Bind(&body); err != nil { // attempt to bind the request body
		return c.JSON(http.StatusBadRequest, detail("invalid request body")) // return bad request when binding fails
	}
	if err := c.Validate(&body); err != nil { // run struct tag validation
		return c.JSON(http.StatusUnprocessableEntity, detail(err.Error())) // 422 when required fields are missing
	}
	book := &model.Book{ // instantiate a new book model
		Title:         strings.TrimSpace(body.Title),  // trimmed title
		Author:        strings.TrimSpace(body.Author), // trimmed author
		Genre:         strings.TrimSpace(body.Genre),  // trimmed genre
		YearPublished: body.YearPublished,             // publication year as provided
		Summary:       body.Summary,                   // blurb as provided
	}
	if err := h.Books.Create(c.Request().Context(), book); err != nil { // delegate creation to the store
		return c.JSON(http.StatusInternalServerError, detail("could not create book")) // respond with internal error on failure
	}
	return c.JSON(http.StatusCreated, book) // return 201 and the created book including its id
}

// ListBooks handles GET /books with skip/limit pagination
func (h *BookHandler) ListBooks(c echo.Context) error { // begin ListBooks handler
	skip := parseQueryInt(c, "skip", defaultSkip)    // offset into the book table
	limit := parseQueryInt(c, "limit", defaultLimit) // page size
	books, err := h.Books.List(c.Request().Context(), skip, limit)
	if err != nil { // handle store errors
		return c.JSON(http.StatusInternalServerError, detail("db error")) // respond with internal server error
	}
	return c.JSON(http.StatusOK, books) // return the page as a bare JSON array
}

// GetBook handles GET /books/:id
func (h *BookHandler) GetBook(c echo.Context) error { // begin GetBook handler
	id, err := parseID(c) // parse the book ID from the URL
	if err != nil {       // validate that the ID is numeric
		return c.JSON(http.StatusBadRequest, detail("invalid id")) // invalid ID error response
	}
	book, err := h.Books.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) { // when the book is not found
			return c.JSON(http.StatusNotFound, detail("Book not found")) // respond with not found
		}
		return c.JSON(http.StatusInternalServerError, detail("db error")) // respond with database error
	}
	return c.JSON(http.StatusOK, book) // return the book with OK status
}

// UpdateBook handles PUT /books/:id and fully replaces every field
func (h *BookHandler) UpdateBook(c echo.Context) error { // begin UpdateBook handler
	id, err := parseID(c) // parse the book ID from the URL
	if err != nil {
		return c.JSON(http.StatusBadRequest, detail("invalid id"))
	}
	var body bookPayload
	if err := c.Bind(&body); err != nil { // attempt to bind the request body
		return c.JSON(http.StatusBadRequest, detail("invalid request body"))
	}
	if err := c.Validate(&body); err != nil { // full payload is required on update too
		return c.JSON(http.StatusUnprocessableEntity, detail(err.Error()))
	}
	book := &model.Book{ // replacement row carrying every column
		ID:            id,
		Title:         strings.TrimSpace(body.Title),
		Author:        strings.TrimSpace(body.Author),
		Genre:         strings.TrimSpace(body.Genre),
		YearPublished: body.YearPublished,
		Summary:       body.Summary,
	}
	if err := h.Books.Update(c.Request().Context(), book); err != nil { // replace the row in the store
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, detail("Book not found"))
		}
		return c.JSON(http.StatusInternalServerError, detail("update failed"))
	}
	return c.JSON(http.StatusOK, book) // return the updated book
}

// DeleteBook handles DELETE /books/:id; the book's reviews go with it
func (h *BookHandler) DeleteBook(c echo.Context) error { // begin DeleteBook handler
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, detail("invalid id"))
	}
	if err := h.Books.Delete(c.Request().Context(), id); err != nil { // cascade delete in one transaction
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, detail("Book not found"))
		}
		return c.JSON(http.StatusInternalServerError, detail("delete failed"))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Book deleted"}) // confirmation message
}

// parseQueryInt reads a non-negative integer query parameter, falling
// back to def when the parameter is absent or malformed.
func parseQueryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
