package handler // handler package contains the summarization endpoints

import (
	"errors"   // errors matches repository sentinels through wrapping
	"net/http" // http provides status code constants

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/repository" // repository defines the not-found sentinels
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/summarize"  // summarize defines the collaborator contract
)

// SummaryHandler bundles the summarizer collaborator and the book
// lookup needed by the per-book summary endpoint.
type SummaryHandler struct {
	Summarizer summarize.Summarizer // Summarizer is the opaque text-to-text collaborator
	Books      BookStore            // Books resolves the per-book summary source text
}

// NewSummaryHandler constructs the handler and panics on nil dependencies.
func NewSummaryHandler(s summarize.Summarizer, books BookStore) *SummaryHandler {
	if s == nil || books == nil { // check for nil dependencies
		panic("nil dependency passed to NewSummaryHandler")
	}
	return &SummaryHandler{Summarizer: s, Books: books}
}

// summaryPayload is the request body for ad-hoc summarization.
type summaryPayload struct {
	Content string `json:"content" validate:"required"` // text to summarize
}

// GenerateSummary handles POST /generate-summary
func (h *SummaryHandler) GenerateSummary(c echo.Context) error { // begin GenerateSummary handler
	var body summaryPayload
	if err := c.Bind(&body); err != nil { // attempt to bind the request body
		return c.JSON(http.StatusBadRequest, detail("invalid request body"))
	}
	if err := c.Validate(&body); err != nil { // content must be present
		return c.JSON(http.StatusUnprocessableEntity, detail(err.Error()))
	}
	summary, err := h.Summarizer.Summarize(c.Request().Context(), body.Content)
	if err != nil { // summarizer failure is a server fault, no retry
		return c.JSON(http.StatusInternalServerError, detail("summarization failed"))
	}
	return c.JSON(http.StatusOK, map[string]string{"summary": summary})
}

// GetBookSummary handles GET /books/:id/summary and summarizes the
// stored blurb of one book
func (h *SummaryHandler) GetBookSummary(c echo.Context) error { // begin GetBookSummary handler
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, detail("invalid id"))
	}
	book, err := h.Books.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, detail("Book not found"))
		}
		return c.JSON(http.StatusInternalServerError, detail("db error"))
	}
	summary, err := h.Summarizer.Summarize(c.Request().Context(), book.Summary)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, detail("summarization failed"))
	}
	return c.JSON(http.StatusOK, map[string]string{"summary": summary})
}
