package handler // handler package contains the recommendation endpoint

import (
	"context"  // context carries the request deadline into the candidate query
	"errors"   // errors matches scorer sentinels
	"net/http" // http provides status code constants

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/recommend"  // recommend defines the scorer contract
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/repository" // repository supplies candidates
)

// CandidateSource supplies the books of a genre paired with their
// average review rating.  *repository.RecommendationRepo implements it.
type CandidateSource interface {
	CandidatesByGenre(ctx context.Context, genre string) ([]repository.Candidate, error)
}

// Scorer ranks candidates by predicted rating.  *recommend.Scorer
// implements it; tests substitute stubs.
type Scorer interface {
	Recommend(genre string, candidates []repository.Candidate) ([]recommend.Recommendation, error)
}

// RecommendationHandler bundles the candidate source and scorer.
type RecommendationHandler struct {
	Candidates CandidateSource // Candidates runs the genre aggregation query
	Scorer     Scorer          // Scorer applies the trained model
}

// NewRecommendationHandler constructs the handler and panics on nil dependencies.
func NewRecommendationHandler(candidates CandidateSource, scorer Scorer) *RecommendationHandler {
	if candidates == nil || scorer == nil { // check for nil dependencies
		panic("nil dependency passed to NewRecommendationHandler")
	}
	return &RecommendationHandler{Candidates: candidates, Scorer: scorer}
}

// GetRecommendations handles GET /recommendations?genre=...
// Unknown genres are a client fault (400) even when the catalog holds
// books of that genre; the model cannot score what it never saw.  A
// known genre with no reviewed books is 404, a distinct failure.
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error { // begin GetRecommendations handler
	genre := c.QueryParam("genre") // genre comes from the query string
	if genre == "" {
		return c.JSON(http.StatusBadRequest, detail("genre query parameter is required"))
	}
	candidates, err := h.Candidates.CandidatesByGenre(c.Request().Context(), genre)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, detail("db error"))
	}
	recs, err := h.Scorer.Recommend(genre, candidates)
	if err != nil {
		if errors.Is(err, recommend.ErrUnknownGenre) {
			return c.JSON(http.StatusBadRequest, detail("Genre not found in training data"))
		}
		if errors.Is(err, recommend.ErrNoCandidates) {
			return c.JSON(http.StatusNotFound, detail("No books found for the given genre"))
		}
		return c.JSON(http.StatusInternalServerError, detail("prediction failed"))
	}
	return c.JSON(http.StatusOK, recs) // up to five books, best predicted rating first
}
