package recommend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/repository"
)

// topK is the maximum number of books a recommendation response carries.
const topK = 5

// ErrUnknownGenre is returned when the requested genre was not part of
// the training data.  Handlers should translate this into an HTTP 400
// response; coding an unseen genre as 0 or -1 would silently feed the
// model a feature value it was never trained on.
var ErrUnknownGenre = errors.New("genre not found in training data")

// ErrNoCandidates is returned when no book of the requested genre has
// at least one review.  Handlers should translate this into an HTTP
// 404 response, distinct from the unknown-genre case.
var ErrNoCandidates = errors.New("no books found for the given genre")

// RatingPredictor is the narrow capability the scorer needs from the
// trained model: a deterministic batch prediction over feature
// vectors.  *Forest satisfies it; tests substitute stubs.
type RatingPredictor interface {
	Predict(features [][]float64) ([]float64, error)
}

// Recommendation is one scored book in a recommendation response.
type Recommendation struct {
	ID              uint64  `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	PredictedRating float64 `json:"predicted_rating"`
}

// Scorer ranks the books of a genre by predicted rating.  It owns no
// mutable state: the genre table and predictor are fixed at
// construction and safe for concurrent use.
type Scorer struct {
	genres    []string
	predictor RatingPredictor
	logger    zerolog.Logger
}

// NewScorer builds a Scorer over the training-time genre list and a
// predictor.  The genre list order must match the one the model was
// trained with, since a genre's code is its position in the list.
func NewScorer(genres []string, predictor RatingPredictor, logger zerolog.Logger) *Scorer {
	return &Scorer{
		genres:    genres,
		predictor: predictor,
		logger:    logger.With().Str("component", "scorer").Logger(),
	}
}

// Recommend scores every candidate and returns up to five books in
// descending order of predicted rating.  Ties keep their input order
// (the sort is stable).  The candidate's average review rating is
// intentionally not part of the feature vector: the shipped model was
// trained on [genre_code, year_published] only, and serving must use
// the same features.
func (s *Scorer) Recommend(genre string, candidates []repository.Candidate) ([]Recommendation, error) {
	code, ok := s.genreIndex(genre)
	if !ok {
		return nil, ErrUnknownGenre
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	features := lo.Map(candidates, func(c repository.Candidate, _ int) []float64 {
		return []float64{float64(code), float64(c.Book.YearPublished)}
	})
	preds, err := s.predictor.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if len(preds) != len(candidates) {
		return nil, fmt.Errorf("predict: got %d predictions for %d candidates", len(preds), len(candidates))
	}

	scored := make([]Recommendation, len(candidates))
	for i, c := range candidates {
		scored[i] = Recommendation{
			ID:              c.Book.ID,
			Title:           c.Book.Title,
			Author:          c.Book.Author,
			PredictedRating: preds[i],
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].PredictedRating > scored[j].PredictedRating
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}

	s.logger.Debug().
		Str("genre", genre).
		Int("candidates", len(candidates)).
		Int("returned", len(scored)).
		Msg("scored recommendation request")
	return scored, nil
}

// genreIndex performs the positional lookup of a genre in the
// training-time genre list.
func (s *Scorer) genreIndex(genre string) (int, bool) {
	for i, g := range s.genres {
		if g == genre {
			return i, true
		}
	}
	return 0, false
}
