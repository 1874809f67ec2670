package recommend

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/model"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/repository"
)

// stubPredictor is a RatingPredictor for testing. It records the
// features it was asked about and returns canned predictions.
type stubPredictor struct {
	preds    []float64
	err      error
	features [][]float64
}

func (s *stubPredictor) Predict(features [][]float64) ([]float64, error) {
	s.features = features
	if s.err != nil {
		return nil, s.err
	}
	return s.preds, nil
}

func candidate(id uint64, title string, year int) repository.Candidate {
	return repository.Candidate{
		Book:      model.Book{ID: id, Title: title, Author: "a", Genre: "Fiction", YearPublished: year},
		AvgRating: 3.3,
	}
}

func newTestScorer(p RatingPredictor) *Scorer {
	return NewScorer([]string{"Fiction", "Non-Fiction", "Fantasy"}, p, zerolog.Nop())
}

func TestRecommendUnknownGenre(t *testing.T) {
	s := newTestScorer(&stubPredictor{})
	_, err := s.Recommend("Horror", []repository.Candidate{candidate(1, "x", 2000)})
	assert.ErrorIs(t, err, ErrUnknownGenre)
}

func TestRecommendUnknownGenreBeatsEmptyCandidates(t *testing.T) {
	// Genre validity is checked first: an unknown genre fails as
	// unknown even when the candidate set is also empty.
	s := newTestScorer(&stubPredictor{})
	_, err := s.Recommend("Horror", nil)
	assert.ErrorIs(t, err, ErrUnknownGenre)
}

func TestRecommendNoCandidates(t *testing.T) {
	s := newTestScorer(&stubPredictor{})
	_, err := s.Recommend("Fiction", nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestRecommendTopFiveDescending(t *testing.T) {
	p := &stubPredictor{preds: []float64{3.1, 4.9, 2.2, 4.1, 3.7, 1.5}}
	s := newTestScorer(p)

	cands := []repository.Candidate{
		candidate(1, "a", 2001),
		candidate(2, "b", 2002),
		candidate(3, "c", 2003),
		candidate(4, "d", 2004),
		candidate(5, "e", 2005),
		candidate(6, "f", 2006),
	}
	recs, err := s.Recommend("Fiction", cands)
	require.NoError(t, err)

	require.Len(t, recs, 5, "six candidates must be cut to five")
	ratings := []float64{recs[0].PredictedRating, recs[1].PredictedRating, recs[2].PredictedRating, recs[3].PredictedRating, recs[4].PredictedRating}
	assert.Equal(t, []float64{4.9, 4.1, 3.7, 3.1, 2.2}, ratings)
	assert.Equal(t, uint64(2), recs[0].ID)
	// The lowest-scored candidate (id 6, 1.5) is excluded entirely.
	for _, rec := range recs {
		assert.NotEqual(t, uint64(6), rec.ID)
	}
}

func TestRecommendFewerThanFive(t *testing.T) {
	p := &stubPredictor{preds: []float64{2.0, 4.0}}
	s := newTestScorer(p)

	recs, err := s.Recommend("Fiction", []repository.Candidate{candidate(1, "a", 2001), candidate(2, "b", 2002)})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, uint64(2), recs[0].ID)
}

func TestRecommendStableOnTies(t *testing.T) {
	p := &stubPredictor{preds: []float64{4.0, 4.0, 4.0}}
	s := newTestScorer(p)

	recs, err := s.Recommend("Fiction", []repository.Candidate{
		candidate(10, "a", 2001),
		candidate(20, "b", 2002),
		candidate(30, "c", 2003),
	})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	// Equal predictions keep candidate input order.
	assert.Equal(t, uint64(10), recs[0].ID)
	assert.Equal(t, uint64(20), recs[1].ID)
	assert.Equal(t, uint64(30), recs[2].ID)
}

func TestRecommendFeatureVector(t *testing.T) {
	p := &stubPredictor{preds: []float64{1.0}}
	s := newTestScorer(p)

	c := candidate(1, "a", 1993)
	c.AvgRating = 4.8
	_, err := s.Recommend("Fantasy", []repository.Candidate{c})
	require.NoError(t, err)

	// Feature vector is [genre_code, year_published]; the candidate's
	// average rating must not leak into the features.
	require.Len(t, p.features, 1)
	assert.Equal(t, []float64{2, 1993}, p.features[0])
}

func TestRecommendPredictorFailure(t *testing.T) {
	p := &stubPredictor{err: errors.New("model exploded")}
	s := newTestScorer(p)

	_, err := s.Recommend("Fiction", []repository.Candidate{candidate(1, "a", 2001)})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownGenre)
	assert.NotErrorIs(t, err, ErrNoCandidates)
}

func TestRecommendPredictionCountMismatch(t *testing.T) {
	p := &stubPredictor{preds: []float64{1.0}}
	s := newTestScorer(p)

	_, err := s.Recommend("Fiction", []repository.Candidate{candidate(1, "a", 2001), candidate(2, "b", 2002)})
	assert.Error(t, err)
}
