package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/model"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/recommend"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/repository"
)

type fakeCandidateSource struct {
	candidates func(ctx context.Context, genre string) ([]repository.Candidate, error)
}

func (f *fakeCandidateSource) CandidatesByGenre(ctx context.Context, genre string) ([]repository.Candidate, error) {
	return f.candidates(ctx, genre)
}

type fakeScorer struct {
	recommend func(genre string, candidates []repository.Candidate) ([]recommend.Recommendation, error)
}

func (f *fakeScorer) Recommend(genre string, candidates []repository.Candidate) ([]recommend.Recommendation, error) {
	return f.recommend(genre, candidates)
}

func TestGetRecommendations(t *testing.T) {
	source := &fakeCandidateSource{
		candidates: func(_ context.Context, genre string) ([]repository.Candidate, error) {
			assert.Equal(t, "Sci-Fi", genre)
			return []repository.Candidate{
				{Book: model.Book{ID: 2, Title: "Dune", Author: "Frank Herbert"}, AvgRating: 4.6},
			}, nil
		},
	}
	scorer := &fakeScorer{
		recommend: func(genre string, candidates []repository.Candidate) ([]recommend.Recommendation, error) {
			require.Len(t, candidates, 1)
			return []recommend.Recommendation{
				{ID: 2, Title: "Dune", Author: "Frank Herbert", PredictedRating: 4.8},
			}, nil
		},
	}
	h := NewRecommendationHandler(source, scorer)

	c, rec := newTestContext(t, http.MethodGet, "/recommendations?genre=Sci-Fi", "")
	require.NoError(t, h.GetRecommendations(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []recommend.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.InDelta(t, 4.8, got[0].PredictedRating, 1e-9)
}

func TestGetRecommendationsMissingGenreParam(t *testing.T) {
	h := NewRecommendationHandler(&fakeCandidateSource{
		candidates: func(context.Context, string) ([]repository.Candidate, error) {
			t.Fatal("candidate query must not run without a genre")
			return nil, nil
		},
	}, &fakeScorer{})

	c, rec := newTestContext(t, http.MethodGet, "/recommendations", "")
	require.NoError(t, h.GetRecommendations(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecommendationsUnknownGenre(t *testing.T) {
	source := &fakeCandidateSource{
		candidates: func(context.Context, string) ([]repository.Candidate, error) {
			return nil, nil
		},
	}
	scorer := &fakeScorer{
		recommend: func(string, []repository.Candidate) ([]recommend.Recommendation, error) {
			return nil, recommend.ErrUnknownGenre
		},
	}
	h := NewRecommendationHandler(source, scorer)

	c, rec := newTestContext(t, http.MethodGet, "/recommendations?genre=Poetry", "")
	require.NoError(t, h.GetRecommendations(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail": "Genre not found in training data"}`, rec.Body.String())
}

func TestGetRecommendationsNoCandidates(t *testing.T) {
	source := &fakeCandidateSource{
		candidates: func(context.Context, string) ([]repository.Candidate, error) {
			return []repository.Candidate{}, nil
		},
	}
	scorer := &fakeScorer{
		recommend: func(string, []repository.Candidate) ([]recommend.Recommendation, error) {
			return nil, recommend.ErrNoCandidates
		},
	}
	h := NewRecommendationHandler(source, scorer)

	c, rec := newTestContext(t, http.MethodGet, "/recommendations?genre=Sci-Fi", "")
	require.NoError(t, h.GetRecommendations(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "No books found for the given genre"}`, rec.Body.String())
}

func TestGetRecommendationsPredictorFault(t *testing.T) {
	source := &fakeCandidateSource{
		candidates: func(context.Context, string) ([]repository.Candidate, error) {
			return []repository.Candidate{{Book: model.Book{ID: 1}}}, nil
		},
	}
	scorer := &fakeScorer{
		recommend: func(string, []repository.Candidate) ([]recommend.Recommendation, error) {
			return nil, assert.AnError
		},
	}
	h := NewRecommendationHandler(source, scorer)

	c, rec := newTestContext(t, http.MethodGet, "/recommendations?genre=Sci-Fi", "")
	require.NoError(t, h.GetRecommendations(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
