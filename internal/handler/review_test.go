package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/model"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/queue"
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/repository"
)

// fakeReviewStore implements ReviewStore with overridable function fields.
type fakeReviewStore struct {
	create     func(ctx context.Context, rv *model.Review) error
	listByBook func(ctx context.Context, bookID uint64) ([]model.Review, error)
}

func (f *fakeReviewStore) Create(ctx context.Context, rv *model.Review) error {
	return f.create(ctx, rv)
}
func (f *fakeReviewStore) ListByBook(ctx context.Context, bookID uint64) ([]model.Review, error) {
	return f.listByBook(ctx, bookID)
}

func TestCreateReview(t *testing.T) {
	store := &fakeReviewStore{
		create: func(_ context.Context, rv *model.Review) error {
			rv.ID = 11
			return nil
		},
	}
	published := make(chan queue.ReviewCreatedEvent, 1)
	publish := func(_ context.Context, ev queue.ReviewCreatedEvent) error {
		published <- ev
		return nil
	}
	h := NewReviewHandler(store, publish, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodPost, "/books/4/reviews",
		`{"user_id": 12, "review_text": "great", "rating": 4.5}`)
	c.SetPath("/books/:id/reviews")
	c.SetParamNames("id")
	c.SetParamValues("4")
	require.NoError(t, h.CreateReview(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got model.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(11), got.ID)
	assert.Equal(t, uint64(4), got.BookID, "book id comes from the path, not the body")

	select {
	case ev := <-published:
		assert.Equal(t, uint64(11), ev.ReviewID)
		assert.Equal(t, uint64(4), ev.BookID)
		assert.InDelta(t, 4.5, ev.Rating, 1e-9)
	case <-time.After(2 * time.Second):
		t.Fatal("review.created event was never published")
	}
}

func TestCreateReviewMissingBook(t *testing.T) {
	store := &fakeReviewStore{
		create: func(context.Context, *model.Review) error { return repository.ErrBookNotFound },
	}
	h := NewReviewHandler(store, nil, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodPost, "/books/99/reviews",
		`{"user_id": 12, "review_text": "great", "rating": 4.5}`)
	c.SetPath("/books/:id/reviews")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.CreateReview(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Book not found"}`, rec.Body.String())
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	h := NewReviewHandler(&fakeReviewStore{
		create: func(context.Context, *model.Review) error {
			t.Fatal("store must not be reached on validation failure")
			return nil
		},
	}, nil, zerolog.Nop())

	for _, body := range []string{
		`{"user_id": 12, "review_text": "x", "rating": 0.5}`,
		`{"user_id": 12, "review_text": "x", "rating": 5.1}`,
	} {
		c, rec := newTestContext(t, http.MethodPost, "/books/4/reviews", body)
		c.SetPath("/books/:id/reviews")
		c.SetParamNames("id")
		c.SetParamValues("4")
		require.NoError(t, h.CreateReview(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	}
}

func TestCreateReviewPublishFailureDoesNotFailRequest(t *testing.T) {
	store := &fakeReviewStore{
		create: func(_ context.Context, rv *model.Review) error {
			rv.ID = 1
			return nil
		},
	}
	called := make(chan struct{}, 1)
	publish := func(context.Context, queue.ReviewCreatedEvent) error {
		called <- struct{}{}
		return assert.AnError
	}
	h := NewReviewHandler(store, publish, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodPost, "/books/4/reviews",
		`{"user_id": 12, "review_text": "ok", "rating": 3}`)
	c.SetPath("/books/:id/reviews")
	c.SetParamNames("id")
	c.SetParamValues("4")
	require.NoError(t, h.CreateReview(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("publish was never attempted")
	}
}

func TestListReviews(t *testing.T) {
	store := &fakeReviewStore{
		listByBook: func(_ context.Context, bookID uint64) ([]model.Review, error) {
			return []model.Review{
				{ID: 1, BookID: bookID, UserID: 9, ReviewText: "good", Rating: 4},
				{ID: 2, BookID: bookID, UserID: 10, ReviewText: "bad", Rating: 1.5},
			}, nil
		},
	}
	h := NewReviewHandler(store, nil, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/books/4/reviews", "")
	c.SetPath("/books/:id/reviews")
	c.SetParamNames("id")
	c.SetParamValues("4")
	require.NoError(t, h.ListReviews(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []model.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, uint64(4), got[0].BookID)
}

func TestListReviewsEmpty(t *testing.T) {
	store := &fakeReviewStore{
		listByBook: func(context.Context, uint64) ([]model.Review, error) {
			return []model.Review{}, nil
		},
	}
	h := NewReviewHandler(store, nil, zerolog.Nop())

	c, rec := newTestContext(t, http.MethodGet, "/books/4/reviews", "")
	c.SetPath("/books/:id/reviews")
	c.SetParamNames("id")
	c.SetParamValues("4")
	require.NoError(t, h.ListReviews(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
