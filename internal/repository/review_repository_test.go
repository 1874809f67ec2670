package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/model"
)

func newReviewMock(t *testing.T) (*ReviewRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewReviewRepo(db), mock
}

func TestReviewCreateUnderExistingBook(t *testing.T) {
	repo, mock := newReviewMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM books WHERE id").
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(uint64(4), int64(12), "great", 4.5).
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectCommit()

	rv := &model.Review{BookID: 4, UserID: 12, ReviewText: "great", Rating: 4.5}
	require.NoError(t, repo.Create(context.Background(), rv))
	assert.Equal(t, uint64(31), rv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewCreateMissingBook(t *testing.T) {
	repo, mock := newReviewMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM books WHERE id").
		WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectRollback()

	rv := &model.Review{BookID: 404, UserID: 1, ReviewText: "x", Rating: 3}
	assert.ErrorIs(t, repo.Create(context.Background(), rv), ErrBookNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewListByBook(t *testing.T) {
	repo, mock := newReviewMock(t)

	rows := sqlmock.NewRows([]string{"id", "book_id", "user_id", "review_text", "rating"}).
		AddRow(1, 4, 9, "good", 4.0).
		AddRow(2, 4, 10, "bad", 1.5)
	mock.ExpectQuery("SELECT id, book_id, user_id, review_text, rating FROM reviews WHERE book_id").
		WithArgs(uint64(4)).
		WillReturnRows(rows)

	reviews, err := repo.ListByBook(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, model.Review{ID: 1, BookID: 4, UserID: 9, ReviewText: "good", Rating: 4.0}, reviews[0])
}

func TestReviewListByBookEmpty(t *testing.T) {
	repo, mock := newReviewMock(t)

	mock.ExpectQuery("SELECT id, book_id, user_id, review_text, rating FROM reviews WHERE book_id").
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id", "user_id", "review_text", "rating"}))

	reviews, err := repo.ListByBook(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.NotNil(t, reviews, "an empty list serializes as [], not null")
}
