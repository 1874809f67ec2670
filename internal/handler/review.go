package handler // handler package contains review endpoints

import (
	"context"  // context carries request deadlines and scopes the async publish
	"errors"   // errors matches repository sentinels through wrapping
	"net/http" // http provides status code constants
	"time"     // time bounds the fire-and-forget publish

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers
	"github.com/rs/zerolog"       // zerolog records publish failures

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/model"      // model holds the row structs
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/queue"      // queue defines the event payloads
	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/repository" // repository defines the not-found sentinels
)

// ReviewStore is what the review handlers need from the catalog store.
type ReviewStore interface {
	Create(ctx context.Context, rv *model.Review) error
	ListByBook(ctx context.Context, bookID uint64) ([]model.Review, error)
}

// PublishFunc sends a review event to the broker.  Publishing is best
// effort; a broker outage never fails the HTTP request.
type PublishFunc func(ctx context.Context, ev queue.ReviewCreatedEvent) error

// ReviewHandler bundles the store and publisher for review endpoints.
type ReviewHandler struct {
	Reviews ReviewStore    // Reviews provides review persistence
	Publish PublishFunc    // Publish emits review.created events, may be nil
	Logger  zerolog.Logger // Logger records business-irrelevant failures
}

// NewReviewHandler constructs a new ReviewHandler and panics if the store is nil.
// publish may be nil when no broker is configured.
func NewReviewHandler(reviews ReviewStore, publish PublishFunc, logger zerolog.Logger) *ReviewHandler {
	if reviews == nil { // check for nil dependency
		panic("nil store passed to NewReviewHandler") // panic when the store is missing
	}
	return &ReviewHandler{
		Reviews: reviews,
		Publish: publish,
		Logger:  logger.With().Str("component", "review_handler").Logger(),
	}
}

// reviewPayload is the request body for creating a review.  The book
// id comes from the URL path, never from the body, so a client cannot
// attach a review to a different book than the one addressed.
// Rating bounds [1,5] are enforced here at the boundary; the column
// itself is unconstrained.
type reviewPayload struct {
	UserID     int64   `json:"user_id" validate:"required"`            // opaque reviewing user id
	ReviewText string  `json:"review_text" validate:"required"`        // free-form review body
	Rating     float64 `json:"rating" validate:"required,gte=1,lte=5"` // rating in [1,5]
}

// CreateReview handles POST /books/:id/reviews
func (h *ReviewHandler) CreateReview(c echo.Context) error { // begin CreateReview handler
	bookID, err := parseID(c) // book id comes from the path
	if err != nil {
		return c.JSON(http.StatusBadRequest, detail("invalid id"))
	}
	var body reviewPayload
	if err := c.Bind(&body); err != nil { // attempt to bind the request body
		return c.JSON(http.StatusBadRequest, detail("invalid request body"))
	}
	if err := c.Validate(&body); err != nil { // enforce required fields and rating bounds
		return c.JSON(http.StatusUnprocessableEntity, detail(err.Error()))
	}
	review := &model.Review{ // instantiate the review under the addressed book
		BookID:     bookID,
		UserID:     body.UserID,
		ReviewText: body.ReviewText,
		Rating:     body.Rating,
	}
	if err := h.Reviews.Create(c.Request().Context(), review); err != nil { // delegate creation to the store
		if errors.Is(err, repository.ErrBookNotFound) { // parent book must exist
			return c.JSON(http.StatusNotFound, detail("Book not found"))
		}
		return c.JSON(http.StatusInternalServerError, detail("could not create review"))
	}

	if h.Publish != nil { // emit the event without holding up the response
		ev := queue.ReviewCreatedEvent{
			ReviewID:  review.ID,
			BookID:    review.BookID,
			UserID:    review.UserID,
			Rating:    review.Rating,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.Publish(ctx, ev); err != nil {
				h.Logger.Warn().Err(err).Uint64("review_id", ev.ReviewID).Msg("review.created publish failed")
			}
		}()
	}

	return c.JSON(http.StatusCreated, review) // return 201 and the created review including id and book_id
}

// ListReviews handles GET /books/:id/reviews
func (h *ReviewHandler) ListReviews(c echo.Context) error { // begin ListReviews handler
	bookID, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, detail("invalid id"))
	}
	reviews, err := h.Reviews.ListByBook(c.Request().Context(), bookID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, detail("db error"))
	}
	return c.JSON(http.StatusOK, reviews) // empty array when the book has no reviews
}
