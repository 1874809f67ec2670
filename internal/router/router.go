package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/tejaspatni/Book-Recommendation-Management-System/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to a resource on
// the provided Echo instance.  Currently it exposes only a health
// check, which load balancers and monitoring systems can use to verify
// that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the book catalog API: book CRUD, reviews,
// recommendations and summaries.  The paths mirror the public API
// contract; all book-scoped routes take the numeric book id as :id.
func RegisterCatalog(e *echo.Echo, b *handler.BookHandler, r *handler.ReviewHandler, rec *handler.RecommendationHandler, s *handler.SummaryHandler) {
	// Book CRUD. POST creates, GET lists with skip/limit pagination.
	e.POST("/books", b.CreateBook)
	e.GET("/books", b.ListBooks)
	e.GET("/books/:id", b.GetBook)
	e.PUT("/books/:id", b.UpdateBook)
	e.DELETE("/books/:id", b.DeleteBook)

	// Reviews live under their book; the path id is authoritative for
	// the review's book_id.
	e.POST("/books/:id/reviews", r.CreateReview)
	e.GET("/books/:id/reviews", r.ListReviews)

	// Summaries: ad-hoc text summarization and per-book blurb summarization.
	e.POST("/generate-summary", s.GenerateSummary)
	e.GET("/books/:id/summary", s.GetBookSummary)

	// Recommendations: top books of a genre by predicted rating.
	e.GET("/recommendations", rec.GetRecommendations)
}
