// Package queue defines message payloads exchanged over the message broker.
package queue

// ReviewCreatedEvent is published when a review is successfully stored.
// It carries enough information for downstream consumers to log or feed
// analytics and model-retraining pipelines without querying the primary
// database.
type ReviewCreatedEvent struct {
	ReviewID  uint64  `json:"review_id"`
	BookID    uint64  `json:"book_id"`
	UserID    int64   `json:"user_id"`
	Rating    float64 `json:"rating"`
	CreatedAt string  `json:"created_at"`
}
