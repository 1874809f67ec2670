package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements for the catalog tables. CREATE TABLE IF NOT EXISTS keeps
// startup idempotent across restarts; the FK backs the review→book reference.
// rating is FLOAT without a CHECK constraint on purpose: the API layer
// validates new ratings and historic rows stay readable whatever they hold.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS books (
        id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        title          VARCHAR(512)    NOT NULL,
        author         VARCHAR(255)    NOT NULL,
        genre          VARCHAR(255)    NOT NULL,
        year_published INT             NOT NULL,
        summary        TEXT            NOT NULL,
        PRIMARY KEY (id),
        KEY idx_books_genre (genre)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS reviews (
        id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        book_id     BIGINT UNSIGNED NOT NULL,
        user_id     BIGINT          NOT NULL,
        review_text TEXT            NOT NULL,
        rating      FLOAT           NOT NULL,
        PRIMARY KEY (id),
        KEY idx_reviews_book (book_id),
        CONSTRAINT fk_reviews_book FOREIGN KEY (book_id) REFERENCES books (id)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the books and reviews tables when they do not
// exist yet.  It runs once at process start, before the server begins
// accepting requests.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
