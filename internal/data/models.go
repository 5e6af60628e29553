// internal/data/models.go
package data

import "database/sql"

// Services is a top-level container that groups all service types together.
// It is passed around the application via applicationDependencies so every
// handler reaches the business layer without importing sql directly.
type Services struct {
	Books *BookService // Create/list/get-by-id use cases for the books table
}

// NewServices constructs a Services value wired up to the given database
// connection pool. Call this once during application startup.
func NewServices(db *sql.DB) Services {
	return Services{
		Books: NewBookService(BookModel{DB: db}),
	}
}

// NewMemoryServices constructs a Services value backed by an in-memory
// store. Used when no database DSN is configured, and by the test suite.
func NewMemoryServices() Services {
	return Services{
		Books: NewBookService(NewMemoryStore()),
	}
}
