package data

import (
	"database/sql"
	"errors"
)

// ErrRecordNotFound is returned when a query finds no matching row.
var ErrRecordNotFound = errors.New("record not found")

// BookStore describes the persistence operations the service layer needs.
// BookModel implements it against PostgreSQL; MemoryStore implements it
// in-process for tests and database-less runs.
type BookStore interface {
	// Insert persists a new book and writes the assigned id back into book.
	Insert(book *Book) error
	// Get retrieves a book by id, or ErrRecordNotFound if none exists.
	Get(id int64) (*Book, error)
	// GetAll retrieves every book in insertion (id ascending) order.
	GetAll() ([]*Book, error)
}

// BookModel wraps a *sql.DB connection and provides methods for creating
// and reading book records.
type BookModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new book record to the database.
// After a successful insert, the database-assigned id is written back into
// the book struct.
func (m BookModel) Insert(book *Book) error {
	query := `
		INSERT INTO books (title, summary, table_of_contents, price, page_count, isbn, publication_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	// Run the INSERT and scan the auto-generated id back into the struct.
	return m.DB.QueryRow(
		query,
		book.Title,
		book.Summary,
		book.TableOfContents,
		book.Price,
		book.PageCount,
		book.ISBN,
		book.PublicationDate.Time,
	).Scan(&book.ID)
}

// Get retrieves a single book by its primary key.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m BookModel) Get(id int64) (*Book, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, title, summary, table_of_contents, price, page_count, isbn, publication_date
		FROM books
		WHERE id = $1`

	var book Book
	err := m.DB.QueryRow(query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Summary,
		&book.TableOfContents,
		&book.Price,
		&book.PageCount,
		&book.ISBN,
		&book.PublicationDate.Time,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAll retrieves every book, ordered by id so the listing follows
// insertion order.
func (m BookModel) GetAll() ([]*Book, error) {
	query := `
		SELECT id, title, summary, table_of_contents, price, page_count, isbn, publication_date
		FROM books
		ORDER BY id ASC`

	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	// Always close the result set when we are done to free the database connection.
	defer rows.Close()

	books := []*Book{}

	for rows.Next() {
		var book Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Summary,
			&book.TableOfContents,
			&book.Price,
			&book.PageCount,
			&book.ISBN,
			&book.PublicationDate.Time,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}

	// Check for any error that occurred while iterating the rows.
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}
