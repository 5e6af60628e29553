// Package data provides the data models, validation rules and database
// interaction logic for the bookstore API.
package data

import (
	"unicode/utf8"

	"github.com/Anamuratori/SC22-testesautom-livraria/internal/validator"
)

// Validation thresholds for new books. The catalogue only carries full-length
// editions, so very cheap or very short submissions are rejected outright.
const (
	MinimumPrice     = 50.0 // Lowest accepted price, in the store currency
	MinimumPageCount = 100  // Lowest accepted page count
	MaxSummaryLength = 500  // Longest accepted summary, in characters
)

// Book represents a single book record stored in the database.
// It maps directly to a row in the "books" table. ID is zero until the
// record has been persisted.
type Book struct {
	ID              int64   // Unique identifier assigned by the database
	Title           string  // Title of the book
	Summary         string  // Short description, at most 500 characters
	TableOfContents string  // Free-form chapter overview
	Price           float64 // Sale price
	PageCount       int     // Number of pages
	ISBN            string  // ISBN identifier
	PublicationDate Date    // Date the edition is (or will be) published
}

// BookInput holds the fields a client supplies when creating a new book.
// Price, PageCount and PublicationDate are pointers so a missing field can
// be told apart from an explicit zero value.
type BookInput struct {
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	TableOfContents string   `json:"table_of_contents"`
	Price           *float64 `json:"price"`
	PageCount       *int     `json:"page_count"`
	ISBN            string   `json:"isbn"`
	PublicationDate *Date    `json:"publication_date"`
}

// BookOutput is the wire representation of a persisted book, returned by
// the create, list and show endpoints. It carries every entity field plus
// the database-assigned id.
type BookOutput struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Summary         string  `json:"summary"`
	TableOfContents string  `json:"table_of_contents"`
	Price           float64 `json:"price"`
	PageCount       int     `json:"page_count"`
	ISBN            string  `json:"isbn"`
	PublicationDate Date    `json:"publication_date"`
}

// ValidateBookInput runs every field rule against input, accumulating
// violations in v. It never touches storage; callers check v.Valid()
// before mapping the input into an entity.
func ValidateBookInput(v *validator.Validator, input *BookInput) {
	v.Check(input.Title != "", "title", "must be provided")

	v.Check(input.Summary != "", "summary", "must be provided")
	// The limit counts characters, not bytes, so accented text is not
	// penalized for its UTF-8 encoding.
	v.Check(utf8.RuneCountInString(input.Summary) <= MaxSummaryLength, "summary", "must not be more than 500 characters long")

	v.Check(input.Price != nil, "price", "must be provided")
	if input.Price != nil {
		v.Check(*input.Price >= MinimumPrice, "price", "must be at least 50.0")
	}

	v.Check(input.PageCount != nil, "page_count", "must be provided")
	if input.PageCount != nil {
		v.Check(*input.PageCount >= MinimumPageCount, "page_count", "must be at least 100")
	}

	v.Check(input.ISBN != "", "isbn", "must be provided")

	v.Check(input.PublicationDate != nil, "publication_date", "must be provided")
	if input.PublicationDate != nil {
		v.Check(!input.PublicationDate.Before(Today()), "publication_date", "must not be in the past")
	}
}
