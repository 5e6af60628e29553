package data

import "errors"

// ErrBookNotFound is the domain error for a lookup of an id that was never
// assigned. The message text is part of the API contract and is returned
// to clients verbatim.
var ErrBookNotFound = errors.New("Livro nao encontrado.")

// BookService orchestrates the create, list and get-by-id use cases.
// It maps between the wire and stored representations and talks to the
// injected BookStore; field validation runs at the HTTP boundary before
// any of these methods are invoked.
type BookService struct {
	Store BookStore
}

// NewBookService returns a BookService backed by store.
func NewBookService(store BookStore) *BookService {
	return &BookService{Store: store}
}

// Create maps a validated input to an entity, persists it, and returns the
// persisted book (with its assigned id) in wire form. Store failures
// propagate unchanged.
func (s *BookService) Create(input *BookInput) (*BookOutput, error) {
	book := BookFromInput(input)

	if err := s.Store.Insert(book); err != nil {
		return nil, err
	}

	return OutputFromBook(book), nil
}

// List returns every stored book in wire form, in insertion order.
// An empty store yields an empty slice.
func (s *BookService) List() ([]*BookOutput, error) {
	books, err := s.Store.GetAll()
	if err != nil {
		return nil, err
	}

	return OutputsFromBooks(books), nil
}

// GetByID looks up a book by id and returns it in wire form.
// An id that was never assigned yields ErrBookNotFound.
func (s *BookService) GetByID(id int64) (*BookOutput, error) {
	book, err := s.Store.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			return nil, ErrBookNotFound
		default:
			return nil, err
		}
	}

	return OutputFromBook(book), nil
}
