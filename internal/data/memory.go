package data

import (
	"sort"
	"sync"
)

// MemoryStore provides an in-memory implementation of BookStore.
// It backs the test suite and lets the server run without a database
// when no DSN is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	books  map[int64]*Book
	nextID int64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		books:  make(map[int64]*Book),
		nextID: 1,
	}
}

// Insert stores a copy of book under a freshly assigned id and writes the
// id back into book, mirroring the database RETURNING behaviour.
func (s *MemoryStore) Insert(book *Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book.ID = s.nextID
	s.nextID++

	stored := *book
	s.books[book.ID] = &stored
	return nil
}

// Get retrieves a copy of the book with the given id.
// Returns ErrRecordNotFound if no book with that id exists.
func (s *MemoryStore) Get(id int64) (*Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	found := *book
	return &found, nil
}

// GetAll returns copies of every stored book in ascending id order.
func (s *MemoryStore) GetAll() ([]*Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*Book, 0, len(s.books))
	for _, book := range s.books {
		stored := *book
		books = append(books, &stored)
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].ID < books[j].ID
	})

	return books, nil
}
