package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore is a BookStore stub whose every operation fails, for
// exercising the service's error propagation.
type failingStore struct {
	err error
}

func (s failingStore) Insert(*Book) error       { return s.err }
func (s failingStore) Get(int64) (*Book, error) { return nil, s.err }
func (s failingStore) GetAll() ([]*Book, error) { return nil, s.err }

func TestCreateAssignsIDAndEchoesFields(t *testing.T) {
	service := NewBookService(NewMemoryStore())
	input := validBookInput()

	created, err := service.Create(input)
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, input.Title, created.Title)
	assert.Equal(t, input.Summary, created.Summary)
	assert.Equal(t, input.TableOfContents, created.TableOfContents)
	assert.Equal(t, *input.Price, created.Price)
	assert.Equal(t, *input.PageCount, created.PageCount)
	assert.Equal(t, input.ISBN, created.ISBN)
	assert.Equal(t, *input.PublicationDate, created.PublicationDate)
}

func TestListEmptyStore(t *testing.T) {
	service := NewBookService(NewMemoryStore())

	books, err := service.List()
	require.NoError(t, err)

	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestListReturnsCreatedBooksInOrder(t *testing.T) {
	service := NewBookService(NewMemoryStore())

	first, err := service.Create(validBookInput())
	require.NoError(t, err)

	second := validBookInput()
	second.Title = "Quarto de Despejo"
	secondCreated, err := service.Create(second)
	require.NoError(t, err)

	books, err := service.List()
	require.NoError(t, err)

	require.Len(t, books, 2)
	assert.Equal(t, first.ID, books[0].ID)
	assert.Equal(t, secondCreated.ID, books[1].ID)
	assert.Equal(t, "Quarto de Despejo", books[1].Title)
}

func TestGetByIDReturnsCreatedBook(t *testing.T) {
	service := NewBookService(NewMemoryStore())

	created, err := service.Create(validBookInput())
	require.NoError(t, err)

	found, err := service.GetByID(created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, found)
}

func TestGetByIDUnknownID(t *testing.T) {
	service := NewBookService(NewMemoryStore())

	_, err := service.GetByID(99)

	require.ErrorIs(t, err, ErrBookNotFound)
	assert.Equal(t, "Livro nao encontrado.", err.Error())
}

func TestServicePropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	service := NewBookService(failingStore{err: storeErr})

	_, err := service.Create(validBookInput())
	assert.ErrorIs(t, err, storeErr)

	_, err = service.List()
	assert.ErrorIs(t, err, storeErr)

	_, err = service.GetByID(1)
	assert.ErrorIs(t, err, storeErr)
}
