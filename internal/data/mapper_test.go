package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookFromInputCopiesEveryField(t *testing.T) {
	input := validBookInput()

	book := BookFromInput(input)

	assert.Zero(t, book.ID, "id must stay unset until the store assigns it")
	assert.Equal(t, input.Title, book.Title)
	assert.Equal(t, input.Summary, book.Summary)
	assert.Equal(t, input.TableOfContents, book.TableOfContents)
	assert.Equal(t, *input.Price, book.Price)
	assert.Equal(t, *input.PageCount, book.PageCount)
	assert.Equal(t, input.ISBN, book.ISBN)
	assert.Equal(t, *input.PublicationDate, book.PublicationDate)
}

func TestMappingRoundTrip(t *testing.T) {
	// Mapping an input to an entity and back must reproduce every field,
	// with only the id differing (zero until persisted).
	input := validBookInput()

	output := OutputFromBook(BookFromInput(input))

	assert.Zero(t, output.ID)
	assert.Equal(t, input.Title, output.Title)
	assert.Equal(t, input.Summary, output.Summary)
	assert.Equal(t, input.TableOfContents, output.TableOfContents)
	assert.Equal(t, *input.Price, output.Price)
	assert.Equal(t, *input.PageCount, output.PageCount)
	assert.Equal(t, input.ISBN, output.ISBN)
	assert.Equal(t, *input.PublicationDate, output.PublicationDate)
}

func TestOutputFromBookIncludesAssignedID(t *testing.T) {
	book := BookFromInput(validBookInput())
	book.ID = 42

	output := OutputFromBook(book)

	assert.Equal(t, int64(42), output.ID)
}

func TestOutputsFromBooksPreservesOrder(t *testing.T) {
	first := BookFromInput(validBookInput())
	first.ID = 1
	second := BookFromInput(validBookInput())
	second.ID = 2
	second.Title = "Ponciá Vicêncio"

	outputs := OutputsFromBooks([]*Book{first, second})

	assert.Len(t, outputs, 2)
	assert.Equal(t, int64(1), outputs[0].ID)
	assert.Equal(t, int64(2), outputs[1].ID)
	assert.Equal(t, "Ponciá Vicêncio", outputs[1].Title)
}

func TestOutputsFromBooksEmptyInput(t *testing.T) {
	outputs := OutputsFromBooks(nil)

	assert.NotNil(t, outputs, "an empty listing must serialize as [], not null")
	assert.Empty(t, outputs)
}
