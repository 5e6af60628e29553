package data

import "github.com/samber/lo"

// BookFromInput copies every field of a validated input verbatim into a new
// Book entity. The id is left unset; the store assigns it on insert.
// The input must already have passed ValidateBookInput, so the pointer
// fields are guaranteed non-nil here.
func BookFromInput(input *BookInput) *Book {
	return &Book{
		Title:           input.Title,
		Summary:         input.Summary,
		TableOfContents: input.TableOfContents,
		Price:           *input.Price,
		PageCount:       *input.PageCount,
		ISBN:            input.ISBN,
		PublicationDate: *input.PublicationDate,
	}
}

// OutputFromBook copies every entity field verbatim, including the assigned
// id, into a new wire representation. No fields are derived or computed.
func OutputFromBook(book *Book) *BookOutput {
	return &BookOutput{
		ID:              book.ID,
		Title:           book.Title,
		Summary:         book.Summary,
		TableOfContents: book.TableOfContents,
		Price:           book.Price,
		PageCount:       book.PageCount,
		ISBN:            book.ISBN,
		PublicationDate: book.PublicationDate,
	}
}

// OutputsFromBooks applies OutputFromBook element-wise, preserving order.
// Empty input yields an empty (non-nil) slice so list responses serialize
// as [] rather than null.
func OutputsFromBooks(books []*Book) []*BookOutput {
	return lo.Map(books, func(book *Book, _ int) *BookOutput {
		return OutputFromBook(book)
	})
}
