// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and business services.
package main

import (
	"errors"
	"net/http"

	"github.com/Anamuratori/SC22-testesautom-livraria/internal/data"
	"github.com/Anamuratori/SC22-testesautom-livraria/internal/validator"
)

// createBookHandler handles POST /books.
// It reads a JSON body containing the new book's details, runs every field
// validation rule, persists the record, and responds with the created book
// (including its database-assigned id).
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.BookInput

	// Decode the incoming JSON body into our input struct using the safe readJSON helper.
	// readJSON enforces a 1MB limit, rejects unknown fields, and ensures a single value.
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Validation runs before anything touches storage: a rejected payload
	// never causes a partial write.
	v := validator.New()
	if data.ValidateBookInput(v, &input); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	book, err := app.services.Books.Create(&input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Respond with the fully-populated book, echoing every submitted field.
	err = app.writeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
// It fetches every book and returns them as a JSON array (empty array,
// never null, when the store holds no records).
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := app.services.Books.List()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, books, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:id.
// It parses the :id URL parameter and fetches the matching book.
// Responds 404 with the domain message if no book with that id exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	// readIDParam extracts and validates the :id URL parameter.
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	book, err := app.services.Books.GetByID(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrBookNotFound):
			// The message text is part of the API contract.
			app.notFoundMessageResponse(w, r, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
