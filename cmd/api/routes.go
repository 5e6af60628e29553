// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the recoverPanic, rateLimit and logRequest middlewares.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → rateLimit → logRequest → router
//
// Current endpoints:
//
//	GET  /healthcheck – service availability and version
//	POST /books       – create a new book
//	GET  /books       – list all books
//	GET  /books/:id   – retrieve a single book by ID
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthcheckHandler)

	// Book routes
	router.HandlerFunc(http.MethodPost, "/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id", app.showBookHandler)

	// Wrap with middleware: recoverPanic is outermost so it catches panics
	// from rateLimit, logRequest and router alike.
	return app.recoverPanic(app.rateLimit(app.logRequest(router)))
}
