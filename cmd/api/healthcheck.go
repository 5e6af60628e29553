// cmd/api/healthcheck.go
package main

import "net/http"

// healthcheckHandler handles GET /healthcheck.
// It reports service availability along with the running environment and
// version, for load balancers and smoke tests.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	status := envelope{
		"status":      "available",
		"environment": app.config.Environment,
		"version":     appVersion,
	}

	err := app.writeJSON(w, http.StatusOK, status, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
