package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/formfeed/formfeed/app"
	"github.com/formfeed/formfeed/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/auth/register", RegisterAdmin(app))
	api.Post("/auth/login", LoginAdmin(app))

	// anonymous access by public token
	api.Get("/forms/public/{token}", PublicGetForm(app))
	api.Post("/forms/public/{token}/responses", PublicSubmitResponse(app))

	api.Group(func(r chi.Router) {
		r.Use(middlewares.Admin(app.JWTAuth))

		r.Get("/auth/me", CurrentAdmin(app))

		// CRUD forms
		r.Post("/forms", CreateForm(app))
		r.Get("/forms", ListForms(app))
		r.Get("/forms/{id}", GetFormByID(app))
		r.Put("/forms/{id}", UpdateForm(app))
		r.Patch("/forms/{id}/status", SetFormStatus(app))
		r.Delete("/forms/{id}", DeleteForm(app))

		r.Get("/forms/{id}/responses", ListFormResponses(app))
		r.Get("/forms/{id}/responses/summary", FormResponseSummary(app))
		r.Get("/forms/{id}/responses/export", ExportFormResponses(app))
	})

	return api
}
