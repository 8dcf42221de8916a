package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/formfeed/formfeed/app"
	"github.com/formfeed/formfeed/httpx"
	"github.com/formfeed/formfeed/model"
)

func PublicGetForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := app.Store.FormByToken(r.Context(), chi.URLParam(r, "token"))
		if err != nil {
			httpx.Error(w, r, "public_form.lookup", err)
			return
		}
		if !form.IsOpenForSubmission() {
			httpx.Error(w, r, "public_form.closed", model.ForbiddenClosed())
			return
		}

		render.JSON(w, r, form.PublicView())
	}
}

type submissionRequest struct {
	Answers []model.AnswerInput `json:"answers"`
}

func PublicSubmitResponse(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submissionRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			httpx.BadRequest(w, r, "submit.parse_body")
			return
		}
		if len(req.Answers) == 0 {
			httpx.Error(w, r, "submit.empty", model.Validation("provide answers to the questions"))
			return
		}

		form, err := app.Store.FormByToken(r.Context(), chi.URLParam(r, "token"))
		if err != nil {
			httpx.Error(w, r, "submit.lookup", err)
			return
		}
		if !form.IsOpenForSubmission() {
			httpx.Error(w, r, "submit.closed", model.ForbiddenClosed())
			return
		}

		answers, err := model.BuildAnswers(form.Questions, req.Answers)
		if err != nil {
			httpx.Error(w, r, "submit.validate", err)
			return
		}

		resp := model.NewResponse(form.ID, answers)
		if err := app.Store.InsertResponse(r.Context(), resp); err != nil {
			httpx.Error(w, r, "submit.insert", err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": resp.ID,
		})
	}
}
