package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/formfeed/formfeed/aggregate"
	"github.com/formfeed/formfeed/app"
	"github.com/formfeed/formfeed/httpx"
	"github.com/formfeed/formfeed/model"
	"github.com/formfeed/formfeed/routes/middlewares"
)

func CreateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, _ := middlewares.AdminID(r)

		var draft model.FormDraft
		if err := render.DecodeJSON(r.Body, &draft); err != nil {
			httpx.BadRequest(w, r, "create_form.parse_body")
			return
		}
		if err := draft.Validate(); err != nil {
			httpx.Error(w, r, "create_form.validate", err)
			return
		}

		form := model.NewForm(adminID, draft)
		if err := app.Store.CreateForm(r.Context(), &form); err != nil {
			httpx.Error(w, r, "create_form.insert", err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, form)
	}
}

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, _ := middlewares.AdminID(r)

		forms, err := app.Store.ListForms(r.Context(), adminID)
		if err != nil {
			httpx.Error(w, r, "list_forms.query", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"forms": forms,
		})
	}
}

func GetFormByID(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ownedForm(app, r)
		if err != nil {
			httpx.Error(w, r, "get_form", err)
			return
		}
		render.JSON(w, r, form)
	}
}

func UpdateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ownedForm(app, r)
		if err != nil {
			httpx.Error(w, r, "update_form", err)
			return
		}
		if !form.CanEditContent() {
			httpx.Error(w, r, "update_form.locked",
				model.Forbidden("cannot edit a form that already has responses"))
			return
		}

		var draft model.FormDraft
		if err := render.DecodeJSON(r.Body, &draft); err != nil {
			httpx.BadRequest(w, r, "update_form.parse_body")
			return
		}
		if err := draft.Validate(); err != nil {
			httpx.Error(w, r, "update_form.validate", err)
			return
		}

		form.Title = draft.Title
		form.Description = draft.Description
		form.Questions = draft.Questions
		if err := app.Store.UpdateFormContent(r.Context(), &form); err != nil {
			httpx.Error(w, r, "update_form.save", err)
			return
		}

		render.JSON(w, r, form)
	}
}

type statusRequest struct {
	Status model.FormStatus `json:"status"`
}

// SetFormStatus toggles open/closed. Unlike content edits, this is allowed
// regardless of how many responses exist.
func SetFormStatus(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ownedForm(app, r)
		if err != nil {
			httpx.Error(w, r, "set_form_status", err)
			return
		}

		var req statusRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			httpx.BadRequest(w, r, "set_form_status.parse_body")
			return
		}
		if !req.Status.Valid() {
			httpx.Error(w, r, "set_form_status.validate",
				model.Validation(fmt.Sprintf("status must be %q or %q", model.StatusOpen, model.StatusClosed)))
			return
		}

		if err := app.Store.SetFormStatus(r.Context(), form.ID, req.Status); err != nil {
			httpx.Error(w, r, "set_form_status.save", err)
			return
		}

		form.Status = req.Status
		render.JSON(w, r, form)
	}
}

func DeleteForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ownedForm(app, r)
		if err != nil {
			httpx.Error(w, r, "delete_form", err)
			return
		}

		if err := app.Store.DeleteForm(r.Context(), form.ID); err != nil {
			httpx.Error(w, r, "delete_form.delete", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListFormResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ownedForm(app, r)
		if err != nil {
			httpx.Error(w, r, "list_responses", err)
			return
		}

		responses, err := app.Store.ListResponses(r.Context(), form.ID)
		if err != nil {
			httpx.Error(w, r, "list_responses.query", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"responses": responses,
		})
	}
}

// FormResponseSummary serves both result views: full tallies for the table,
// zero-count-free tallies for charts, plus rating histograms.
func FormResponseSummary(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ownedForm(app, r)
		if err != nil {
			httpx.Error(w, r, "response_summary", err)
			return
		}

		responses, err := app.Store.ListResponses(r.Context(), form.ID)
		if err != nil {
			httpx.Error(w, r, "response_summary.query", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"responseCount": len(responses),
			"tallies":       aggregate.OptionTallies(form, responses),
			"charts":        aggregate.ChartTallies(form, responses),
			"histograms":    aggregate.RatingHistograms(form, responses),
		})
	}
}

func ExportFormResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ownedForm(app, r)
		if err != nil {
			httpx.Error(w, r, "export_responses", err)
			return
		}

		responses, err := app.Store.ListResponses(r.Context(), form.ID)
		if err != nil {
			httpx.Error(w, r, "export_responses.query", err)
			return
		}
		if len(responses) == 0 {
			httpx.Error(w, r, "export_responses.empty", model.NotFound("no responses to export"))
			return
		}

		csv, err := aggregate.ExportCSV(form, responses)
		if err != nil {
			httpx.Error(w, r, "export_responses.render", err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="form-%s-responses.csv"`, form.PublicToken))
		w.Write(csv)
	}
}

// ownedForm resolves the {id} route param and checks ownership: unknown id is
// not_found, a known id owned by someone else is forbidden.
func ownedForm(app app.App, r *http.Request) (model.Form, error) {
	form, err := app.Store.FormByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return form, err
	}

	adminID, _ := middlewares.AdminID(r)
	if !form.CanMutate(adminID) {
		return form, model.Forbidden("not authorized to access this form")
	}
	return form, nil
}
