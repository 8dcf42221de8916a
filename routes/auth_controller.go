package routes

import (
	"net/http"

	"github.com/go-chi/jwtauth"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/formfeed/formfeed/app"
	"github.com/formfeed/formfeed/httpx"
	"github.com/formfeed/formfeed/model"
	"github.com/formfeed/formfeed/routes/middlewares"
)

var validate = validator.New()

type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type authResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func RegisterAdmin(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentialsRequest
		if err := render.DecodeJSON(r.Body, &creds); err != nil {
			httpx.BadRequest(w, r, "register.parse_body")
			return
		}
		if err := validate.Struct(creds); err != nil {
			httpx.Error(w, r, "register.validate", model.Validation("username (min 3) and password (min 6) are required"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
		if err != nil {
			httpx.Error(w, r, "register.hash", err)
			return
		}

		admin := model.NewAdmin(creds.Username, string(hash))
		if err := app.CreateAdmin(r.Context(), admin); err != nil {
			httpx.Error(w, r, "register.insert", err)
			return
		}

		token, err := issueToken(app, admin.ID)
		if err != nil {
			httpx.Error(w, r, "register.token", err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, authResponse{ID: admin.ID, Username: admin.Username, Token: token})
	}
}

func LoginAdmin(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentialsRequest
		if err := render.DecodeJSON(r.Body, &creds); err != nil {
			httpx.BadRequest(w, r, "login.parse_body")
			return
		}

		// same generic failure for unknown user and bad password
		admin, err := app.AdminByUsername(r.Context(), creds.Username)
		if err != nil {
			httpx.Unauthorized(w, r, "login.lookup", "invalid username or password")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(creds.Password)) != nil {
			httpx.Unauthorized(w, r, "login.password", "invalid username or password")
			return
		}

		token, err := issueToken(app, admin.ID)
		if err != nil {
			httpx.Error(w, r, "login.token", err)
			return
		}

		render.JSON(w, r, authResponse{ID: admin.ID, Username: admin.Username, Token: token})
	}
}

func CurrentAdmin(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, _ := middlewares.AdminID(r)
		admin, err := app.AdminByID(r.Context(), adminID)
		if err != nil {
			httpx.Error(w, r, "me.lookup", err)
			return
		}
		render.JSON(w, r, admin)
	}
}

func issueToken(app app.App, adminID string) (string, error) {
	claims := map[string]any{"adminId": adminID}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, app.TokenTTL)
	_, token, err := app.Encode(claims)
	return token, err
}
