package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chordbook/apierrors"
	"chordbook/controllers"
	"chordbook/types"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, 0, err
		}
		token, err := ctrl.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			return nil, 0, err
		}
		return token, http.StatusOK, nil
	}))

	return r
}

// TokenRoutes is the OAuth2-style password grant endpoint: form-encoded
// user credentials authenticated alongside HTTP Basic client
// credentials.
func TokenRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()

	r.Post("/token", handleJSON(func(r *http.Request) (any, int, error) {
		clientID, clientSecret, ok := r.BasicAuth()
		if !ok || !ctrl.ValidateClient(clientID, clientSecret) {
			return nil, 0, apierrors.NewInvalidCredentials()
		}
		if err := r.ParseForm(); err != nil {
			return nil, 0, apierrors.NewBadRequest("Malformed form body")
		}
		if r.PostForm.Get("grant_type") != "password" {
			return nil, 0, apierrors.NewBadRequest("Unsupported grant type")
		}
		token, err := ctrl.Login(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
		if err != nil {
			return nil, 0, err
		}
		return token, http.StatusOK, nil
	}))

	return r
}
