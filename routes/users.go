package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chordbook/config"
	"chordbook/controllers"
	"chordbook/middlewares"
	"chordbook/types"
)

func UserRoutes(ctrl *controllers.UserController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.UserCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, 0, err
		}
		user, err := ctrl.Register(r.Context(), req)
		if err != nil {
			return nil, 0, err
		}
		return user, http.StatusCreated, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/me", handleJSON(func(r *http.Request) (any, int, error) {
			principal, err := principalFrom(r)
			if err != nil {
				return nil, 0, err
			}
			user, err := ctrl.GetMe(r.Context(), principal)
			if err != nil {
				return nil, 0, err
			}
			return user, http.StatusOK, nil
		}))
	})

	r.Get("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		user, err := ctrl.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			return nil, 0, err
		}
		return user, http.StatusOK, nil
	}))

	return r
}
