package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chordbook/controllers"
	"chordbook/types"
)

func NoteRoutes(ctrl *controllers.NoteController) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		notes, err := ctrl.FindAll(r.Context())
		if err != nil {
			return nil, 0, err
		}
		return notes, http.StatusOK, nil
	}))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.NoteCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, 0, err
		}
		note, err := ctrl.Insert(r.Context(), req)
		if err != nil {
			return nil, 0, err
		}
		return note, http.StatusCreated, nil
	}))

	return r
}
