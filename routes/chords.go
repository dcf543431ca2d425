package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"chordbook/controllers"
	"chordbook/types"
)

func ChordRoutes(ctrl *controllers.ChordController) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		page, size := pageParams(r)
		result, err := ctrl.FindAllPaged(r.Context(), page, size)
		if err != nil {
			return nil, 0, err
		}
		return result, http.StatusOK, nil
	}))

	r.Get("/search", handleJSON(func(r *http.Request) (any, int, error) {
		name := r.URL.Query().Get("name")
		notes := noteNamesParam(r)
		result, err := ctrl.Search(r.Context(), name, notes)
		if err != nil {
			return nil, 0, err
		}
		return result, http.StatusOK, nil
	}))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.ChordCreateRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, 0, err
		}
		chord, err := ctrl.Insert(r.Context(), req)
		if err != nil {
			return nil, 0, err
		}
		return chord, http.StatusCreated, nil
	}))

	return r
}

// noteNamesParam accepts both repeated notes params and a single
// comma-separated value.
func noteNamesParam(r *http.Request) []string {
	var notes []string
	for _, raw := range r.URL.Query()["notes"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				notes = append(notes, part)
			}
		}
	}
	return notes
}
