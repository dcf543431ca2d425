package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"chordbook/apierrors"
	"chordbook/config"
	"chordbook/controllers"
	"chordbook/middlewares"
	"chordbook/sources/psql/models"
	"chordbook/types"
)

func MusicRoutes(ctrl *controllers.MusicController, commentCtrl *controllers.CommentController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		page, size := pageParams(r)
		name := r.URL.Query().Get("name")
		result, err := ctrl.FindAllPaged(r.Context(), name, page, size)
		if err != nil {
			return nil, 0, err
		}
		return result, http.StatusOK, nil
	}))

	r.Get("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		music, err := ctrl.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			return nil, 0, err
		}
		return music, http.StatusOK, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))
		gr.Use(middlewares.RequireAnyRole(models.RoleAdmin, models.RoleClient))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			principal, err := principalFrom(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.MusicCreateRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			music, err := ctrl.Insert(r.Context(), req, principal)
			if err != nil {
				return nil, 0, err
			}
			return music, http.StatusCreated, nil
		}))

		gr.Patch("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			principal, err := principalFrom(r)
			if err != nil {
				return nil, 0, err
			}
			id, err := musicIDParam(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.MusicPatchRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			music, err := ctrl.Update(r.Context(), id, req, principal)
			if err != nil {
				return nil, 0, err
			}
			return music, http.StatusOK, nil
		}))

		gr.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			principal, err := principalFrom(r)
			if err != nil {
				return nil, 0, err
			}
			id, err := musicIDParam(r)
			if err != nil {
				return nil, 0, err
			}
			if err := ctrl.Delete(r.Context(), id, principal); err != nil {
				return nil, 0, err
			}
			return nil, http.StatusNoContent, nil
		}))
	})

	r.Mount("/{musicId}/comments", CommentRoutes(commentCtrl, cfg))

	return r
}

func musicIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apierrors.NewNotFound("Music not found")
	}
	return id, nil
}
