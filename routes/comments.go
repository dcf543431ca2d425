package routes

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"chordbook/apierrors"
	"chordbook/config"
	"chordbook/controllers"
	"chordbook/middlewares"
	"chordbook/sources/psql/models"
	"chordbook/types"
)

func CommentRoutes(ctrl *controllers.CommentController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		musicID, err := commentMusicIDParam(r)
		if err != nil {
			return nil, 0, err
		}
		page, size := pageParams(r)
		result, err := ctrl.FindAllPaged(r.Context(), musicID, page, size)
		if err != nil {
			return nil, 0, err
		}
		return result, http.StatusOK, nil
	}))

	r.Get("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := commentIDParam(r)
		if err != nil {
			return nil, 0, err
		}
		comment, err := ctrl.FindByID(r.Context(), id)
		if err != nil {
			return nil, 0, err
		}
		return comment, http.StatusOK, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))
		gr.Use(middlewares.RequireAnyRole(models.RoleAdmin, models.RoleClient))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			principal, err := principalFrom(r)
			if err != nil {
				return nil, 0, err
			}
			musicID, err := commentMusicIDParam(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.CommentCreateRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			comment, err := ctrl.Insert(r.Context(), musicID, req, principal)
			if err != nil {
				return nil, 0, err
			}
			return comment, http.StatusCreated, nil
		}))

		gr.Patch("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			principal, err := principalFrom(r)
			if err != nil {
				return nil, 0, err
			}
			id, err := commentIDParam(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.CommentPatchRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			comment, err := ctrl.Update(r.Context(), id, req, principal)
			if err != nil {
				return nil, 0, err
			}
			return comment, http.StatusOK, nil
		}))

		gr.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			principal, err := principalFrom(r)
			if err != nil {
				return nil, 0, err
			}
			id, err := commentIDParam(r)
			if err != nil {
				return nil, 0, err
			}
			if err := ctrl.Delete(r.Context(), id, principal); err != nil {
				return nil, 0, err
			}
			return nil, http.StatusNoContent, nil
		}))
	})

	return r
}

func commentMusicIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "musicId"))
	if err != nil {
		return uuid.Nil, apierrors.NewNotFound("Music not found")
	}
	return id, nil
}

func commentIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apierrors.NewNotFound("Comment not found")
	}
	return id, nil
}
