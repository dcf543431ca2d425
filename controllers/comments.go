package controllers

import (
	"context"

	"github.com/google/uuid"

	"chordbook/apierrors"
	"chordbook/sources/psql/dao"
	"chordbook/sources/psql/models"
	"chordbook/types"
)

type CommentController struct {
	commentDAO *dao.CommentDAO
	musicDAO   *dao.MusicDAO
}

func NewCommentController(commentDAO *dao.CommentDAO, musicDAO *dao.MusicDAO) *CommentController {
	return &CommentController{commentDAO: commentDAO, musicDAO: musicDAO}
}

func (c *CommentController) FindAllPaged(ctx context.Context, musicID uuid.UUID, page, size int) (types.Page[types.CommentDTO], error) {
	music, err := c.musicDAO.GetByID(ctx, musicID)
	if err != nil {
		return types.Page[types.CommentDTO]{}, err
	}
	if music == nil {
		return types.Page[types.CommentDTO]{}, apierrors.NewNotFound("Music not found")
	}

	comments, total, err := c.commentDAO.GetAllPagedByMusic(ctx, musicID, page, size)
	if err != nil {
		return types.Page[types.CommentDTO]{}, err
	}
	dtos := make([]types.CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, types.NewCommentDTO(&comments[i]))
	}
	return types.NewPage(dtos, page, size, total), nil
}

func (c *CommentController) FindByID(ctx context.Context, id int64) (types.CommentDTO, error) {
	comment, err := c.commentDAO.GetByID(ctx, id)
	if err != nil {
		return types.CommentDTO{}, err
	}
	if comment == nil {
		return types.CommentDTO{}, apierrors.NewNotFound("Comment not found")
	}
	return types.NewCommentDTO(comment), nil
}

// Insert creates a comment on a music; with a parentId it becomes a
// reply on that comment's thread.
func (c *CommentController) Insert(ctx context.Context, musicID uuid.UUID, req types.CommentCreateRequest, principal types.Principal) (types.CommentDTO, error) {
	if err := types.Validate(req); err != nil {
		return types.CommentDTO{}, err
	}

	music, err := c.musicDAO.GetByID(ctx, musicID)
	if err != nil {
		return types.CommentDTO{}, err
	}
	if music == nil {
		return types.CommentDTO{}, apierrors.NewNotFound("Music not found")
	}

	comment := models.Comment{
		Body:     req.Body,
		MusicID:  musicID,
		AuthorID: principal.ID,
	}

	if req.ParentID != nil {
		parent, err := c.commentDAO.GetByID(ctx, *req.ParentID)
		if err != nil {
			return types.CommentDTO{}, err
		}
		if parent == nil {
			return types.CommentDTO{}, apierrors.NewNotFound("Parent comment not found")
		}
		comment.ParentID = &parent.ID
	}

	if err := c.commentDAO.Create(ctx, &comment); err != nil {
		if dao.IsUniqueViolation(err) || dao.IsForeignKeyViolation(err) {
			return types.CommentDTO{}, apierrors.NewDatabase("Referential integrity error")
		}
		return types.CommentDTO{}, err
	}

	created, err := c.commentDAO.GetByID(ctx, comment.ID)
	if err != nil {
		return types.CommentDTO{}, err
	}
	return types.NewCommentDTO(created), nil
}

// Update patches the body only; author or admin.
func (c *CommentController) Update(ctx context.Context, id int64, req types.CommentPatchRequest, principal types.Principal) (types.CommentDTO, error) {
	comment, err := c.commentDAO.GetByID(ctx, id)
	if err != nil {
		return types.CommentDTO{}, err
	}
	if comment == nil {
		return types.CommentDTO{}, apierrors.NewNotFound("Comment not found")
	}
	if err := checkOwnerOrAdmin(principal, comment.AuthorID); err != nil {
		return types.CommentDTO{}, err
	}

	if req.Body.Present {
		comment.Body = req.Body.Value
	}
	if err := c.commentDAO.Save(ctx, comment); err != nil {
		if dao.IsUniqueViolation(err) {
			return types.CommentDTO{}, apierrors.NewDatabase("Referential integrity error")
		}
		return types.CommentDTO{}, err
	}

	updated, err := c.commentDAO.GetByID(ctx, id)
	if err != nil {
		return types.CommentDTO{}, err
	}
	return types.NewCommentDTO(updated), nil
}

// Delete removes a comment; one that still has replies trips the
// parent foreign key and is reported as an integrity violation.
func (c *CommentController) Delete(ctx context.Context, id int64, principal types.Principal) error {
	comment, err := c.commentDAO.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return apierrors.NewNotFound("Comment not found")
	}
	if err := checkOwnerOrAdmin(principal, comment.AuthorID); err != nil {
		return err
	}
	if err := c.commentDAO.Delete(ctx, id); err != nil {
		if dao.IsForeignKeyViolation(err) {
			return apierrors.NewDatabase("Referential integrity error")
		}
		return err
	}
	return nil
}
