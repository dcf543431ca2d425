package controllers

import (
	"context"

	"chordbook/sources/psql/dao"
	"chordbook/sources/psql/models"
	"chordbook/types"
)

type NoteController struct {
	dao *dao.NoteDAO
}

func NewNoteController(noteDAO *dao.NoteDAO) *NoteController {
	return &NoteController{dao: noteDAO}
}

// FindAll returns the full catalog in insertion order.
func (c *NoteController) FindAll(ctx context.Context) ([]types.NoteDTO, error) {
	notes, err := c.dao.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]types.NoteDTO, 0, len(notes))
	for _, n := range notes {
		dtos = append(dtos, types.NewNoteDTO(n))
	}
	return dtos, nil
}

// Insert adds a catalog entry. Duplicate (name, accidental) pairs are
// allowed; only presence and enum membership are checked.
func (c *NoteController) Insert(ctx context.Context, req types.NoteCreateRequest) (types.NoteDTO, error) {
	if err := types.Validate(req); err != nil {
		return types.NoteDTO{}, err
	}
	note := models.Note{Name: req.Name, Accidental: req.Accidental}
	if err := c.dao.Create(ctx, &note); err != nil {
		return types.NoteDTO{}, err
	}
	return types.NewNoteDTO(note), nil
}
