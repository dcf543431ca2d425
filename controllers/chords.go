package controllers

import (
	"context"
	"fmt"

	"chordbook/apierrors"
	"chordbook/sources/psql/dao"
	"chordbook/sources/psql/models"
	"chordbook/types"
)

type ChordController struct {
	chordDAO *dao.ChordDAO
	noteDAO  *dao.NoteDAO
}

func NewChordController(chordDAO *dao.ChordDAO, noteDAO *dao.NoteDAO) *ChordController {
	return &ChordController{chordDAO: chordDAO, noteDAO: noteDAO}
}

func (c *ChordController) FindAllPaged(ctx context.Context, page, size int) (types.Page[types.ChordDTO], error) {
	chords, total, err := c.chordDAO.GetAllPaged(ctx, page, size)
	if err != nil {
		return types.Page[types.ChordDTO]{}, err
	}
	dtos := make([]types.ChordDTO, 0, len(chords))
	for _, chord := range chords {
		dtos = append(dtos, types.NewChordDTO(chord))
	}
	return types.NewPage(dtos, page, size, total), nil
}

// Search matches chords by note set, by name, or both. With a note set
// the match is by cardinality over the restricted join (callers supply
// the chord's full note-name set); without one the name is a prefix
// match. No filter at all yields an empty list.
func (c *ChordController) Search(ctx context.Context, name string, noteNames []string) ([]types.ChordDTO, error) {
	var (
		chords []models.Chord
		err    error
	)
	switch {
	case len(noteNames) > 0:
		chords, err = c.chordDAO.SearchByNameAndNotes(ctx, name, noteNames)
	case name != "":
		chords, err = c.chordDAO.SearchByNamePrefix(ctx, name)
	}
	if err != nil {
		return nil, err
	}
	dtos := make([]types.ChordDTO, 0, len(chords))
	for _, chord := range chords {
		dtos = append(dtos, types.NewChordDTO(chord))
	}
	return dtos, nil
}

// Insert creates a chord from at least three existing catalog notes.
func (c *ChordController) Insert(ctx context.Context, req types.ChordCreateRequest) (types.ChordDTO, error) {
	if err := types.Validate(req); err != nil {
		return types.ChordDTO{}, err
	}

	notes := make([]models.Note, 0, len(req.Notes))
	for _, ref := range req.Notes {
		note, err := c.noteDAO.GetByID(ctx, ref.ID)
		if err != nil {
			return types.ChordDTO{}, err
		}
		if note == nil {
			return types.ChordDTO{}, apierrors.NewNotFound(fmt.Sprintf("Note not found: %d", ref.ID))
		}
		notes = append(notes, *note)
	}

	chord := models.Chord{Name: req.Name, Type: req.Type, Notes: notes}
	if err := c.chordDAO.Create(ctx, &chord); err != nil {
		return types.ChordDTO{}, err
	}
	return types.NewChordDTO(chord), nil
}
