package types

import "chordbook/sources/psql/models"

type NoteRef struct {
	ID int64 `json:"id" validate:"required"`
}

type ChordCreateRequest struct {
	Name  string    `json:"name" validate:"required"`
	Type  string    `json:"type" validate:"required,oneof=MAJOR MINOR DIMINISHED AUGMENTED SUSPENDED SEVENTH"`
	Notes []NoteRef `json:"notes" validate:"required,min=3,dive"`
}

type ChordDTO struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Type  string       `json:"type"`
	Notes []NoteMinDTO `json:"notes"`
}

func NewChordDTO(c models.Chord) ChordDTO {
	notes := make([]NoteMinDTO, 0, len(c.Notes))
	for _, n := range c.Notes {
		notes = append(notes, NewNoteMinDTO(n))
	}
	return ChordDTO{
		ID:    c.ID,
		Name:  c.Name,
		Type:  c.Type,
		Notes: notes,
	}
}
