package types

import "chordbook/sources/psql/models"

type NoteCreateRequest struct {
	Name       string `json:"name" validate:"required,oneof=C D E F G A B"`
	Accidental string `json:"accidental" validate:"required,oneof=NATURAL SHARP FLAT"`
}

type NoteDTO struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Accidental string        `json:"accidental"`
	Chords     []ChordRefDTO `json:"chords"`
}

// NoteMinDTO is the note shape nested inside a chord, without the
// chord back-reference.
type NoteMinDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Accidental string `json:"accidental"`
}

type ChordRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func NewNoteDTO(n models.Note) NoteDTO {
	chords := make([]ChordRefDTO, 0, len(n.Chords))
	for _, c := range n.Chords {
		chords = append(chords, ChordRefDTO{ID: c.ID, Name: c.Name, Type: c.Type})
	}
	return NoteDTO{
		ID:         n.ID,
		Name:       n.Name,
		Accidental: n.Accidental,
		Chords:     chords,
	}
}

func NewNoteMinDTO(n models.Note) NoteMinDTO {
	return NoteMinDTO{ID: n.ID, Name: n.Name, Accidental: n.Accidental}
}
