package types

import (
	"time"

	"github.com/google/uuid"

	"chordbook/sources/psql/models"
)

type LyricChordDTO struct {
	ChordID  int64 `json:"chordId"`
	Position int   `json:"position"`
}

type LyricDTO struct {
	Text   string          `json:"text"`
	Chords []LyricChordDTO `json:"chords"`
}

func NewLyricDTO(l *models.Lyric) LyricDTO {
	dto := LyricDTO{Chords: []LyricChordDTO{}}
	if l == nil {
		return dto
	}
	dto.Text = l.Text
	for _, lc := range l.Chords {
		dto.Chords = append(dto.Chords, LyricChordDTO{ChordID: lc.ChordID, Position: lc.Position})
	}
	return dto
}

type MusicCreateRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	ReleaseDate *DateOnly `json:"releaseDate" validate:"required"`
	Lyric       *LyricDTO `json:"lyric" validate:"required"`
}

// MusicPatchRequest carries presence-tracked fields: omitted keys stay
// untouched, supplied ones are applied. A lyric patch distinguishes an
// omitted chords key (keep placements) from an explicit empty list
// (clear them).
type MusicPatchRequest struct {
	Title       Optional[string]            `json:"title"`
	Description Optional[string]            `json:"description"`
	ReleaseDate Optional[DateOnly]          `json:"releaseDate"`
	Lyric       Optional[LyricPatchRequest] `json:"lyric"`
}

type LyricPatchRequest struct {
	Text   Optional[string]          `json:"text"`
	Chords Optional[[]LyricChordDTO] `json:"chords"`
}

type MusicDTO struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ReleaseDate DateOnly     `json:"releaseDate"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Lyric       LyricDTO     `json:"lyric"`
	CreatedBy   *UserMinDTO  `json:"createdBy,omitempty"`
	Comments    []CommentDTO `json:"comments"`
}

type MusicMinDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReleaseDate DateOnly  `json:"releaseDate"`
}

func NewMusicDTO(m *models.Music) MusicDTO {
	dto := MusicDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: NewDateOnly(m.ReleaseDate),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Lyric:       NewLyricDTO(m.Lyric),
		Comments:    []CommentDTO{},
	}
	if m.CreatedBy != nil {
		min := NewUserMinDTO(*m.CreatedBy)
		dto.CreatedBy = &min
	}
	for _, c := range m.Comments {
		dto.Comments = append(dto.Comments, NewCommentDTO(&c))
	}
	return dto
}

func NewMusicMinDTO(m *models.Music) MusicMinDTO {
	return MusicMinDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: NewDateOnly(m.ReleaseDate),
	}
}
