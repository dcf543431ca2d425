package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lyric is the text of a music plus its ordered chord placements.
// Exactly one lyric exists per music and is deleted with it.
type Lyric struct {
	ID      uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Text    string       `json:"text" gorm:"type:text"`
	MusicID uuid.UUID    `json:"-" gorm:"type:uuid;not null;uniqueIndex"`
	Chords  []LyricChord `json:"chords" gorm:"foreignKey:LyricID;constraint:OnDelete:CASCADE"`
}

func (Lyric) TableName() string {
	return "lyrics"
}

func (l *Lyric) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// LyricChord overlays one chord onto the lyric text at a character
// offset. The surrogate id keeps insertion order; position is stored as
// given and never checked against the text length.
type LyricChord struct {
	ID       int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	LyricID  uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	ChordID  int64     `json:"chordId" gorm:"not null"`
	Chord    *Chord    `json:"-" gorm:"foreignKey:ChordID"`
	Position int       `json:"position" gorm:"not null"`
}

func (LyricChord) TableName() string {
	return "lyric_chords"
}
