package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Music is a song entity owning exactly one lyric, authored by the user
// who created it. Deleting a music takes its lyric, placements and
// comments with it.
type Music struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(40);not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:varchar(254);not null;uniqueIndex"`
	ReleaseDate time.Time `json:"release_date" gorm:"type:date"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Lyric       *Lyric    `json:"lyric" gorm:"foreignKey:MusicID;constraint:OnDelete:CASCADE"`
	CreatedByID uuid.UUID `json:"-" gorm:"type:uuid"`
	CreatedBy   *User     `json:"-" gorm:"foreignKey:CreatedByID"`
	Comments    []Comment `json:"-" gorm:"foreignKey:MusicID;constraint:OnDelete:CASCADE"`
}

func (Music) TableName() string {
	return "musics"
}

func (m *Music) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
