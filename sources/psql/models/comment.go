package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a threaded remark on a music. Replies reference their
// parent without a delete cascade: removing a comment that still has
// replies violates the parent foreign key and surfaces as an integrity
// error. The music-level cascade is what clears whole threads.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Body      string    `json:"body" gorm:"type:varchar(280);not null;uniqueIndex"`
	Likes     int64     `json:"likes" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	AuthorID  uuid.UUID `json:"-" gorm:"type:uuid;not null"`
	Author    *User     `json:"-" gorm:"foreignKey:AuthorID"`
	MusicID   uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Music     *Music    `json:"-" gorm:"foreignKey:MusicID"`
	ParentID  *int64    `json:"parent_id" gorm:"index"`
	Replies   []Comment `json:"-" gorm:"foreignKey:ParentID"`
}

func (Comment) TableName() string {
	return "comments"
}
