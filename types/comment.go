package types

import (
	"time"

	"chordbook/sources/psql/models"
)

type CommentCreateRequest struct {
	Body     string `json:"body" validate:"required,max=280"`
	ParentID *int64 `json:"parentId"`
}

type CommentPatchRequest struct {
	Body Optional[string] `json:"body"`
}

type CommentDTO struct {
	ID        int64        `json:"id"`
	Body      string       `json:"body"`
	Likes     int64        `json:"likes"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	ParentID  *int64       `json:"parentId"`
	Author    *UserMinDTO  `json:"author,omitempty"`
	Music     *MusicMinDTO `json:"music,omitempty"`
	Replies   []CommentDTO `json:"replies"`
}

func NewCommentDTO(c *models.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        c.ID,
		Body:      c.Body,
		Likes:     c.Likes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		ParentID:  c.ParentID,
		Replies:   []CommentDTO{},
	}
	if c.Author != nil {
		min := NewUserMinDTO(*c.Author)
		dto.Author = &min
	}
	if c.Music != nil {
		min := NewMusicMinDTO(c.Music)
		dto.Music = &min
	}
	for i := range c.Replies {
		dto.Replies = append(dto.Replies, NewCommentDTO(&c.Replies[i]))
	}
	return dto
}
