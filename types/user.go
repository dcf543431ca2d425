package types

import (
	"github.com/google/uuid"

	"chordbook/sources/psql/models"
)

type RoleDTO struct {
	ID        int64  `json:"id"`
	Authority string `json:"authority"`
}

type UserCreateRequest struct {
	Username string    `json:"username" validate:"required,min=3,max=40"`
	Email    string    `json:"email" validate:"required,email,min=5,max=254"`
	Password string    `json:"password" validate:"required,min=5"`
	Roles    []RoleDTO `json:"roles"`
}

type UserDTO struct {
	ID       uuid.UUID     `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Roles    []RoleDTO     `json:"roles"`
	Musics   []MusicMinDTO `json:"musics"`
}

type UserMinDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func NewUserDTO(u *models.User) UserDTO {
	dto := UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    []RoleDTO{},
		Musics:   []MusicMinDTO{},
	}
	for _, r := range u.Roles {
		dto.Roles = append(dto.Roles, RoleDTO{ID: r.ID, Authority: r.Authority})
	}
	for i := range u.Musics {
		dto.Musics = append(dto.Musics, NewMusicMinDTO(&u.Musics[i]))
	}
	return dto
}

func NewUserMinDTO(u models.User) UserMinDTO {
	return UserMinDTO{ID: u.ID, Username: u.Username, Email: u.Email}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
