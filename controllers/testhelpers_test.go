package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chordbook/sources/psql"
	"chordbook/sources/psql/dao"
	"chordbook/sources/psql/models"
	"chordbook/types"
)

// setupTestDB opens an isolated in-memory database with foreign keys
// enforced and the full schema migrated and seeded.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, psql.Migrate(ctx, db))
	require.NoError(t, psql.Seed(ctx, db, "../db/chords.csv"))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, authorities ...string) (models.User, types.Principal) {
	t.Helper()
	if len(authorities) == 0 {
		authorities = []string{models.RoleClient}
	}
	var roles []models.Role
	for _, a := range authorities {
		var role models.Role
		require.NoError(t, db.Where("authority = ?", a).First(&role).Error)
		roles = append(roles, role)
	}
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		Roles:    roles,
	}
	require.NoError(t, db.Create(&user).Error)
	return user, types.Principal{ID: user.ID, Username: username, Roles: authorities}
}

func createTestMusic(t *testing.T, ctrl *MusicController, principal types.Principal, title string, placements []types.LyricChordDTO) types.MusicDTO {
	t.Helper()
	date := types.NewDateOnly(mustDate(t, "2020-06-15"))
	dto, err := ctrl.Insert(context.Background(), types.MusicCreateRequest{
		Title:       title,
		Description: "description of " + title,
		ReleaseDate: &date,
		Lyric: &types.LyricDTO{
			Text:   "la la la",
			Chords: placements,
		},
	}, principal)
	require.NoError(t, err)
	return dto
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d := types.DateOnly{}
	require.NoError(t, d.UnmarshalJSON([]byte(`"`+s+`"`)))
	return d.Time
}

func newMusicController(db *gorm.DB) *MusicController {
	return NewMusicController(dao.NewMusicDAO(db), dao.NewChordDAO(db))
}

func newCommentController(db *gorm.DB) *CommentController {
	return NewCommentController(dao.NewCommentDAO(db), dao.NewMusicDAO(db))
}
