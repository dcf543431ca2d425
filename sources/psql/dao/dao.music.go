package dao

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chordbook/sources/psql/models"
)

type MusicDAO struct {
	DB *gorm.DB
}

func NewMusicDAO(db *gorm.DB) *MusicDAO {
	return &MusicDAO{DB: db}
}

func (dao *MusicDAO) GetAllPaged(ctx context.Context, page, size int) ([]models.Music, int64, error) {
	var total int64
	if err := dao.DB.WithContext(ctx).Model(&models.Music{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var musics []models.Music
	err := dao.DB.WithContext(ctx).
		Order("created_at").
		Offset(page * size).
		Limit(size).
		Find(&musics).Error
	if err != nil {
		return nil, 0, err
	}
	return musics, total, nil
}

// SearchByTitle pages over musics whose title contains the given
// fragment, case-insensitively.
func (dao *MusicDAO) SearchByTitle(ctx context.Context, title string, page, size int) ([]models.Music, int64, error) {
	pattern := "%" + strings.ToLower(title) + "%"
	base := dao.DB.WithContext(ctx).Model(&models.Music{}).Where("LOWER(title) LIKE ?", pattern)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var musics []models.Music
	err := dao.DB.WithContext(ctx).
		Where("LOWER(title) LIKE ?", pattern).
		Order("created_at").
		Offset(page * size).
		Limit(size).
		Find(&musics).Error
	if err != nil {
		return nil, 0, err
	}
	return musics, total, nil
}

// GetByID loads the full aggregate: lyric with placements in insertion
// order, the author, and the music's comments with their authors.
func (dao *MusicDAO) GetByID(ctx context.Context, id uuid.UUID) (*models.Music, error) {
	var music models.Music
	err := dao.DB.WithContext(ctx).
		Preload("Lyric.Chords", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("CreatedBy").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("Comments.Author").
		First(&music, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &music, nil
}

// Create persists the music together with its owned lyric and
// placements in one transaction.
func (dao *MusicDAO) Create(ctx context.Context, music *models.Music) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(music).Error
	})
}

// Save writes the music row itself; associations are managed through
// their own operations.
func (dao *MusicDAO) Save(ctx context.Context, music *models.Music) error {
	return dao.DB.WithContext(ctx).Omit(clause.Associations).Save(music).Error
}

func (dao *MusicDAO) SaveLyric(ctx context.Context, lyric *models.Lyric) error {
	return dao.DB.WithContext(ctx).Omit(clause.Associations).Save(lyric).Error
}

// ReplaceLyricChords clears the lyric's placements and re-attaches the
// given ones, preserving their order.
func (dao *MusicDAO) ReplaceLyricChords(ctx context.Context, lyricID uuid.UUID, placements []models.LyricChord) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lyric_id = ?", lyricID).Delete(&models.LyricChord{}).Error; err != nil {
			return err
		}
		for i := range placements {
			placements[i].LyricID = lyricID
		}
		if len(placements) == 0 {
			return nil
		}
		return tx.Create(&placements).Error
	})
}

// Delete removes the music and everything it owns. Children go first so
// the statement order never trips a foreign key, regardless of what the
// storage engine's cascade configuration happens to be.
func (dao *MusicDAO) Delete(ctx context.Context, id uuid.UUID) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// replies before their parents
		if err := tx.Where("music_id = ? AND parent_id IS NOT NULL", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("music_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lyric_id IN (?)",
			tx.Model(&models.Lyric{}).Select("id").Where("music_id = ?", id),
		).Delete(&models.LyricChord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("music_id = ?", id).Delete(&models.Lyric{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Music{}, "id = ?", id).Error
	})
}
