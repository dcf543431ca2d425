package dao

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"chordbook/sources/psql/models"
)

type ChordDAO struct {
	DB *gorm.DB
}

func NewChordDAO(db *gorm.DB) *ChordDAO {
	return &ChordDAO{DB: db}
}

func (dao *ChordDAO) GetAllPaged(ctx context.Context, page, size int) ([]models.Chord, int64, error) {
	var total int64
	if err := dao.DB.WithContext(ctx).Model(&models.Chord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var chords []models.Chord
	err := dao.DB.WithContext(ctx).
		Preload("Notes").
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&chords).Error
	if err != nil {
		return nil, 0, err
	}
	return chords, total, nil
}

func (dao *ChordDAO) GetByID(ctx context.Context, id int64) (*models.Chord, error) {
	var chord models.Chord
	err := dao.DB.WithContext(ctx).Preload("Notes").First(&chord, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chord, nil
}

// SearchByNameAndNotes returns chords whose joined notes, restricted to
// the queried note names, count exactly len(noteNames) distinct note
// rows. This is a cardinality heuristic, not strict set equality:
// callers are expected to supply the full note set of the chord they
// are after. The name filter, when present, is a case-insensitive
// substring match.
func (dao *ChordDAO) SearchByNameAndNotes(ctx context.Context, name string, noteNames []string) ([]models.Chord, error) {
	var ids []int64
	q := dao.DB.WithContext(ctx).
		Model(&models.Chord{}).
		Select("chords.id").
		Joins("JOIN chord_notes cn ON cn.chord_id = chords.id").
		Joins("JOIN notes n ON n.id = cn.note_id").
		Where("n.name IN ?", noteNames).
		Group("chords.id").
		Having("COUNT(DISTINCT n.id) = ?", len(noteNames))
	if name != "" {
		q = q.Where("LOWER(chords.name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if err := q.Scan(&ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Chord{}, nil
	}

	var chords []models.Chord
	err := dao.DB.WithContext(ctx).
		Preload("Notes").
		Where("id IN ?", ids).
		Order("id").
		Find(&chords).Error
	if err != nil {
		return nil, err
	}
	return chords, nil
}

// SearchByNamePrefix matches chord names starting with the given
// prefix, case-insensitively.
func (dao *ChordDAO) SearchByNamePrefix(ctx context.Context, name string) ([]models.Chord, error) {
	var chords []models.Chord
	err := dao.DB.WithContext(ctx).
		Preload("Notes").
		Where("LOWER(name) LIKE ?", strings.ToLower(name)+"%").
		Order("id").
		Find(&chords).Error
	if err != nil {
		return nil, err
	}
	return chords, nil
}

func (dao *ChordDAO) Create(ctx context.Context, chord *models.Chord) error {
	return dao.DB.WithContext(ctx).Create(chord).Error
}
