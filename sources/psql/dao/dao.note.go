package dao

import (
	"context"

	"gorm.io/gorm"

	"chordbook/sources/psql/models"
)

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

func (dao *NoteDAO) GetAll(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	err := dao.DB.WithContext(ctx).Preload("Chords").Order("id").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (dao *NoteDAO) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	var note models.Note
	err := dao.DB.WithContext(ctx).First(&note, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (dao *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	return dao.DB.WithContext(ctx).Create(note).Error
}
