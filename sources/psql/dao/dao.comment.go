package dao

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chordbook/sources/psql/models"
)

type CommentDAO struct {
	DB *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{DB: db}
}

// GetAllPagedByMusic pages over a music's top-level comments; replies
// are loaded recursively onto each.
func (dao *CommentDAO) GetAllPagedByMusic(ctx context.Context, musicID uuid.UUID, page, size int) ([]models.Comment, int64, error) {
	var total int64
	err := dao.DB.WithContext(ctx).
		Model(&models.Comment{}).
		Where("music_id = ? AND parent_id IS NULL", musicID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err = dao.DB.WithContext(ctx).
		Preload("Author").
		Preload("Music").
		Where("music_id = ? AND parent_id IS NULL", musicID).
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	for i := range comments {
		if err := dao.LoadReplies(ctx, &comments[i]); err != nil {
			return nil, 0, err
		}
	}
	return comments, total, nil
}

func (dao *CommentDAO) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := dao.DB.WithContext(ctx).
		Preload("Author").
		Preload("Music").
		First(&comment, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := dao.LoadReplies(ctx, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// LoadReplies fills comment.Replies depth-first in id order.
func (dao *CommentDAO) LoadReplies(ctx context.Context, comment *models.Comment) error {
	var replies []models.Comment
	err := dao.DB.WithContext(ctx).
		Preload("Author").
		Preload("Music").
		Where("parent_id = ?", comment.ID).
		Order("id").
		Find(&replies).Error
	if err != nil {
		return err
	}
	for i := range replies {
		if err := dao.LoadReplies(ctx, &replies[i]); err != nil {
			return err
		}
	}
	comment.Replies = replies
	return nil
}

func (dao *CommentDAO) Create(ctx context.Context, comment *models.Comment) error {
	return dao.DB.WithContext(ctx).Create(comment).Error
}

func (dao *CommentDAO) Save(ctx context.Context, comment *models.Comment) error {
	return dao.DB.WithContext(ctx).Omit(clause.Associations).Save(comment).Error
}

// Delete removes a single comment. A comment still referenced by
// replies fails the parent foreign key; the raw error is returned for
// the caller to classify.
func (dao *CommentDAO) Delete(ctx context.Context, id int64) error {
	return dao.DB.WithContext(ctx).Delete(&models.Comment{}, id).Error
}
