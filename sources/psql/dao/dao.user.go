package dao

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chordbook/sources/psql/models"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).
		Preload("Roles").
		Preload("Musics").
		First(&user, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).
		Preload("Roles").
		Preload("Musics").
		Where("email = ?", email).
		First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).
		Preload("Roles").
		Where("username = ?", username).
		First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) Create(ctx context.Context, user *models.User) error {
	return dao.DB.WithContext(ctx).Create(user).Error
}

type RoleDAO struct {
	DB *gorm.DB
}

func NewRoleDAO(db *gorm.DB) *RoleDAO {
	return &RoleDAO{DB: db}
}

func (dao *RoleDAO) GetByAuthority(ctx context.Context, authority string) (*models.Role, error) {
	var role models.Role
	err := dao.DB.WithContext(ctx).Where("authority = ?", authority).First(&role).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (dao *RoleDAO) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	var role models.Role
	err := dao.DB.WithContext(ctx).First(&role, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}
