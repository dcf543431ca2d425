package controllers

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"chordbook/apierrors"
	"chordbook/sources/psql/dao"
	"chordbook/sources/psql/models"
	"chordbook/types"
)

type UserController struct {
	userDAO *dao.UserDAO
	roleDAO *dao.RoleDAO
}

func NewUserController(userDAO *dao.UserDAO, roleDAO *dao.RoleDAO) *UserController {
	return &UserController{userDAO: userDAO, roleDAO: roleDAO}
}

// Register creates a user with a hashed password. Without explicit
// roles the user becomes a client.
func (c *UserController) Register(ctx context.Context, req types.UserCreateRequest) (types.UserDTO, error) {
	if err := types.Validate(req); err != nil {
		return types.UserDTO{}, err
	}

	existing, err := c.userDAO.GetByEmail(ctx, req.Email)
	if err != nil {
		return types.UserDTO{}, err
	}
	if existing != nil {
		return types.UserDTO{}, apierrors.NewAlreadyExists("Email already in use, try another one.")
	}
	existing, err = c.userDAO.GetByUsername(ctx, req.Username)
	if err != nil {
		return types.UserDTO{}, err
	}
	if existing != nil {
		return types.UserDTO{}, apierrors.NewAlreadyExists("Username already in use, try another one.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return types.UserDTO{}, err
	}

	var roles []models.Role
	if len(req.Roles) == 0 {
		role, err := c.roleDAO.GetByAuthority(ctx, models.RoleClient)
		if err != nil {
			return types.UserDTO{}, err
		}
		if role == nil {
			return types.UserDTO{}, apierrors.NewNotFound("Role not found")
		}
		roles = append(roles, *role)
	} else {
		for _, r := range req.Roles {
			role, err := c.roleDAO.GetByID(ctx, r.ID)
			if err != nil {
				return types.UserDTO{}, err
			}
			if role == nil {
				return types.UserDTO{}, apierrors.NewNotFound("Role not found")
			}
			roles = append(roles, *role)
		}
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Roles:    roles,
	}
	if err := c.userDAO.Create(ctx, &user); err != nil {
		if dao.IsUniqueViolation(err) {
			return types.UserDTO{}, apierrors.NewAlreadyExists("User already exists")
		}
		return types.UserDTO{}, err
	}
	return types.NewUserDTO(&user), nil
}

// GetMe returns the authenticated user's profile.
func (c *UserController) GetMe(ctx context.Context, principal types.Principal) (types.UserDTO, error) {
	user, err := c.userDAO.GetByID(ctx, principal.ID)
	if err != nil {
		return types.UserDTO{}, err
	}
	if user == nil {
		return types.UserDTO{}, apierrors.NewNotFound("User not found")
	}
	return types.NewUserDTO(user), nil
}

func (c *UserController) FindByID(ctx context.Context, id string) (types.UserDTO, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return types.UserDTO{}, apierrors.NewNotFound("User not found")
	}
	user, err := c.userDAO.GetByID(ctx, userID)
	if err != nil {
		return types.UserDTO{}, err
	}
	if user == nil {
		return types.UserDTO{}, apierrors.NewNotFound("User not found")
	}
	return types.NewUserDTO(user), nil
}
