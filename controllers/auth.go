package controllers

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"chordbook/apierrors"
	"chordbook/config"
	"chordbook/sources/psql/dao"
	"chordbook/types"
)

type AuthController struct {
	userDAO *dao.UserDAO
	cfg     config.Config
}

func NewAuthController(userDAO *dao.UserDAO, cfg config.Config) *AuthController {
	return &AuthController{userDAO: userDAO, cfg: cfg}
}

// Login is the password grant: user credentials in, bearer token out.
func (c *AuthController) Login(ctx context.Context, email, password string) (types.TokenResponse, error) {
	user, err := c.userDAO.GetByEmail(ctx, email)
	if err != nil {
		return types.TokenResponse{}, err
	}
	if user == nil {
		return types.TokenResponse{}, apierrors.NewInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return types.TokenResponse{}, apierrors.NewInvalidCredentials()
	}

	authorities := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		authorities = append(authorities, r.Authority)
	}

	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"username":    user.Username,
		"authorities": authorities,
		"exp":         time.Now().Add(c.cfg.TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.cfg.JWTSecret))
	if err != nil {
		return types.TokenResponse{}, err
	}

	return types.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(c.cfg.TokenDuration.Seconds()),
	}, nil
}

// ValidateClient checks the HTTP Basic client credentials presented to
// the token endpoint.
func (c *AuthController) ValidateClient(clientID, clientSecret string) bool {
	idOK := subtle.ConstantTimeCompare([]byte(clientID), []byte(c.cfg.ClientID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(clientSecret), []byte(c.cfg.ClientSecret)) == 1
	return idOK && secretOK
}
