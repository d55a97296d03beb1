package userapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"emojifeed/internal/core/apperr"
	userEntity "emojifeed/internal/core/user"
	userPort "emojifeed/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer is the JWT issuer claim.
const TokenIssuer = "emojifeed"

const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned by LoginUser for any unknown user or
// wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUsernameTaken is returned by RegisterUser when the handle exists,
// including when a concurrent registration wins the unique index.
var ErrUsernameTaken = userEntity.ErrUsernameTaken

type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	now            func() time.Time
	logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		now:            time.Now,
		logger:         logger,
	}
}

// LoginUser checks the password and issues a JWT whose subject is the user id.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if apperr.Is(err, apperr.CodeNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Info("Login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	expiresAt := s.now().Add(tokenTTL)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		s.logger.Error("❌ Error generating JWT", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    TokenIssuer,
		IssuedAt:  s.now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// RegisterUser creates a user with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, username, profileImageURL, password string) (*userPort.IdentityDTO, error) {
	existing, err := s.UserRepository.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}
	if err != nil && !apperr.Is(err, apperr.CodeNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		ID:              uuid.Must(uuid.NewV4()),
		Username:        username,
		ProfileImageURL: profileImageURL,
		Password:        string(hashedPassword),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("✅ Registered user", zap.String("userID", u.ID.String()), zap.String("username", u.Username))
	return userPort.ToIdentityDTO(u.Identity()), nil
}

// GetProfileByUsername returns the public identity for a handle. A leading
// "@" is ignored.
func (s *UserService) GetProfileByUsername(ctx context.Context, username string) (*userPort.IdentityDTO, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return nil, apperr.NotFound("user", username)
	}
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return userPort.ToIdentityDTO(u.Identity()), nil
}
