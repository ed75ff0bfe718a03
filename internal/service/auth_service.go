package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GoogleLoginURL(state string) string
	GoogleLogin(ctx context.Context, code string) (string, *models.User, error)
	Me(ctx context.Context, id uint) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	oauth     *oauth2.Config
}

// NewAuthService builds the auth service. oauth may be nil when Google
// login is not configured; the OAuth endpoints then fail cleanly.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, oauth *oauth2.Config) AuthService {
	return &authService{userRepo: userRepo, jwtSecret: jwtSecret, oauth: oauth}
}

func (s *authService) Register(ctx context.Context, email, password, name string) (string, *models.User, error) {
	fields := fieldErrors{}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		fields["email"] = "email is required"
	}
	if len(password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if err := fields.err(); err != nil {
		return "", nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	user := &models.User{Email: email, PasswordHash: &hashStr, Name: strings.TrimSpace(name)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := GenerateToken(s.jwtSecret, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	// OAuth-only accounts carry no hash and cannot log in with a password.
	if user.PasswordHash == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.jwtSecret, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) GoogleLoginURL(state string) string {
	if s.oauth == nil {
		return ""
	}
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *authService) GoogleLogin(ctx context.Context, code string) (string, *models.User, error) {
	if s.oauth == nil {
		return "", nil, ErrInvalidCredentials
	}

	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	resp, err := s.oauth.Client(ctx, tok).Get(googleUserinfoURL)
	if err != nil {
		return "", nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	var info struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Email == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(info.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First OAuth login registers the account, without a password hash.
		user = &models.User{Email: strings.ToLower(info.Email), Name: info.Name, AvatarURL: info.Picture}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return "", nil, err
		}
	} else if err != nil {
		return "", nil, err
	}

	token, err := GenerateToken(s.jwtSecret, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) Me(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}
