package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/practico-app/practico-lambda/internal/auth"
	"github.com/practico-app/practico-lambda/internal/config"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

const tokenTTL = 24 * time.Hour

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var (
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrGoogleNotConfigured = errors.New("google login is not configured")
)

type AuthResult struct {
	Token string
	User  *User
}

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResult, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResult, error)
	GoogleLogin(ctx context.Context, code string) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo  UserRepository
	oauth *oauth2.Config
}

func NewService(repo UserRepository, oauth *oauth2.Config) UserService {
	return &userService{repo: repo, oauth: oauth}
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*AuthResult, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email during registration")
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:             uuid.New(),
		Name:           dto.Name,
		Email:          dto.Email,
		PasswordHash:   string(hash),
		Role:           "user",
		ExamPreference: dto.ExamPreference,
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.Infof("Registered new user %s", u.ID)
	return s.issueToken(u)
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*AuthResult, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email during login")
		return nil, err
	}
	if u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(u)
}

func (s *userService) GoogleLogin(ctx context.Context, code string) (*AuthResult, error) {
	log := config.WithContext(ctx)

	if s.oauth == nil {
		return nil, ErrGoogleNotConfigured
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google authorization code")
		return nil, err
	}

	info, err := s.fetchGoogleProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(info.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{
			ID:    uuid.New(),
			Name:  info.Name,
			Email: info.Email,
			Role:  "user",
		}
		if err := s.storeGoogleTokens(u, token); err != nil {
			return nil, err
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user from Google profile")
			return nil, err
		}
		log.Infof("Registered new user %s via Google", u.ID)
	} else {
		if err := s.storeGoogleTokens(u, token); err != nil {
			return nil, err
		}
		if err := s.repo.Save(u); err != nil {
			log.WithError(err).Error("Failed to update user Google tokens")
			return nil, err
		}
	}

	return s.issueToken(u)
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) issueToken(u *User) (*AuthResult, error) {
	token, err := auth.GenerateJWT(u.ID.String(), u.Role, tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

type googleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *userService) fetchGoogleProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	log := config.WithContext(ctx)

	client := s.oauth.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, err
	}
	defer resp.Body.Close()

	var info googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		log.WithError(err).Error("Failed to decode Google user info")
		return nil, err
	}
	if info.Email == "" {
		return nil, errors.New("google profile has no email")
	}
	return &info, nil
}

func (s *userService) storeGoogleTokens(u *User, token *oauth2.Token) error {
	access, err := config.Encrypt(token.AccessToken)
	if err != nil {
		return err
	}
	u.EncryptedGoogleAccessToken = access

	if token.RefreshToken != "" {
		refresh, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			return err
		}
		u.EncryptedGoogleRefreshToken = refresh
	}
	return nil
}
