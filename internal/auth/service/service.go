package service

import (
	"context"
	"time"

	"calldex_backend/internal/auth/password"
	"calldex_backend/internal/auth/repository"
	"calldex_backend/internal/auth/transport"
	"calldex_backend/platform/apperr"
	"calldex_backend/platform/config"
	"calldex_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	msgRegistered         = "User registered successfully"
	msgLoginOK            = "Login successful"
	msgInvalidCredentials = "Invalid credentials"
)

// Service provides registration, login, and token issuance.
type Service struct {
	repo repository.Repository
	cfg  config.AuthServiceConfig
	log  *logger.Logger
}

// New creates a new auth service.
func New(repo repository.Repository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

// Register creates a new account and returns it with an access token.
// A phone number that is already registered surfaces as a Conflict error.
func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) (transport.AuthResponse, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return transport.AuthResponse{}, apperr.Wrap(apperr.KindInternal, "password hashing failed", err)
	}

	user, err := s.repo.Create(ctx, repository.CreateParams{
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		s.log.AuthEvent("register", req.PhoneNumber, false, err.Error())
		return transport.AuthResponse{}, err
	}

	token, err := s.issueAccessToken(user.ID)
	if err != nil {
		return transport.AuthResponse{}, apperr.Wrap(apperr.KindInternal, "token issuance failed", err)
	}

	s.log.AuthEvent("register", user.PhoneNumber, true, "")
	return transport.AuthResponse{
		Message: msgRegistered,
		User:    toUserResponse(user, true),
		Token:   token,
	}, nil
}

// Login verifies credentials and returns the account with an access token.
// Unknown numbers and wrong passwords both return the same Unauthorized
// error so the response does not reveal which part failed.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.AuthResponse, error) {
	user, err := s.repo.GetByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			s.log.AuthEvent("login", req.PhoneNumber, false, "unknown phone number")
			return transport.AuthResponse{}, apperr.Unauthorized(msgInvalidCredentials)
		}
		return transport.AuthResponse{}, err
	}

	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		s.log.AuthEvent("login", req.PhoneNumber, false, "wrong password")
		return transport.AuthResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.issueAccessToken(user.ID)
	if err != nil {
		return transport.AuthResponse{}, apperr.Wrap(apperr.KindInternal, "token issuance failed", err)
	}

	s.log.AuthEvent("login", user.PhoneNumber, true, "")
	return transport.AuthResponse{
		Message: msgLoginOK,
		User:    toUserResponse(user, false),
		Token:   token,
	}, nil
}

func (s *Service) issueAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": "access",
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}

func toUserResponse(user repository.User, withCreatedAt bool) transport.UserResponse {
	resp := transport.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
	}
	if withCreatedAt {
		resp.CreatedAt = user.CreatedAt
	}
	return resp
}
