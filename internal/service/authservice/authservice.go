package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/pkg/auth"
	"github.com/GlebRadaev/bookstore/pkg/validate"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo       Repo
	hashService    auth.HashServiceInterface
	jwtService     auth.JWTServiceInterface
	googleVerifier auth.GoogleVerifierInterface
	tokenTTL       time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface,
	googleVerifier auth.GoogleVerifierInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:       repo,
		hashService:    hashService,
		jwtService:     jwtService,
		googleVerifier: googleVerifier,
		tokenTTL:       tokenTTL,
	}
}

// Register creates a password account. New accounts always start with zero
// coins.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if !validate.IsEmail(email) {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	if len(password) > auth.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password exceeds %d bytes", domain.ErrInvalidInput, auth.MaxPasswordBytes)
	}
	email = validate.NormalizeEmail(email)

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, domain.ErrUserExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			zap.L().Error("can't create user", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("user_id", newUser.ID.String()))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, validate.NormalizeEmail(email))
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !user.HasPassword() {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("user_id", user.ID.String()))
	return user, nil
}

// AuthenticateGoogle signs in with a Google ID token, creating a
// password-less account on first use.
func (s *Service) AuthenticateGoogle(ctx context.Context, idToken string) (*domain.User, error) {
	identity, err := s.googleVerifier.Verify(ctx, idToken)
	if err != nil {
		zap.L().Info("google token rejected", zap.Error(err))
		return nil, err
	}
	email := validate.NormalizeEmail(identity.Email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.Create(ctx, &domain.User{Email: email, Name: identity.Name})
	if errors.Is(err, domain.ErrUserExists) {
		// created concurrently by another login
		user, err = s.userRepo.FindByEmail(ctx, email)
		if err == nil && user == nil {
			err = domain.ErrUserNotFound
		}
	}
	if err != nil {
		zap.L().Error("can't create federated user", zap.Error(err))
		return nil, err
	}
	zap.L().Info("federated user created", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (s *Service) GenerateToken(userID domain.ID) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID.String(), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
