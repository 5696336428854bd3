package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports"
)

type UserService struct {
	repo     ports.UserRepo
	notifier ports.OrderNotifier
	logger   logger.Logger
}

func NewUserService(repo ports.UserRepo, notifier ports.OrderNotifier, logger logger.Logger) *UserService {
	return &UserService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	switch {
	case len(strings.TrimSpace(input.Username)) < 3:
		return nil, fmt.Errorf("%w: username must be at least 3 characters", domain.ErrValidation)
	case len(input.Password) < 6:
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	case !strings.Contains(input.Email, "@"):
		return nil, fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	case input.FullName == "":
		return nil, fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username: strings.TrimSpace(input.Username),
		Password: string(hash),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		FullName: input.FullName,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.Int64("user_id", user.ID),
		logger.String("username", user.Username),
	)

	go s.notifier.NotifyWelcome(context.WithoutCancel(ctx), user)

	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
