package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"gag-stock-bot/internal/common/clock"
	"gag-stock-bot/internal/common/logger"
	"gag-stock-bot/internal/features/user/models"
	"gag-stock-bot/internal/features/user/repository"
	"gag-stock-bot/internal/platform/messenger"
)

type userService struct {
	repo      repository.UserRepository
	messenger messenger.Gateway
	clock     *clock.Clock
	adminID   string
	log       zerolog.Logger
}

func NewUserService(repo repository.UserRepository, gw messenger.Gateway, clk *clock.Clock, adminID string) UserService {
	return &userService{
		repo:      repo,
		messenger: gw,
		clock:     clk,
		adminID:   adminID,
		log:       logger.With("users"),
	}
}

func (s *userService) EnsureRegistered(ctx context.Context, id string) (*models.User, bool, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, err
	}

	user = &models.User{
		ID:     id,
		Name:   s.messenger.UserName(ctx, id),
		Joined: s.clock.Stamp(),
		Role:   models.RoleMember,
	}
	if s.adminID != "" && id == s.adminID {
		user.Role = models.RoleAdmin
	}

	created, err := s.repo.CreateIfAbsent(ctx, user)
	if err != nil {
		return nil, false, err
	}
	if !created {
		// another event for the same sender registered first
		existing, err := s.repo.GetByID(ctx, id)
		return existing, false, err
	}

	s.log.Info().Str("user_id", id).Str("name", user.Name).Str("role", string(user.Role)).Msg("New user registered")

	welcome := fmt.Sprintf("👋 Hello %s!\nWelcome to Grow A Garden Bot 🌱\nI’ll notify you about VIP items & stock!", user.Name)
	if err := s.messenger.Send(ctx, id, welcome); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("Welcome message not delivered")
	}
	if s.adminID != "" {
		notice := fmt.Sprintf("📥 New user detected: %s (%s)", user.Name, id)
		if err := s.messenger.Send(ctx, s.adminID, notice); err != nil {
			s.log.Warn().Err(err).Msg("New user notice not delivered")
		}
	}
	return user, true, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) Role(ctx context.Context, id string) models.Role {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.log.Warn().Err(err).Str("user_id", id).Msg("Role lookup failed")
		}
		return models.RoleMember
	}
	return user.Role
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Admins(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	admins := make([]*models.User, 0, 1)
	for _, u := range users {
		if u.IsAdmin() {
			admins = append(admins, u)
		}
	}
	return admins, nil
}
