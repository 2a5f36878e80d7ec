package service

import (
	"context"
	"errors"
	"sync"

	"gag-stock-bot/internal/features/vip/models"
	"gag-stock-bot/internal/features/vip/repository"
)

var (
	ErrEmptySelection = errors.New("no valid catalog positions")
	ErrNoSelection    = errors.New("no vip items selected")
)

type vipService struct {
	mu      sync.Mutex
	repo    repository.VIPRepository
	catalog *models.Catalog
}

func NewVIPService(repo repository.VIPRepository, catalog *models.Catalog) VIPService {
	if catalog == nil {
		catalog = models.DefaultCatalog()
	}
	return &vipService{repo: repo, catalog: catalog}
}

func (s *vipService) Catalog() *models.Catalog {
	return s.catalog
}

func (s *vipService) Select(ctx context.Context, userID string, positions []int) ([]string, error) {
	selected := make([]string, 0, len(positions))
	seen := make(map[string]bool, len(positions))
	for _, p := range positions {
		item, ok := s.catalog.At(p)
		if !ok || seen[item.Name] {
			continue
		}
		seen[item.Name] = true
		selected = append(selected, item.Name)
	}
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Set(ctx, userID, selected); err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *vipService) Selection(ctx context.Context, userID string) ([]string, error) {
	return s.repo.Get(ctx, userID)
}

func (s *vipService) Remove(ctx context.Context, userID string, positions []int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, ErrNoSelection
	}

	drop := make(map[int]bool, len(positions))
	for _, p := range positions {
		drop[p-1] = true
	}
	remaining := make([]string, 0, len(current))
	for i, name := range current {
		if !drop[i] {
			remaining = append(remaining, name)
		}
	}

	if err := s.repo.Set(ctx, userID, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

func (s *vipService) Reset(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(ctx, userID)
}

func (s *vipService) All(ctx context.Context) (map[string][]string, error) {
	return s.repo.All(ctx)
}
