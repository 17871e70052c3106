package service

import (
	"context"
	"fmt"

	"hostel_manager/internal/model"
	"hostel_manager/internal/repository"
)

// MenuService defines weekly menu operations
type MenuService interface {
	ListMenu(ctx context.Context) ([]model.MenuItem, error)
	UpsertMenu(ctx context.Context, req model.UpsertMenuRequest) (*model.MenuItem, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menuRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	return items, nil
}

func (s *menuService) UpsertMenu(ctx context.Context, req model.UpsertMenuRequest) (*model.MenuItem, error) {
	item, err := s.menuRepo.Upsert(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert menu: %w", err)
	}
	return item, nil
}
