package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	"github.com/Witchkitt/grabbit-clean-main/module/core/internal/repository/database"
)

var ErrEmptyItemName = errors.New("item name is required")

// ListService owns the shopping list. Free-text names are categorized at add
// time so the geofence monitor can match items against store categories.
type ListService struct {
	repo database.ItemRepository
}

func NewListService(repo database.ItemRepository) *ListService {
	return &ListService{repo: repo}
}

func (s *ListService) Add(ctx context.Context, name string) (*domain.ShoppingItem, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyItemName
	}

	categories := CategorizeItem(trimmed)
	item := &domain.ShoppingItem{
		ID:         uuid.NewString(),
		Name:       trimmed,
		Category:   categories[0],
		Categories: categories,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ListService) Items(ctx context.Context) ([]domain.ShoppingItem, error) {
	return s.repo.List(ctx)
}

// Outstanding returns the uncompleted items, the snapshot the geofence
// monitor evaluates against.
func (s *ListService) Outstanding(ctx context.Context) ([]domain.ShoppingItem, error) {
	return s.repo.ListOutstanding(ctx)
}

func (s *ListService) Toggle(ctx context.Context, id string) error {
	return s.repo.Toggle(ctx, id)
}

func (s *ListService) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ListService) ClearCompleted(ctx context.Context) (int64, error) {
	return s.repo.DeleteCompleted(ctx)
}
