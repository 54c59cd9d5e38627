package database

import (
	"context"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

type ItemRepository interface {
	Insert(ctx context.Context, item *domain.ShoppingItem) error
	List(ctx context.Context) ([]domain.ShoppingItem, error)
	ListOutstanding(ctx context.Context) ([]domain.ShoppingItem, error)
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteCompleted(ctx context.Context) (int64, error)
}

type PositionRepository interface {
	Insert(ctx context.Context, p *domain.DevicePosition) error
	GetLatest(ctx context.Context, deviceID string) (*domain.DevicePosition, error)
	GetHistory(ctx context.Context, query *domain.PositionHistoryQuery) ([]domain.DevicePosition, error)
}
