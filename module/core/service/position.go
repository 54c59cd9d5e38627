package service

import (
	"context"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	"github.com/Witchkitt/grabbit-clean-main/module/core/internal/repository/database"
)

type PositionService struct {
	repo database.PositionRepository
}

func NewPositionService(repo database.PositionRepository) *PositionService {
	return &PositionService{repo: repo}
}

func (s *PositionService) SavePosition(ctx context.Context, p *domain.DevicePosition) error {
	return s.repo.Insert(ctx, p)
}

func (s *PositionService) GetLatest(ctx context.Context, deviceID string) (*domain.DevicePosition, error) {
	return s.repo.GetLatest(ctx, deviceID)
}

func (s *PositionService) GetHistory(ctx context.Context, query *domain.PositionHistoryQuery) ([]domain.DevicePosition, error) {
	return s.repo.GetHistory(ctx, query)
}
