package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

type mockPositionRepo struct {
	insertFn     func(ctx context.Context, p *domain.DevicePosition) error
	getLatestFn  func(ctx context.Context, deviceID string) (*domain.DevicePosition, error)
	getHistoryFn func(ctx context.Context, query *domain.PositionHistoryQuery) ([]domain.DevicePosition, error)
}

func (m *mockPositionRepo) Insert(ctx context.Context, p *domain.DevicePosition) error {
	return m.insertFn(ctx, p)
}

func (m *mockPositionRepo) GetLatest(ctx context.Context, deviceID string) (*domain.DevicePosition, error) {
	return m.getLatestFn(ctx, deviceID)
}

func (m *mockPositionRepo) GetHistory(ctx context.Context, query *domain.PositionHistoryQuery) ([]domain.DevicePosition, error) {
	return m.getHistoryFn(ctx, query)
}

func TestSavePosition_Success(t *testing.T) {
	var inserted *domain.DevicePosition
	repo := &mockPositionRepo{
		insertFn: func(_ context.Context, p *domain.DevicePosition) error {
			inserted = p
			return nil
		},
	}

	svc := NewPositionService(repo)
	p := &domain.DevicePosition{
		DeviceID: "device-1",
		Location: domain.Location{
			Coordinate: domain.Coordinate{Lat: 37.8351, Lon: -122.1302},
			Timestamp:  time.Unix(1715003456, 0),
		},
	}

	if err := svc.SavePosition(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted == nil {
		t.Fatal("expected Insert to be called")
	}
	if inserted.DeviceID != "device-1" {
		t.Errorf("expected device-1, got %s", inserted.DeviceID)
	}
}

func TestSavePosition_RepoError(t *testing.T) {
	repo := &mockPositionRepo{
		insertFn: func(_ context.Context, _ *domain.DevicePosition) error {
			return errors.New("db error")
		},
	}

	svc := NewPositionService(repo)
	if err := svc.SavePosition(context.Background(), &domain.DevicePosition{DeviceID: "X"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetLatestPosition_Success(t *testing.T) {
	ts := time.Unix(1715003456, 0)
	repo := &mockPositionRepo{
		getLatestFn: func(_ context.Context, deviceID string) (*domain.DevicePosition, error) {
			return &domain.DevicePosition{
				DeviceID: deviceID,
				Location: domain.Location{
					Coordinate: domain.Coordinate{Lat: 37.8351, Lon: -122.1302},
					Timestamp:  ts,
				},
			}, nil
		},
	}

	svc := NewPositionService(repo)
	result, err := svc.GetLatest(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DeviceID != "device-1" {
		t.Errorf("expected device-1, got %s", result.DeviceID)
	}
	if result.Location.Lat != 37.8351 {
		t.Errorf("expected 37.8351, got %f", result.Location.Lat)
	}
}

func TestGetPositionHistory_Success(t *testing.T) {
	ts1 := time.Unix(1715000000, 0)
	ts2 := time.Unix(1715005000, 0)
	repo := &mockPositionRepo{
		getHistoryFn: func(_ context.Context, query *domain.PositionHistoryQuery) ([]domain.DevicePosition, error) {
			return []domain.DevicePosition{
				{DeviceID: query.DeviceID, Location: domain.Location{Coordinate: domain.Coordinate{Lat: 37.83, Lon: -122.13}, Timestamp: ts1}},
				{DeviceID: query.DeviceID, Location: domain.Location{Coordinate: domain.Coordinate{Lat: 37.84, Lon: -122.14}, Timestamp: ts2}},
			}, nil
		},
	}

	svc := NewPositionService(repo)
	results, err := svc.GetHistory(context.Background(), &domain.PositionHistoryQuery{
		DeviceID: "device-1",
		Start:    time.Unix(1715000000, 0),
		End:      time.Unix(1715009999, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}
