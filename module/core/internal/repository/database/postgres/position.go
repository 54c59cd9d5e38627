package postgres

import (
	"context"
	"database/sql"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	"github.com/Witchkitt/grabbit-clean-main/module/core/internal/repository/database"
)

var _ database.PositionRepository = (*PositionRepo)(nil)

type PositionRepo struct {
	db *sql.DB
}

func NewPositionRepo(db *sql.DB) *PositionRepo {
	return &PositionRepo{db: db}
}

func (r *PositionRepo) Insert(ctx context.Context, p *domain.DevicePosition) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO device_positions (device_id, latitude, longitude, recorded_at) VALUES ($1, $2, $3, $4)`,
		p.DeviceID, p.Location.Lat, p.Location.Lon, p.Location.Timestamp,
	)
	return err
}

func (r *PositionRepo) GetLatest(ctx context.Context, deviceID string) (*domain.DevicePosition, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT device_id, latitude, longitude, recorded_at FROM device_positions WHERE device_id = $1 ORDER BY recorded_at DESC LIMIT 1`,
		deviceID,
	)

	var p domain.DevicePosition
	if err := row.Scan(&p.DeviceID, &p.Location.Lat, &p.Location.Lon, &p.Location.Timestamp); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PositionRepo) GetHistory(ctx context.Context, query *domain.PositionHistoryQuery) ([]domain.DevicePosition, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT device_id, latitude, longitude, recorded_at FROM device_positions WHERE device_id = $1 AND recorded_at >= $2 AND recorded_at <= $3 ORDER BY recorded_at ASC`,
		query.DeviceID, query.Start, query.End,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.DevicePosition
	for rows.Next() {
		var p domain.DevicePosition
		if err := rows.Scan(&p.DeviceID, &p.Location.Lat, &p.Location.Lon, &p.Location.Timestamp); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}
