package domain

import "time"

type Location struct {
	Coordinate
	Timestamp time.Time `json:"timestamp"`
}

type DevicePosition struct {
	DeviceID string   `json:"device_id"`
	Location Location `json:"location"`
}

type PositionHistoryQuery struct {
	DeviceID string
	Start    time.Time
	End      time.Time
}
