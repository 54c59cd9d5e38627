package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

const topicPattern = "/grabbit/device/+/position"

type positionService interface {
	SavePosition(ctx context.Context, p *domain.DevicePosition) error
}

type geofenceMonitor interface {
	PositionChanged(ctx context.Context, pos domain.Coordinate) error
}

type positionMessage struct {
	DeviceID  string  `json:"device_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// PositionSubscriber feeds position updates from MQTT into the position
// history and the geofence monitor. Push watchers and poll timers publish
// to the same topic, so the monitor sees one stream either way.
type PositionSubscriber struct {
	client      mqtt.Client
	positionSvc positionService
	monitor     geofenceMonitor
}

func NewPositionSubscriber(client mqtt.Client, positionSvc positionService, monitor geofenceMonitor) *PositionSubscriber {
	return &PositionSubscriber{
		client:      client,
		positionSvc: positionSvc,
		monitor:     monitor,
	}
}

func (s *PositionSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *PositionSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw positionMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.Printf("invalid position message: %v", err)
		return
	}

	if err := validatePositionMessage(&raw); err != nil {
		log.Printf("validation error: %v", err)
		return
	}

	p := &domain.DevicePosition{
		DeviceID: raw.DeviceID,
		Location: domain.Location{
			Coordinate: domain.Coordinate{Lat: raw.Latitude, Lon: raw.Longitude},
			Timestamp:  time.Unix(raw.Timestamp, 0),
		},
	}

	ctx := context.Background()

	if err := s.positionSvc.SavePosition(ctx, p); err != nil {
		log.Printf("save position error: %v", err)
	}

	// Evaluate even when history persistence fails; a missed reminder is
	// worse than a missed history row.
	if err := s.monitor.PositionChanged(ctx, p.Location.Coordinate); err != nil {
		log.Printf("geofence evaluation error: %v", err)
	}
}

func validatePositionMessage(msg *positionMessage) error {
	if msg.DeviceID == "" {
		return fmt.Errorf("device_id: required")
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
