package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	"github.com/Witchkitt/grabbit-clean-main/module/core/internal/repository/publisher"
)

var _ publisher.AlertPublisher = (*AlertPublisher)(nil)

const (
	exchangeName = "grabbit.events"
	queueName    = "reminder_alerts"
)

type AlertPublisher struct {
	ch *amqp.Channel
}

func NewAlertPublisher(conn *amqp.Connection) (*AlertPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &AlertPublisher{ch: ch}, nil
}

type alertMessage struct {
	StoreID        string      `json:"store_id"`
	StoreName      string      `json:"store_name"`
	Items          []alertItem `json:"items"`
	Message        string      `json:"message"`
	DistanceMeters float64     `json:"distance_meters"`
	Timestamp      int64       `json:"timestamp"`
}

type alertItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (p *AlertPublisher) PublishAlert(ctx context.Context, alert *domain.AlertEvent) error {
	items := make([]alertItem, len(alert.Items))
	names := make([]string, len(alert.Items))
	for i, item := range alert.Items {
		items[i] = alertItem{ID: item.ID, Name: item.Name, Category: item.Category}
		names[i] = item.Name
	}

	msg := alertMessage{
		StoreID:        alert.StoreID,
		StoreName:      alert.StoreName,
		Items:          items,
		Message:        fmt.Sprintf("Don't forget: %s", strings.Join(names, ", ")),
		DistanceMeters: alert.DistanceMeters,
		Timestamp:      alert.Timestamp.Unix(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
