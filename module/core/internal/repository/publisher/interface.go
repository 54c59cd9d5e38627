package publisher

import (
	"context"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
)

type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert *domain.AlertEvent) error
}
