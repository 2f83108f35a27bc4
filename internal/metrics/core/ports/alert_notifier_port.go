package ports

import (
	"context"

	"ux-metrics-service/internal/metrics/core/domain"
)

type AlertNotifierPort interface {
	NotifyHighFrustration(ctx context.Context, a domain.FrustrationAlert) error
}
