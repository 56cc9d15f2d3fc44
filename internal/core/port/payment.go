package port

import (
	"context"

	"beatboost/internal/core/domain"
)

// PaymentProcessor charges a musician for a campaign.
type PaymentProcessor interface {
	ProcessCampaignPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResult, error)
}
