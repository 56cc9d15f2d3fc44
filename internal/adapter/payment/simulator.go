package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"beatboost/internal/core/domain"
)

// Simulator implements port.PaymentProcessor without charging anything.
// Every payment succeeds after a fixed delay; nothing is stored.
type Simulator struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewSimulator(delay time.Duration, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{delay: delay, logger: logger}
}

// ProcessCampaignPayment waits for the configured delay and reports
// success with a fresh reference. It returns ctx.Err() if the caller gives
// up first.
func (s *Simulator) ProcessCampaignPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResult, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.PaymentResult{}, ctx.Err()
	case <-timer.C:
	}

	result := domain.PaymentResult{
		Success:   true,
		Message:   "Payment processed successfully",
		Reference: uuid.NewString(),
	}
	s.logger.Info("payment processed",
		slog.Int64("campaign_id", req.CampaignID),
		slog.Int64("musician_id", req.MusicianID),
		slog.Int64("amount", req.Amount),
		slog.String("reference", result.Reference))
	return result, nil
}
