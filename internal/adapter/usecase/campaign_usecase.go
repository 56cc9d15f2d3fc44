package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"

	"beatboost/internal/core/domain"
	"beatboost/internal/core/port"
)

const (
	// MinVideosOrdered is the smallest campaign a musician can order.
	MinVideosOrdered = 40
	// DefaultPaymentPerVideo is the fixed rate offered to creators.
	DefaultPaymentPerVideo int64 = 500

	unknownCampaignTitle = "Unknown Campaign"
)

// CampaignUseCase implements port.CampaignUseCase on top of the campaign
// store and the payment processor.
type CampaignUseCase struct {
	store    port.CampaignStore
	payments port.PaymentProcessor
	logger   *slog.Logger

	// submitMu serialises Submit against itself and CompleteCampaign, so the
	// active and duplicate checks hold until the submission is inserted.
	submitMu sync.Mutex
}

// NewCampaignUseCase creates a new use case. A nil logger falls back to
// slog.Default.
func NewCampaignUseCase(store port.CampaignStore, payments port.PaymentProcessor, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{store: store, payments: payments, logger: logger}
}

func requireRole(actor domain.Identity, role domain.Role) error {
	if !actor.Role.Valid() {
		return port.ErrUnauthenticated
	}
	if actor.Role != role {
		return fmt.Errorf("%w: %s only", port.ErrForbidden, role)
	}
	return nil
}

// ownedCampaign loads a campaign and checks that actor is its musician.
func (u *CampaignUseCase) ownedCampaign(ctx context.Context, actor domain.Identity, campaignID int64) (domain.Campaign, error) {
	if err := requireRole(actor, domain.RoleMusician); err != nil {
		return domain.Campaign{}, err
	}
	c, ok := u.store.Campaign(ctx, campaignID)
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}
	if c.MusicianID != actor.ID {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", campaignID, port.ErrForbidden)
	}
	return c, nil
}

// CreateCampaign creates an active campaign. The video count is raised to
// MinVideosOrdered and a zero rate becomes DefaultPaymentPerVideo.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, actor domain.Identity, in port.CampaignInput) (domain.Campaign, error) {
	if err := requireRole(actor, domain.RoleMusician); err != nil {
		return domain.Campaign{}, err
	}
	videos := max(in.VideosOrdered, MinVideosOrdered)
	rate := in.PaymentPerVideo
	if rate <= 0 {
		rate = DefaultPaymentPerVideo
	}

	c, err := u.store.CreateCampaign(ctx, domain.CampaignDraft{
		MusicianID:      actor.ID,
		Title:           strings.TrimSpace(in.Title),
		MusicLink:       strings.TrimSpace(in.MusicLink),
		Description:     strings.TrimSpace(in.Description),
		Instructions:    strings.TrimSpace(in.Instructions),
		VideosOrdered:   videos,
		PaymentPerVideo: rate,
		TotalPayment:    int64(videos) * rate,
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	u.logger.Info("campaign created",
		slog.Int64("campaign_id", c.ID),
		slog.Int64("musician_id", c.MusicianID),
		slog.Int64("total_payment", c.TotalPayment))
	return c, nil
}

// PayForCampaign charges the campaign's total payment. The campaign is
// already active; payment does not change its state.
func (u *CampaignUseCase) PayForCampaign(ctx context.Context, actor domain.Identity, campaignID int64) (domain.PaymentResult, error) {
	c, err := u.ownedCampaign(ctx, actor, campaignID)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	return u.payments.ProcessCampaignPayment(ctx, domain.PaymentRequest{
		CampaignID: c.ID,
		MusicianID: actor.ID,
		Amount:     c.TotalPayment,
	})
}

// CompleteCampaign stops a campaign from accepting submissions.
// Completing a completed campaign is a no-op.
func (u *CampaignUseCase) CompleteCampaign(ctx context.Context, actor domain.Identity, campaignID int64) (domain.Campaign, error) {
	u.submitMu.Lock()
	defer u.submitMu.Unlock()

	c, err := u.ownedCampaign(ctx, actor, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if !c.IsActive() {
		return c, nil
	}
	ok, err := u.store.CompleteCampaign(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}
	c.Status = domain.CampaignStatusCompleted
	u.logger.Info("campaign completed", slog.Int64("campaign_id", campaignID))
	return c, nil
}

func (u *CampaignUseCase) MusicianDashboard(ctx context.Context, actor domain.Identity) (domain.MusicianDashboard, error) {
	if err := requireRole(actor, domain.RoleMusician); err != nil {
		return domain.MusicianDashboard{}, err
	}
	campaigns := u.store.MusicianCampaigns(ctx, actor.ID)

	pending := 0
	for _, c := range campaigns {
		pending += lo.CountBy(u.store.SubmissionsForCampaign(ctx, c.ID), func(s domain.Submission) bool {
			return s.Status == domain.SubmissionStatusPending
		})
	}
	return domain.MusicianDashboard{
		TotalCampaigns:     len(campaigns),
		ActiveCampaigns:    lo.CountBy(campaigns, domain.Campaign.IsActive),
		CompletedCampaigns: lo.CountBy(campaigns, func(c domain.Campaign) bool { return c.Status == domain.CampaignStatusCompleted }),
		TotalSpend:         lo.SumBy(campaigns, func(c domain.Campaign) int64 { return c.TotalPayment }),
		PendingSubmissions: pending,
	}, nil
}

func (u *CampaignUseCase) ReviewQueue(ctx context.Context, actor domain.Identity, campaignID int64) (domain.ReviewQueue, error) {
	c, err := u.ownedCampaign(ctx, actor, campaignID)
	if err != nil {
		return domain.ReviewQueue{}, err
	}
	byStatus := lo.GroupBy(u.store.SubmissionsForCampaign(ctx, campaignID), func(s domain.Submission) domain.SubmissionStatus {
		return s.Status
	})
	return domain.ReviewQueue{
		Campaign: c,
		Pending:  nonNil(byStatus[domain.SubmissionStatusPending]),
		Approved: nonNil(byStatus[domain.SubmissionStatusApproved]),
		Rejected: nonNil(byStatus[domain.SubmissionStatusRejected]),
	}, nil
}

// Review approves or rejects a submission. Reviewing again overwrites the
// earlier outcome.
func (u *CampaignUseCase) Review(ctx context.Context, actor domain.Identity, submissionID int64, status domain.SubmissionStatus) (domain.Submission, error) {
	if err := requireRole(actor, domain.RoleMusician); err != nil {
		return domain.Submission{}, err
	}
	if !status.IsReviewOutcome() {
		return domain.Submission{}, fmt.Errorf("%w: %q", port.ErrInvalidStatus, status)
	}
	sub, ok := u.store.Submission(ctx, submissionID)
	if !ok {
		return domain.Submission{}, fmt.Errorf("submission %d: %w", submissionID, port.ErrNotFound)
	}
	if _, err := u.ownedCampaign(ctx, actor, sub.CampaignID); err != nil {
		return domain.Submission{}, err
	}

	if err := u.store.ReviewSubmission(ctx, submissionID, status); err != nil {
		return domain.Submission{}, err
	}
	sub, _ = u.store.Submission(ctx, submissionID)
	u.logger.Info("submission reviewed",
		slog.Int64("submission_id", submissionID),
		slog.Int64("campaign_id", sub.CampaignID),
		slog.String("status", string(status)))
	return sub, nil
}

// BrowseCampaigns returns active campaigns whose title or description
// contains query, ignoring case. An empty query matches everything.
func (u *CampaignUseCase) BrowseCampaigns(ctx context.Context, query string) ([]domain.Campaign, error) {
	active := u.store.ActiveCampaigns(ctx)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return active, nil
	}
	return lo.Filter(active, func(c domain.Campaign, _ int) bool {
		return strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Description), query)
	}), nil
}

func (u *CampaignUseCase) CampaignDetail(ctx context.Context, actor domain.Identity, campaignID int64) (domain.CampaignDetail, error) {
	if err := requireRole(actor, domain.RoleCreator); err != nil {
		return domain.CampaignDetail{}, err
	}
	c, ok := u.store.Campaign(ctx, campaignID)
	if !ok {
		return domain.CampaignDetail{}, fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}
	detail := domain.CampaignDetail{Campaign: c}
	if existing, found := u.existingSubmission(ctx, actor.ID, campaignID); found {
		detail.Submission = &existing
	}
	return detail, nil
}

func (u *CampaignUseCase) existingSubmission(ctx context.Context, creatorID, campaignID int64) (domain.Submission, bool) {
	return lo.Find(u.store.CreatorSubmissions(ctx, creatorID), func(s domain.Submission) bool {
		return s.CampaignID == campaignID
	})
}

// Submit records a creator's video for an active campaign.
func (u *CampaignUseCase) Submit(ctx context.Context, actor domain.Identity, campaignID int64, videoLink string) (domain.Submission, error) {
	if err := requireRole(actor, domain.RoleCreator); err != nil {
		return domain.Submission{}, err
	}

	u.submitMu.Lock()
	defer u.submitMu.Unlock()

	c, ok := u.store.Campaign(ctx, campaignID)
	if !ok {
		return domain.Submission{}, fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}
	if !c.IsActive() {
		return domain.Submission{}, fmt.Errorf("campaign %d: %w", campaignID, port.ErrCampaignNotActive)
	}
	if _, found := u.existingSubmission(ctx, actor.ID, campaignID); found {
		return domain.Submission{}, port.ErrDuplicateSubmission
	}
	sub, err := u.store.CreateSubmission(ctx, domain.SubmissionDraft{
		CampaignID: campaignID,
		CreatorID:  actor.ID,
		VideoLink:  strings.TrimSpace(videoLink),
	})
	if err != nil {
		return domain.Submission{}, err
	}
	u.logger.Info("submission created",
		slog.Int64("submission_id", sub.ID),
		slog.Int64("campaign_id", campaignID),
		slog.Int64("creator_id", actor.ID))
	return sub, nil
}

// CreatorDashboard counts the creator's submissions. Earnings are the rate
// of each approved submission's campaign, or DefaultPaymentPerVideo when
// the campaign no longer exists.
func (u *CampaignUseCase) CreatorDashboard(ctx context.Context, actor domain.Identity) (domain.CreatorDashboard, error) {
	if err := requireRole(actor, domain.RoleCreator); err != nil {
		return domain.CreatorDashboard{}, err
	}
	subs := u.store.CreatorSubmissions(ctx, actor.ID)
	counts := lo.CountValuesBy(subs, func(s domain.Submission) domain.SubmissionStatus { return s.Status })

	var earnings int64
	for _, s := range subs {
		if s.Status != domain.SubmissionStatusApproved {
			continue
		}
		rate := DefaultPaymentPerVideo
		if c, ok := u.store.Campaign(ctx, s.CampaignID); ok && c.PaymentPerVideo > 0 {
			rate = c.PaymentPerVideo
		}
		earnings += rate
	}

	return domain.CreatorDashboard{
		TotalSubmissions:    len(subs),
		PendingSubmissions:  counts[domain.SubmissionStatusPending],
		ApprovedSubmissions: counts[domain.SubmissionStatusApproved],
		RejectedSubmissions: counts[domain.SubmissionStatusRejected],
		EstimatedEarnings:   earnings,
		ActiveCampaigns:     len(u.store.ActiveCampaigns(ctx)),
	}, nil
}

func (u *CampaignUseCase) CreatorSubmissions(ctx context.Context, actor domain.Identity) ([]domain.CreatorSubmission, error) {
	if err := requireRole(actor, domain.RoleCreator); err != nil {
		return nil, err
	}
	return lo.Map(u.store.CreatorSubmissions(ctx, actor.ID), func(s domain.Submission, _ int) domain.CreatorSubmission {
		title := unknownCampaignTitle
		if c, ok := u.store.Campaign(ctx, s.CampaignID); ok {
			title = c.Title
		}
		return domain.CreatorSubmission{Submission: s, CampaignTitle: title}
	}), nil
}

func nonNil(subs []domain.Submission) []domain.Submission {
	if subs == nil {
		return []domain.Submission{}
	}
	return subs
}
