package port

import (
	"context"

	"beatboost/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed to the HTTP
// layer. Every method receives the acting identity; role and ownership
// checks happen here so adapters only translate errors.
type CampaignUseCase interface {
	// CreateCampaign creates an active campaign owned by the musician. The
	// total payment is derived from the video count and per-video rate.
	CreateCampaign(ctx context.Context, actor domain.Identity, in CampaignInput) (domain.Campaign, error)
	// PayForCampaign runs the simulated payment for a campaign owned by the
	// musician.
	PayForCampaign(ctx context.Context, actor domain.Identity, campaignID int64) (domain.PaymentResult, error)
	// CompleteCampaign closes a campaign for new submissions.
	CompleteCampaign(ctx context.Context, actor domain.Identity, campaignID int64) (domain.Campaign, error)
	MusicianDashboard(ctx context.Context, actor domain.Identity) (domain.MusicianDashboard, error)
	// ReviewQueue returns the campaign's submissions grouped by status.
	ReviewQueue(ctx context.Context, actor domain.Identity, campaignID int64) (domain.ReviewQueue, error)
	// Review approves or rejects a submission to one of the musician's
	// campaigns.
	Review(ctx context.Context, actor domain.Identity, submissionID int64, status domain.SubmissionStatus) (domain.Submission, error)

	// BrowseCampaigns lists active campaigns, optionally narrowed by a
	// case-insensitive match on title or description.
	BrowseCampaigns(ctx context.Context, query string) ([]domain.Campaign, error)
	CampaignDetail(ctx context.Context, actor domain.Identity, campaignID int64) (domain.CampaignDetail, error)
	// Submit posts a video to an active campaign. A creator may submit at
	// most once per campaign.
	Submit(ctx context.Context, actor domain.Identity, campaignID int64, videoLink string) (domain.Submission, error)
	CreatorDashboard(ctx context.Context, actor domain.Identity) (domain.CreatorDashboard, error)
	CreatorSubmissions(ctx context.Context, actor domain.Identity) ([]domain.CreatorSubmission, error)
}

// CampaignInput is the musician-supplied part of a new campaign.
type CampaignInput struct {
	Title           string
	MusicLink       string
	Description     string
	Instructions    string
	VideosOrdered   int
	PaymentPerVideo int64
}
