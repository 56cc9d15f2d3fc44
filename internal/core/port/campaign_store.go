package port

import (
	"context"

	"beatboost/internal/core/domain"
)

// CampaignStore holds campaigns and submissions. It is an outbound port;
// implementations must be safe for concurrent use and persist after every
// mutation. Queries return copies in insertion order.
type CampaignStore interface {
	// CreateCampaign stores a new active campaign built from draft.
	CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (domain.Campaign, error)
	// CompleteCampaign marks a campaign completed. ok is false when no
	// campaign has the given id.
	CompleteCampaign(ctx context.Context, campaignID int64) (ok bool, err error)
	Campaign(ctx context.Context, campaignID int64) (domain.Campaign, bool)
	Campaigns(ctx context.Context) []domain.Campaign
	MusicianCampaigns(ctx context.Context, musicianID int64) []domain.Campaign
	ActiveCampaigns(ctx context.Context) []domain.Campaign

	// CreateSubmission stores a new pending submission built from draft.
	// It does not check for an earlier submission by the same creator.
	CreateSubmission(ctx context.Context, draft domain.SubmissionDraft) (domain.Submission, error)
	// ReviewSubmission sets the status and review time of a submission.
	// An unknown id is ignored.
	ReviewSubmission(ctx context.Context, submissionID int64, status domain.SubmissionStatus) error
	Submission(ctx context.Context, submissionID int64) (domain.Submission, bool)
	Submissions(ctx context.Context) []domain.Submission
	SubmissionsForCampaign(ctx context.Context, campaignID int64) []domain.Submission
	CreatorSubmissions(ctx context.Context, creatorID int64) []domain.Submission
}
