package domain

import "time"

// SubmissionStatus is the review state of a submission.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// IsReviewOutcome reports whether s is a valid target of a review.
func (s SubmissionStatus) IsReviewOutcome() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// Submission is a creator's video posted against a campaign.
// ReviewedAt is nil exactly while Status is pending.
type Submission struct {
	ID          int64            `json:"id"`
	CampaignID  int64            `json:"campaignId"`
	CreatorID   int64            `json:"creatorId"`
	VideoLink   string           `json:"videoLink"`
	Status      SubmissionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submittedAt"`
	ReviewedAt  *time.Time       `json:"reviewedAt"`
}

// SubmissionDraft carries the caller-supplied fields of a new submission.
type SubmissionDraft struct {
	CampaignID int64
	CreatorID  int64
	VideoLink  string
}
