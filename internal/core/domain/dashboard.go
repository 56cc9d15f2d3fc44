package domain

// MusicianDashboard summarises a musician's campaigns.
type MusicianDashboard struct {
	TotalCampaigns     int   `json:"totalCampaigns"`
	ActiveCampaigns    int   `json:"activeCampaigns"`
	CompletedCampaigns int   `json:"completedCampaigns"`
	TotalSpend         int64 `json:"totalSpend"`
	PendingSubmissions int   `json:"pendingSubmissions"`
}

// CreatorDashboard summarises a creator's submissions.
type CreatorDashboard struct {
	TotalSubmissions    int   `json:"totalSubmissions"`
	PendingSubmissions  int   `json:"pendingSubmissions"`
	ApprovedSubmissions int   `json:"approvedSubmissions"`
	RejectedSubmissions int   `json:"rejectedSubmissions"`
	EstimatedEarnings   int64 `json:"estimatedEarnings"`
	ActiveCampaigns     int   `json:"activeCampaigns"`
}

// ReviewQueue groups a campaign's submissions by review state.
type ReviewQueue struct {
	Campaign Campaign     `json:"campaign"`
	Pending  []Submission `json:"pending"`
	Approved []Submission `json:"approved"`
	Rejected []Submission `json:"rejected"`
}

// CampaignDetail is a campaign as seen by one creator.
type CampaignDetail struct {
	Campaign   Campaign    `json:"campaign"`
	Submission *Submission `json:"submission"`
}

// CreatorSubmission is a submission annotated with its campaign title.
type CreatorSubmission struct {
	Submission
	CampaignTitle string `json:"campaignTitle"`
}
