package domain

// PaymentRequest describes a campaign payment to be charged to a musician.
type PaymentRequest struct {
	CampaignID int64 `json:"campaignId"`
	MusicianID int64 `json:"musicianId"`
	Amount     int64 `json:"amount"`
}

// PaymentResult is the outcome reported by the payment processor.
type PaymentResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}
