package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign is a musician's order for a fixed number of promotional videos
// at a fixed per-video rate. Amounts are stored in integer currency units.
type Campaign struct {
	ID              int64          `json:"id"`
	MusicianID      int64          `json:"musicianId"`
	Title           string         `json:"title"`
	MusicLink       string         `json:"musicLink"`
	Description     string         `json:"description"`
	Instructions    string         `json:"instructions"`
	VideosOrdered   int            `json:"videosOrdered"`
	PaymentPerVideo int64          `json:"paymentPerVideo"`
	TotalPayment    int64          `json:"totalPayment"` // videosOrdered * paymentPerVideo, set by the caller
	Status          CampaignStatus `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// CampaignDraft carries the caller-supplied fields of a new campaign. The
// identifier, status and creation time are assigned by the store.
type CampaignDraft struct {
	MusicianID      int64
	Title           string
	MusicLink       string
	Description     string
	Instructions    string
	VideosOrdered   int
	PaymentPerVideo int64
	TotalPayment    int64
}

// IsActive reports whether creators may still submit to the campaign.
func (c Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}
