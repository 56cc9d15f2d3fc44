package db

import (
	"time"

	"beatboost/internal/core/domain"
)

// SeedCampaigns returns the demo campaigns a fresh store starts with. Each
// call returns a new slice so callers may modify it.
func SeedCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			ID:              1,
			MusicianID:      1,
			Title:           "Summer Vibes Beat",
			MusicLink:       "https://tiktok.com/music/summer-vibes-12345",
			Description:     "Upbeat summer track perfect for dance videos",
			Instructions:    "Create a dance video with summer aesthetic",
			VideosOrdered:   40,
			PaymentPerVideo: 500,
			TotalPayment:    20000,
			Status:          domain.CampaignStatusActive,
			CreatedAt:       seedTime("2023-04-15T10:30:00Z"),
		},
		{
			ID:              2,
			MusicianID:      1,
			Title:           "Chill Beats",
			MusicLink:       "https://tiktok.com/music/chill-beats-67890",
			Description:     "Relaxing lo-fi beat for ambient content",
			Instructions:    "Create a day-in-life or study vlog with this track",
			VideosOrdered:   60,
			PaymentPerVideo: 500,
			TotalPayment:    30000,
			Status:          domain.CampaignStatusActive,
			CreatedAt:       seedTime("2023-04-10T14:20:00Z"),
		},
		{
			ID:              3,
			MusicianID:      2,
			Title:           "Party Anthem",
			MusicLink:       "https://tiktok.com/music/party-anthem-24680",
			Description:     "High-energy party track for dancing",
			Instructions:    "Create a dance or party scene using this track",
			VideosOrdered:   50,
			PaymentPerVideo: 500,
			TotalPayment:    25000,
			Status:          domain.CampaignStatusCompleted,
			CreatedAt:       seedTime("2023-03-25T09:15:00Z"),
		},
	}
}

// SeedSubmissions returns the demo submissions matching SeedCampaigns.
func SeedSubmissions() []domain.Submission {
	return []domain.Submission{
		{
			ID:          1,
			CampaignID:  1,
			CreatorID:   3,
			VideoLink:   "https://tiktok.com/@tiktokprince/video/12345",
			Status:      domain.SubmissionStatusApproved,
			SubmittedAt: seedTime("2023-04-16T11:45:00Z"),
			ReviewedAt:  seedTimePtr("2023-04-17T14:30:00Z"),
		},
		{
			ID:          2,
			CampaignID:  1,
			CreatorID:   4,
			VideoLink:   "https://tiktok.com/@dancequeen/video/67890",
			Status:      domain.SubmissionStatusPending,
			SubmittedAt: seedTime("2023-04-17T16:20:00Z"),
		},
		{
			ID:          3,
			CampaignID:  2,
			CreatorID:   3,
			VideoLink:   "https://tiktok.com/@tiktokprince/video/13579",
			Status:      domain.SubmissionStatusRejected,
			SubmittedAt: seedTime("2023-04-12T10:10:00Z"),
			ReviewedAt:  seedTimePtr("2023-04-13T09:05:00Z"),
		},
		{
			ID:          4,
			CampaignID:  3,
			CreatorID:   4,
			VideoLink:   "https://tiktok.com/@dancequeen/video/24680",
			Status:      domain.SubmissionStatusApproved,
			SubmittedAt: seedTime("2023-03-26T15:30:00Z"),
			ReviewedAt:  seedTimePtr("2023-03-27T11:15:00Z"),
		},
	}
}

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func seedTimePtr(value string) *time.Time {
	t := seedTime(value)
	return &t
}
