package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"beatboost/internal/adapter/memory"
	"beatboost/internal/adapter/store"
	"beatboost/internal/core/domain"
	"beatboost/internal/core/port"
	"beatboost/internal/core/port/mocks"
)

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

var (
	johnBeats   = domain.Identity{ID: 1, Username: "musician1", Name: "John Beats", Role: domain.RoleMusician}
	sarahSounds = domain.Identity{ID: 2, Username: "musician2", Name: "Sarah Sounds", Role: domain.RoleMusician}
	prince      = domain.Identity{ID: 3, Username: "creator1", Name: "TikTok Prince", Role: domain.RoleCreator}
	danceQueen  = domain.Identity{ID: 4, Username: "creator2", Name: "Dance Queen", Role: domain.RoleCreator}
)

// seededUseCase wires the use case to a real store holding the demo data.
func seededUseCase(t *testing.T, payments port.PaymentProcessor) (*CampaignUseCase, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), memory.NewKVStore())
	require.NoError(t, err)
	return NewCampaignUseCase(s, payments, nil), s
}

// TestCreateCampaignComputesTotal ensures the use case derives the total
// and applies the minimum order before delegating to the store.
func TestCreateCampaignComputesTotal(t *testing.T) {
	repo := mocks.NewMockCampaignStore(t)

	repo.EXPECT().
		CreateCampaign(mock.Anything, domain.CampaignDraft{
			MusicianID:      1,
			Title:           "Summer Vibes Beat",
			MusicLink:       "https://tiktok.com/music/x",
			VideosOrdered:   40,
			PaymentPerVideo: 500,
			TotalPayment:    20000,
		}).
		Return(domain.Campaign{ID: 10, MusicianID: 1, TotalPayment: 20000, Status: domain.CampaignStatusActive}, nil)

	svc := NewCampaignUseCase(repo, nil, nil)

	c, err := svc.CreateCampaign(context.Background(), johnBeats, port.CampaignInput{
		Title:         "  Summer Vibes Beat ",
		MusicLink:     "https://tiktok.com/music/x",
		VideosOrdered: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), c.ID)
}

func TestCreateCampaignRequiresMusician(t *testing.T) {
	repo := mocks.NewMockCampaignStore(t)
	svc := NewCampaignUseCase(repo, nil, nil)

	_, err := svc.CreateCampaign(context.Background(), prince, port.CampaignInput{Title: "x"})
	assert.ErrorIs(t, err, port.ErrForbidden)

	_, err = svc.CreateCampaign(context.Background(), domain.Identity{}, port.CampaignInput{Title: "x"})
	assert.ErrorIs(t, err, port.ErrUnauthenticated)
}

func TestCreateCampaignPropagatesPersistError(t *testing.T) {
	repo := mocks.NewMockCampaignStore(t)
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("domain.CampaignDraft")).
		Return(domain.Campaign{}, port.ErrPersist)

	svc := NewCampaignUseCase(repo, nil, nil)
	_, err := svc.CreateCampaign(context.Background(), johnBeats, port.CampaignInput{VideosOrdered: 60, PaymentPerVideo: 700})
	assert.ErrorIs(t, err, port.ErrPersist)
}

func TestPayForCampaignChargesTotal(t *testing.T) {
	repo := mocks.NewMockCampaignStore(t)
	payments := mocks.NewMockPaymentProcessor(t)

	repo.EXPECT().
		Campaign(mock.Anything, int64(1)).
		Return(domain.Campaign{ID: 1, MusicianID: 1, TotalPayment: 20000}, true)
	payments.EXPECT().
		ProcessCampaignPayment(mock.Anything, domain.PaymentRequest{CampaignID: 1, MusicianID: 1, Amount: 20000}).
		Return(domain.PaymentResult{Success: true, Message: "Payment processed successfully", Reference: "ref"}, nil)

	svc := NewCampaignUseCase(repo, payments, nil)
	res, err := svc.PayForCampaign(context.Background(), johnBeats, 1)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestPayForCampaignOwnerOnly(t *testing.T) {
	repo := mocks.NewMockCampaignStore(t)
	payments := mocks.NewMockPaymentProcessor(t)

	repo.EXPECT().
		Campaign(mock.Anything, int64(3)).
		Return(domain.Campaign{ID: 3, MusicianID: 2}, true)
	repo.EXPECT().
		Campaign(mock.Anything, int64(9)).
		Return(domain.Campaign{}, false)

	svc := NewCampaignUseCase(repo, payments, nil)

	_, err := svc.PayForCampaign(context.Background(), johnBeats, 3)
	assert.ErrorIs(t, err, port.ErrForbidden)

	_, err = svc.PayForCampaign(context.Background(), johnBeats, 9)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestCompleteCampaign(t *testing.T) {
	svc, s := seededUseCase(t, nil)
	ctx := context.Background()

	c, err := svc.CompleteCampaign(ctx, johnBeats, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusCompleted, c.Status)

	stored, ok := s.Campaign(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, domain.CampaignStatusCompleted, stored.Status)

	_, err = svc.Submit(ctx, danceQueen, 1, "https://tiktok.com/@dq/video/5")
	assert.ErrorIs(t, err, port.ErrCampaignNotActive)

	_, err = svc.CompleteCampaign(ctx, johnBeats, 3)
	assert.ErrorIs(t, err, port.ErrForbidden)
}

func TestMusicianDashboard(t *testing.T) {
	svc, _ := seededUseCase(t, nil)

	got, err := svc.MusicianDashboard(context.Background(), johnBeats)
	require.NoError(t, err)
	assert.Equal(t, domain.MusicianDashboard{
		TotalCampaigns:     2,
		ActiveCampaigns:    2,
		CompletedCampaigns: 0,
		TotalSpend:         50000,
		PendingSubmissions: 1,
	}, got)

	got, err = svc.MusicianDashboard(context.Background(), sarahSounds)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CompletedCampaigns)
	assert.Equal(t, int64(25000), got.TotalSpend)
}

func TestReviewQueueGroupsByStatus(t *testing.T) {
	svc, _ := seededUseCase(t, nil)

	q, err := svc.ReviewQueue(context.Background(), johnBeats, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.Campaign.ID)
	require.Len(t, q.Pending, 1)
	assert.Equal(t, int64(2), q.Pending[0].ID)
	require.Len(t, q.Approved, 1)
	assert.Equal(t, int64(1), q.Approved[0].ID)
	assert.NotNil(t, q.Rejected)
	assert.Empty(t, q.Rejected)

	_, err = svc.ReviewQueue(context.Background(), sarahSounds, 1)
	assert.ErrorIs(t, err, port.ErrForbidden)
}

func TestReview(t *testing.T) {
	svc, s := seededUseCase(t, nil)
	ctx := context.Background()

	sub, err := svc.Review(ctx, johnBeats, 2, domain.SubmissionStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusApproved, sub.Status)
	require.NotNil(t, sub.ReviewedAt)

	sub, err = svc.Review(ctx, johnBeats, 2, domain.SubmissionStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusRejected, sub.Status)

	stored, ok := s.Submission(ctx, 2)
	require.True(t, ok)
	assert.Equal(t, domain.SubmissionStatusRejected, stored.Status)
}

func TestReviewRejectsBadInput(t *testing.T) {
	svc, _ := seededUseCase(t, nil)
	ctx := context.Background()

	_, err := svc.Review(ctx, johnBeats, 2, domain.SubmissionStatusPending)
	assert.ErrorIs(t, err, port.ErrInvalidStatus)

	_, err = svc.Review(ctx, johnBeats, 404, domain.SubmissionStatusApproved)
	assert.ErrorIs(t, err, port.ErrNotFound)

	// submission 4 belongs to campaign 3, owned by musician 2
	_, err = svc.Review(ctx, johnBeats, 4, domain.SubmissionStatusRejected)
	assert.ErrorIs(t, err, port.ErrForbidden)

	_, err = svc.Review(ctx, prince, 2, domain.SubmissionStatusApproved)
	assert.ErrorIs(t, err, port.ErrForbidden)
}

func TestBrowseCampaigns(t *testing.T) {
	svc, _ := seededUseCase(t, nil)
	ctx := context.Background()

	all, err := svc.BrowseCampaigns(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := svc.BrowseCampaigns(ctx, "LO-FI")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Chill Beats", got[0].Title)

	// completed campaigns never show up
	got, err = svc.BrowseCampaigns(ctx, "party")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCampaignDetailIncludesOwnSubmission(t *testing.T) {
	svc, _ := seededUseCase(t, nil)
	ctx := context.Background()

	d, err := svc.CampaignDetail(ctx, prince, 1)
	require.NoError(t, err)
	require.NotNil(t, d.Submission)
	assert.Equal(t, int64(1), d.Submission.ID)

	d, err = svc.CampaignDetail(ctx, prince, 3)
	require.NoError(t, err)
	assert.Nil(t, d.Submission)

	_, err = svc.CampaignDetail(ctx, prince, 404)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestSubmitRejectsDuplicates(t *testing.T) {
	svc, s := seededUseCase(t, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, prince, 1, "https://tiktok.com/@x/video/1")
	assert.ErrorIs(t, err, port.ErrDuplicateSubmission)

	sub, err := svc.Submit(ctx, danceQueen, 2, " https://tiktok.com/@dq/video/7 ")
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusPending, sub.Status)
	assert.Equal(t, "https://tiktok.com/@dq/video/7", sub.VideoLink)
	assert.Len(t, s.CreatorSubmissions(ctx, 4), 3)

	_, err = svc.Submit(ctx, danceQueen, 2, "https://tiktok.com/@dq/video/8")
	assert.ErrorIs(t, err, port.ErrDuplicateSubmission)

	_, err = svc.Submit(ctx, danceQueen, 404, "https://tiktok.com/@dq/video/8")
	assert.ErrorIs(t, err, port.ErrNotFound)

	_, err = svc.Submit(ctx, johnBeats, 2, "https://tiktok.com/@jb/video/1")
	assert.ErrorIs(t, err, port.ErrForbidden)
}

// TestConcurrentSubmitAcceptsOne ensures parallel submissions by one
// creator to one campaign store exactly one record.
func TestConcurrentSubmitAcceptsOne(t *testing.T) {
	svc, s := seededUseCase(t, nil)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Submit(ctx, danceQueen, 2, "https://tiktok.com/@dq/video/1"); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			} else if !errors.Is(err, port.ErrDuplicateSubmission) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Len(t, s.SubmissionsForCampaign(ctx, 2), 2)
}

// interleavingStore runs onLookup once, right after the first campaign read,
// and records the campaign status seen at every submission insert.
type interleavingStore struct {
	*store.Store
	fired    atomic.Bool
	onLookup func()

	mu       sync.Mutex
	atInsert []domain.CampaignStatus
}

func (s *interleavingStore) Campaign(ctx context.Context, id int64) (domain.Campaign, bool) {
	c, ok := s.Store.Campaign(ctx, id)
	if s.fired.CompareAndSwap(false, true) {
		s.onLookup()
	}
	return c, ok
}

func (s *interleavingStore) CreateSubmission(ctx context.Context, draft domain.SubmissionDraft) (domain.Submission, error) {
	c, _ := s.Store.Campaign(ctx, draft.CampaignID)
	s.mu.Lock()
	s.atInsert = append(s.atInsert, c.Status)
	s.mu.Unlock()
	return s.Store.CreateSubmission(ctx, draft)
}

func TestSubmitDoesNotRaceCompleteCampaign(t *testing.T) {
	ctx := context.Background()
	base, err := store.Open(ctx, memory.NewKVStore())
	require.NoError(t, err)
	c, err := base.CreateCampaign(ctx, domain.CampaignDraft{MusicianID: johnBeats.ID, Title: "Closing Time"})
	require.NoError(t, err)

	s := &interleavingStore{Store: base}
	svc := NewCampaignUseCase(s, nil, nil)

	completed := make(chan error, 1)
	s.onLookup = func() {
		go func() {
			_, err := svc.CompleteCampaign(ctx, johnBeats, c.ID)
			completed <- err
		}()
		// Give CompleteCampaign the chance to run between the read and the insert.
		time.Sleep(50 * time.Millisecond)
	}

	_, submitErr := svc.Submit(ctx, prince, c.ID, "https://tiktok.com/@prince/video/9")
	require.NoError(t, <-completed)

	got, ok := base.Campaign(ctx, c.ID)
	require.True(t, ok)
	assert.Equal(t, domain.CampaignStatusCompleted, got.Status)

	if submitErr != nil {
		assert.ErrorIs(t, submitErr, port.ErrCampaignNotActive)
		assert.Empty(t, s.atInsert)
		return
	}
	require.Len(t, s.atInsert, 1)
	assert.Equal(t, domain.CampaignStatusActive, s.atInsert[0])
}

func TestCreatorDashboard(t *testing.T) {
	svc, _ := seededUseCase(t, nil)

	got, err := svc.CreatorDashboard(context.Background(), prince)
	require.NoError(t, err)
	assert.Equal(t, domain.CreatorDashboard{
		TotalSubmissions:    2,
		PendingSubmissions:  0,
		ApprovedSubmissions: 1,
		RejectedSubmissions: 1,
		EstimatedEarnings:   500,
		ActiveCampaigns:     2,
	}, got)
}

func TestCreatorSubmissionsUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignStore(t)
	repo.EXPECT().
		CreatorSubmissions(mock.Anything, int64(3)).
		Return([]domain.Submission{{ID: 1, CampaignID: 1, CreatorID: 3}, {ID: 9, CampaignID: 77, CreatorID: 3}})
	repo.EXPECT().
		Campaign(mock.Anything, int64(1)).
		Return(domain.Campaign{ID: 1, Title: "Summer Vibes Beat"}, true)
	repo.EXPECT().
		Campaign(mock.Anything, int64(77)).
		Return(domain.Campaign{}, false)

	svc := NewCampaignUseCase(repo, nil, nil)
	got, err := svc.CreatorSubmissions(context.Background(), prince)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Summer Vibes Beat", got[0].CampaignTitle)
	assert.Equal(t, "Unknown Campaign", got[1].CampaignTitle)
}

func TestCreatorDashboardUsesCampaignRate(t *testing.T) {
	ctx := context.Background()
	svc, s := seededUseCase(t, nil)

	baseline, err := svc.CreatorDashboard(ctx, danceQueen)
	require.NoError(t, err)

	c, err := svc.CreateCampaign(ctx, sarahSounds, port.CampaignInput{
		Title:           "Lo-fi Rain",
		MusicLink:       "https://tiktok.com/music/lofi-rain",
		VideosOrdered:   40,
		PaymentPerVideo: 750,
	})
	require.NoError(t, err)
	sub, err := svc.Submit(ctx, danceQueen, c.ID, "https://tiktok.com/@dq/video/42")
	require.NoError(t, err)
	require.NoError(t, s.ReviewSubmission(ctx, sub.ID, domain.SubmissionStatusApproved))

	got, err := svc.CreatorDashboard(ctx, danceQueen)
	require.NoError(t, err)
	assert.Equal(t, baseline.EstimatedEarnings+750, got.EstimatedEarnings)
	assert.Equal(t, baseline.ApprovedSubmissions+1, got.ApprovedSubmissions)
}
