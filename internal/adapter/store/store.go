// Package store keeps campaigns and submissions in memory and mirrors both
// collections into a key/value backend after every mutation.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/lo"

	"beatboost/internal/core/domain"
	"beatboost/internal/core/port"
	"beatboost/internal/db"
)

const (
	CampaignsKey   = "tikTokCampaigns"
	SubmissionsKey = "tikTokSubmissions"

	persistTimeout = 5 * time.Second
)

// Store implements port.CampaignStore. Construct it with New and call Load
// (or use Open) before serving queries.
type Store struct {
	kv     port.KeyValue
	logger *slog.Logger
	now    func() time.Time

	loading atomic.Bool

	mu          sync.RWMutex
	ids         idGenerator
	campaigns   []domain.Campaign
	submissions []domain.Submission
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence failures and mutations.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock replaces time.Now for timestamps and identifiers.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store in the loading state.
func New(kv port.KeyValue, opts ...Option) *Store {
	s := &Store{kv: kv, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.ids.now = s.now
	s.loading.Store(true)
	return s
}

// Open creates a store and loads its state from kv.
func Open(ctx context.Context, kv port.KeyValue, opts ...Option) (*Store, error) {
	s := New(kv, opts...)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Loading reports whether Load has not completed yet.
func (s *Store) Loading() bool {
	return s.loading.Load()
}

// Load adopts the persisted collections. When either key is missing both
// collections are replaced by the seed data, which is written back
// immediately.
func (s *Store) Load(ctx context.Context) error {
	rawCampaigns, haveCampaigns, err := s.kv.Get(ctx, CampaignsKey)
	if err != nil {
		return fmt.Errorf("read campaigns: %w", err)
	}
	rawSubmissions, haveSubmissions, err := s.kv.Get(ctx, SubmissionsKey)
	if err != nil {
		return fmt.Errorf("read submissions: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if haveCampaigns && haveSubmissions {
		var campaigns []domain.Campaign
		if err = json.Unmarshal(rawCampaigns, &campaigns); err != nil {
			return fmt.Errorf("decode campaigns: %w", err)
		}
		var submissions []domain.Submission
		if err = json.Unmarshal(rawSubmissions, &submissions); err != nil {
			return fmt.Errorf("decode submissions: %w", err)
		}
		s.campaigns, s.submissions = campaigns, submissions
	} else {
		s.campaigns, s.submissions = db.SeedCampaigns(), db.SeedSubmissions()
		if err = s.persistLocked(ctx); err != nil {
			return err
		}
		s.logger.Info("seeded default data",
			slog.Int("campaigns", len(s.campaigns)),
			slog.Int("submissions", len(s.submissions)))
	}

	for _, c := range s.campaigns {
		s.ids.observe(c.ID)
	}
	for _, sub := range s.submissions {
		s.ids.observe(sub.ID)
	}
	s.loading.Store(false)
	return nil
}

// persistLocked writes both collections. Callers hold s.mu. The write is
// detached from ctx cancellation: once the in-memory state has changed it
// must reach storage even if the caller has gone away.
func (s *Store) persistLocked(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	campaigns, err := json.Marshal(s.campaigns)
	if err != nil {
		return fmt.Errorf("%w: encode campaigns: %w", port.ErrPersist, err)
	}
	submissions, err := json.Marshal(s.submissions)
	if err != nil {
		return fmt.Errorf("%w: encode submissions: %w", port.ErrPersist, err)
	}
	if err = s.kv.Set(ctx, CampaignsKey, campaigns); err != nil {
		return fmt.Errorf("%w: %w", port.ErrPersist, err)
	}
	if err = s.kv.Set(ctx, SubmissionsKey, submissions); err != nil {
		return fmt.Errorf("%w: %w", port.ErrPersist, err)
	}
	return nil
}

// afterMutation persists and logs a failed write. The in-memory change is
// kept either way.
func (s *Store) afterMutation(ctx context.Context) error {
	if err := s.persistLocked(ctx); err != nil {
		s.logger.Error("persist error", slog.Any("error", err))
		return err
	}
	return nil
}

// CreateCampaign appends an active campaign. Fields are stored as given;
// TotalPayment is not recomputed.
func (s *Store) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Campaign{
		ID:              s.ids.next(),
		MusicianID:      draft.MusicianID,
		Title:           draft.Title,
		MusicLink:       draft.MusicLink,
		Description:     draft.Description,
		Instructions:    draft.Instructions,
		VideosOrdered:   draft.VideosOrdered,
		PaymentPerVideo: draft.PaymentPerVideo,
		TotalPayment:    draft.TotalPayment,
		Status:          domain.CampaignStatusActive,
		CreatedAt:       s.now().UTC(),
	}
	s.campaigns = append(s.campaigns, c)
	return c, s.afterMutation(ctx)
}

// CompleteCampaign marks the campaign completed.
func (s *Store) CompleteCampaign(ctx context.Context, campaignID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, i, ok := lo.FindIndexOf(s.campaigns, func(c domain.Campaign) bool { return c.ID == campaignID })
	if !ok {
		return false, nil
	}
	s.campaigns[i].Status = domain.CampaignStatusCompleted
	return true, s.afterMutation(ctx)
}

func (s *Store) Campaign(_ context.Context, campaignID int64) (domain.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Find(s.campaigns, func(c domain.Campaign) bool { return c.ID == campaignID })
}

func (s *Store) Campaigns(_ context.Context) []domain.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(make([]domain.Campaign, 0, len(s.campaigns)), s.campaigns...)
}

func (s *Store) MusicianCampaigns(_ context.Context, musicianID int64) []domain.Campaign {
	return s.filterCampaigns(func(c domain.Campaign) bool { return c.MusicianID == musicianID })
}

func (s *Store) ActiveCampaigns(_ context.Context) []domain.Campaign {
	return s.filterCampaigns(domain.Campaign.IsActive)
}

func (s *Store) filterCampaigns(keep func(domain.Campaign) bool) []domain.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.campaigns, func(c domain.Campaign, _ int) bool { return keep(c) })
}

// CreateSubmission appends a pending submission. Neither the campaign nor
// an earlier submission by the same creator is checked.
func (s *Store) CreateSubmission(ctx context.Context, draft domain.SubmissionDraft) (domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := domain.Submission{
		ID:          s.ids.next(),
		CampaignID:  draft.CampaignID,
		CreatorID:   draft.CreatorID,
		VideoLink:   draft.VideoLink,
		Status:      domain.SubmissionStatusPending,
		SubmittedAt: s.now().UTC(),
	}
	s.submissions = append(s.submissions, sub)
	return sub, s.afterMutation(ctx)
}

// ReviewSubmission records status and the review time. The last review
// wins; an unknown id changes nothing and persists nothing.
func (s *Store) ReviewSubmission(ctx context.Context, submissionID int64, status domain.SubmissionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, i, ok := lo.FindIndexOf(s.submissions, func(sub domain.Submission) bool { return sub.ID == submissionID })
	if !ok {
		return nil
	}
	reviewedAt := s.now().UTC()
	updated := s.submissions[i]
	updated.Status = status
	updated.ReviewedAt = &reviewedAt
	s.submissions[i] = updated
	return s.afterMutation(ctx)
}

func (s *Store) Submission(_ context.Context, submissionID int64) (domain.Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Find(s.submissions, func(sub domain.Submission) bool { return sub.ID == submissionID })
}

func (s *Store) Submissions(_ context.Context) []domain.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(make([]domain.Submission, 0, len(s.submissions)), s.submissions...)
}

func (s *Store) SubmissionsForCampaign(_ context.Context, campaignID int64) []domain.Submission {
	return s.filterSubmissions(func(sub domain.Submission) bool { return sub.CampaignID == campaignID })
}

func (s *Store) CreatorSubmissions(_ context.Context, creatorID int64) []domain.Submission {
	return s.filterSubmissions(func(sub domain.Submission) bool { return sub.CreatorID == creatorID })
}

func (s *Store) filterSubmissions(keep func(domain.Submission) bool) []domain.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.submissions, func(sub domain.Submission, _ int) bool { return keep(sub) })
}
