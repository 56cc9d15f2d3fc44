package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beatboost/internal/adapter/memory"
	"beatboost/internal/adapter/payment"
	"beatboost/internal/adapter/session"
	"beatboost/internal/adapter/store"
	"beatboost/internal/adapter/usecase"
	"beatboost/internal/core/domain"
)

type testServer struct {
	t      *testing.T
	router http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := memory.NewKVStore()
	s, err := store.Open(context.Background(), kv, store.WithLogger(logger))
	require.NoError(t, err)

	svc := usecase.NewCampaignUseCase(s, payment.NewSimulator(time.Millisecond, logger), logger)
	h := NewHandler(svc, session.NewProvider(kv, logger), s, logger)
	return &testServer{t: t, router: h.Router()}
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	ts.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) login(username, role string) {
	ts.t.Helper()
	rec := ts.do(http.MethodPost, "/api/v1/session", map[string]string{"username": username, "role": role})
	require.Equal(ts.t, http.StatusOK, rec.Code, rec.Body.String())
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	loading := NewHandler(nil, nil, store.New(memory.NewKVStore()), slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec = httptest.NewRecorder()
	loading.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAPIUnavailableWhileLoading(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := memory.NewKVStore()
	s := store.New(kv, store.WithLogger(logger))
	svc := usecase.NewCampaignUseCase(s, payment.NewSimulator(time.Millisecond, logger), logger)
	ts := &testServer{t: t, router: NewHandler(svc, session.NewProvider(kv, logger), s, logger).Router()}

	rec := ts.do(http.MethodGet, "/api/v1/campaigns", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	rec = ts.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.NoError(t, s.Load(context.Background()))

	rec = ts.do(http.MethodGet, "/api/v1/campaigns", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.Campaign](t, rec), 2)
	rec = ts.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/session", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodPost, "/api/v1/session", map[string]string{"username": "ghost", "role": "creator"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/api/v1/session", map[string]string{"username": "creator1", "role": "admin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.login("creator1", "creator")
	rec = ts.do(http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "TikTok Prince", decodeBody[domain.Identity](t, rec).Name)

	rec = ts.do(http.MethodDelete, "/api/v1/session", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = ts.do(http.MethodGet, "/api/v1/creator/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMusicianFlow(t *testing.T) {
	ts := newTestServer(t)
	ts.login("musician2", "musician")

	rec := ts.do(http.MethodPost, "/api/v1/campaigns", map[string]any{
		"title":     "Night Drive",
		"musicLink": "https://tiktok.com/music/night-drive-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[domain.Campaign](t, rec)
	assert.Equal(t, int64(2), created.MusicianID)
	assert.Equal(t, 40, created.VideosOrdered)
	assert.Equal(t, int64(20000), created.TotalPayment)
	assert.Equal(t, domain.CampaignStatusActive, created.Status)

	rec = ts.do(http.MethodPost, "/api/v1/campaigns/"+itoa(created.ID)+"/payment", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[domain.PaymentResult](t, rec).Success)

	rec = ts.do(http.MethodGet, "/api/v1/musician/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dash := decodeBody[domain.MusicianDashboard](t, rec)
	assert.Equal(t, 2, dash.TotalCampaigns)
	assert.Equal(t, int64(45000), dash.TotalSpend)

	rec = ts.do(http.MethodPost, "/api/v1/campaigns/"+itoa(created.ID)+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CampaignStatusCompleted, decodeBody[domain.Campaign](t, rec).Status)

	// campaign 1 belongs to musician1
	rec = ts.do(http.MethodGet, "/api/v1/campaigns/1/submissions", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateCampaignValidation(t *testing.T) {
	ts := newTestServer(t)
	ts.login("musician1", "musician")

	cases := map[string]map[string]any{
		"missing title":   {"musicLink": "https://tiktok.com/music/a"},
		"bad link":        {"title": "x", "musicLink": "not a url"},
		"too few videos":  {"title": "x", "musicLink": "https://tiktok.com/music/a", "videosOrdered": 10},
		"negative amount": {"title": "x", "musicLink": "https://tiktok.com/music/a", "paymentPerVideo": -5},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := ts.do(http.MethodPost, "/api/v1/campaigns", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatorCannotCreateCampaign(t *testing.T) {
	ts := newTestServer(t)
	ts.login("creator2", "creator")

	rec := ts.do(http.MethodPost, "/api/v1/campaigns", map[string]any{
		"title":     "Nope",
		"musicLink": "https://tiktok.com/music/nope",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmitAndReview(t *testing.T) {
	ts := newTestServer(t)
	ts.login("creator2", "creator")

	rec := ts.do(http.MethodPost, "/api/v1/campaigns/2/submissions", map[string]string{"videoLink": "https://youtube.com/watch?v=1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/api/v1/campaigns/2/submissions", map[string]string{"videoLink": "https://tiktok.com/@dancequeen/video/555"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sub := decodeBody[domain.Submission](t, rec)
	assert.Equal(t, domain.SubmissionStatusPending, sub.Status)
	assert.Nil(t, sub.ReviewedAt)

	rec = ts.do(http.MethodPost, "/api/v1/campaigns/2/submissions", map[string]string{"videoLink": "https://tiktok.com/@dancequeen/video/556"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(http.MethodPost, "/api/v1/campaigns/3/submissions", map[string]string{"videoLink": "https://tiktok.com/@dancequeen/video/557"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(http.MethodGet, "/api/v1/campaigns/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decodeBody[domain.CampaignDetail](t, rec)
	require.NotNil(t, detail.Submission)
	assert.Equal(t, sub.ID, detail.Submission.ID)

	ts.login("musician1", "musician")

	rec = ts.do(http.MethodPost, "/api/v1/submissions/"+itoa(sub.ID)+"/review", map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/api/v1/submissions/"+itoa(sub.ID)+"/review", map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reviewed := decodeBody[domain.Submission](t, rec)
	assert.Equal(t, domain.SubmissionStatusApproved, reviewed.Status)
	assert.NotNil(t, reviewed.ReviewedAt)

	rec = ts.do(http.MethodPost, "/api/v1/submissions/999999/review", map[string]string{"status": "approved"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(http.MethodGet, "/api/v1/campaigns/2/submissions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	queue := decodeBody[domain.ReviewQueue](t, rec)
	assert.Len(t, queue.Approved, 1)
	assert.Len(t, queue.Rejected, 1)
	assert.Empty(t, queue.Pending)

	ts.login("creator2", "creator")
	rec = ts.do(http.MethodGet, "/api/v1/creator/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dash := decodeBody[domain.CreatorDashboard](t, rec)
	assert.Equal(t, 3, dash.TotalSubmissions)
	assert.Equal(t, 2, dash.ApprovedSubmissions)
	assert.Equal(t, int64(1000), dash.EstimatedEarnings)

	rec = ts.do(http.MethodGet, "/api/v1/creator/submissions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decodeBody[[]domain.CreatorSubmission](t, rec)
	require.Len(t, mine, 3)
	assert.Equal(t, "Chill Beats", mine[2].CampaignTitle)
}

func TestBrowseCampaigns(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/campaigns?q=summer", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]domain.Campaign](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Summer Vibes Beat", got[0].Title)
}

func TestBadPathID(t *testing.T) {
	ts := newTestServer(t)
	ts.login("creator1", "creator")

	rec := ts.do(http.MethodGet, "/api/v1/campaigns/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/api/v1/campaigns/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
