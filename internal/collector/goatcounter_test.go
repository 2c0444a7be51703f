package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organvm/analytics-engine/internal/contract"
)

func newStatsServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/stats/hits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2026-02-17", r.URL.Query().Get("start"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"hits": [
				{"path": "/essays/meta-system/01-orchestrate/", "title": "Orchestrate", "count": 450, "count_unique": 300},
				{"path": "/about/", "title": "About", "count": 80, "count_unique": 60}
			]
		}`))
	})
	mux.HandleFunc("/stats/total", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"total": {"count": 1077, "count_unique": 782}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *GoatCounterClient {
	cfg := contract.NewGoatCounterConfig("organvm", "test-token")
	cfg.BaseURL = srv.URL
	return NewGoatCounterClient(cfg)
}

func TestGoatCounterCollect(t *testing.T) {
	client := newTestClient(newStatsServer(t))

	snap, err := client.Collect(context.Background(), 7, testNow)
	require.NoError(t, err)

	assert.True(t, snap.Available)
	assert.Equal(t, "goatcounter", snap.Source)
	assert.Equal(t, "2026-02-24T12:00:00Z", snap.CollectedAt)
	assert.Equal(t, "2026-02-17", snap.Period.Start)
	assert.Equal(t, 1077, snap.SiteTotals.PageViews)
	assert.Equal(t, 782, snap.SiteTotals.UniqueVisitors)
	require.Len(t, snap.Pages, 2)
	assert.Equal(t, "/essays/meta-system/01-orchestrate/", snap.Pages[0].Path)
	assert.Equal(t, 450, snap.Pages[0].Count)
}

func TestGoatCounterCollectEmptyHits(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/stats/hits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hits": []}`))
	})
	mux.HandleFunc("/stats/total", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total": {"count": 0, "count_unique": 0}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	snap, err := newTestClient(srv).Collect(context.Background(), 7, testNow)
	require.NoError(t, err)
	assert.NotNil(t, snap.Pages)
	assert.Empty(t, snap.Pages)
}

func TestGoatCounterCollectServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient(srv).Collect(context.Background(), 7, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGoatCounterCollectBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient(srv).Collect(context.Background(), 7, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
