package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/organvm/analytics-engine/internal/contract"
	"github.com/organvm/analytics-engine/schema"
)

// pageHitLimit caps per-page results to a single page of the API response.
// Pagination beyond that is out of scope.
const pageHitLimit = 100

// GoatCounterClient makes authenticated GET requests against the GoatCounter
// statistics API. One bounded call per endpoint, no retries.
type GoatCounterClient struct {
	cfg        *contract.GoatCounterConfig
	httpClient *http.Client
}

// NewGoatCounterClient creates a client with a 30 second request timeout.
func NewGoatCounterClient(cfg *contract.GoatCounterConfig) *GoatCounterClient {
	return &GoatCounterClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// fetch performs one authenticated GET and decodes the JSON response into out.
func (c *GoatCounterClient) fetch(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.cfg.APIURL() + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("goatcounter %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("goatcounter %s: status %d: %s", endpoint, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("goatcounter %s: decode: %w", endpoint, err)
	}
	return nil
}

// PageHits fetches per-page hit counts for the given date range, in the
// order the API returns them.
func (c *GoatCounterClient) PageHits(ctx context.Context, start, end string) ([]schema.PageStat, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)
	params.Set("limit", strconv.Itoa(pageHitLimit))

	var data struct {
		Hits []schema.PageStat `json:"hits"`
	}
	if err := c.fetch(ctx, "/stats/hits", params, &data); err != nil {
		return nil, err
	}
	return data.Hits, nil
}

// TotalStats fetches site-wide totals for the given date range.
func (c *GoatCounterClient) TotalStats(ctx context.Context, start, end string) (schema.SiteTotals, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)

	var data struct {
		Total struct {
			Count       int `json:"count"`
			CountUnique int `json:"count_unique"`
		} `json:"total"`
	}
	if err := c.fetch(ctx, "/stats/total", params, &data); err != nil {
		return schema.SiteTotals{}, err
	}
	return schema.SiteTotals{
		PageViews:      data.Total.Count,
		UniqueVisitors: data.Total.CountUnique,
	}, nil
}

// Collect assembles a full analytics snapshot for the window ending today.
func (c *GoatCounterClient) Collect(ctx context.Context, days int, now time.Time) (*schema.AnalyticsSnapshot, error) {
	period := window(days, now)

	pages, err := c.PageHits(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	totals, err := c.TotalStats(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	snap := &schema.AnalyticsSnapshot{
		Source:      schema.GoatCounterSource,
		CollectedAt: now.UTC().Format(time.RFC3339),
		Available:   true,
		Period:      period,
		SiteTotals:  totals,
		Pages:       pages,
	}
	snap.Normalize()
	return snap, nil
}

// UnavailableAnalytics returns the placeholder snapshot written when
// GoatCounter is unconfigured or the API call failed. The reason string is
// carried for operators; the aggregator only looks at the available flag.
func UnavailableAnalytics(days int, reason string, now time.Time) *schema.AnalyticsSnapshot {
	return &schema.AnalyticsSnapshot{
		Source:      schema.GoatCounterSource,
		CollectedAt: now.UTC().Format(time.RFC3339),
		Available:   false,
		Reason:      reason,
		Period:      window(days, now),
		Pages:       []schema.PageStat{},
	}
}
