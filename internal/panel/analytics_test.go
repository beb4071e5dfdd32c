package panel

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tokendash/internal/domain"
	"tokendash/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, body string) *domain.AnalyticsSnapshot {
	t.Helper()
	var snap domain.AnalyticsSnapshot
	require.NoError(t, json.Unmarshal([]byte(body), &snap))
	return &snap
}

func TestBuildAnalyticsView(t *testing.T) {
	snap := snapshot(t, `{
		"total_market_cap": {"value": 2300000000000},
		"avg_price": {"value": 1234.567},
		"top_tokens": {"buckets": [
			{"key": "btc", "by_market_cap": {"value": 1300000000000}},
			{"key": "eth", "by_market_cap": {"value": 380000000000}},
			{"key": "doge", "by_market_cap": {"value": 999}}
		]}
	}`)

	view := BuildAnalyticsView(snap)

	assert.Equal(t, "$2.30T", view.TotalMarketCap)
	assert.Equal(t, "$1,234.57", view.AvgPrice)
	assert.Equal(t, 3, view.BucketCount)
	require.Len(t, view.Ranked, 3)
	assert.Equal(t, 1, view.Ranked[0].Position)
	assert.Equal(t, "BTC", view.Ranked[0].Symbol)
	assert.Equal(t, "$1.30T", view.Ranked[0].Value)
	assert.Equal(t, "$380.00B", view.Ranked[1].Value)
	assert.Equal(t, 3, view.Ranked[2].Position)
	assert.Equal(t, "$999.00", view.Ranked[2].Value)
}

func TestBuildAnalyticsView_Partial(t *testing.T) {
	snap := snapshot(t, `{"total_market_cap": null, "top_tokens": null}`)

	view := BuildAnalyticsView(snap)

	assert.Equal(t, "$0.00", view.TotalMarketCap)
	assert.Equal(t, "$0.00", view.AvgPrice)
	assert.Equal(t, 0, view.BucketCount)
	assert.Empty(t, view.Ranked)
}

func TestAnalytics_RefreshLifecycle(t *testing.T) {
	gw := new(MockGateway)
	gw.On("GetAnalytics", mock.Anything).Return(snapshot(t, `{"total_market_cap": null, "top_tokens": null}`), nil).Once()
	gw.On("GetAnalytics", mock.Anything).Return(nil, domain.NewStatusError("get_analytics", 500, "Search failed")).Once()

	a := NewAnalytics(gw, &infra.Metrics{})
	ctx := context.Background()

	a.Update(a.Refresh(ctx)())
	assert.Equal(t, domain.StatusReady, a.Status())

	cmd := a.Refresh(ctx)
	assert.Equal(t, domain.StatusLoading, a.Status())
	a.Update(cmd())

	assert.Equal(t, domain.StatusFailed, a.Status())
	var netErr *domain.NetworkError
	assert.True(t, errors.As(a.Err(), &netErr))

	view, ok := a.View()
	require.True(t, ok, "last summary stays visible after a failed refresh")
	assert.Equal(t, "$0.00", view.TotalMarketCap)
}

func TestPanels_FailureIsLocal(t *testing.T) {
	gw := new(MockGateway)
	gw.On("GetAnalytics", mock.Anything).Return(nil, domain.NewNetworkError("get_analytics", errors.New("refused")))
	gw.On("ListTokens", mock.Anything).Return([]domain.Token{token("bitcoin", 1)}, nil)

	metrics := &infra.Metrics{}
	roster := NewRoster(gw, metrics, 10)
	analytics := NewAnalytics(gw, metrics)
	ctx := context.Background()

	rosterMsg := roster.Refresh(ctx)()
	analyticsMsg := analytics.Refresh(ctx)()

	// Every panel sees every message, as under the UI loop
	for _, msg := range []any{analyticsMsg, rosterMsg} {
		roster.Update(ctx, msg)
		analytics.Update(msg)
	}

	assert.Equal(t, domain.StatusFailed, analytics.Status())
	assert.Equal(t, domain.StatusReady, roster.Status())
	assert.NoError(t, roster.Err())
}
