package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Token represents a tracked cryptocurrency as served by the backend
type Token struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	MarketCap    decimal.Decimal `json:"market_cap"`
	Volume24h    decimal.Decimal `json:"volume_24h"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PricePoint is a single sample of a token's price history
type PricePoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Price     decimal.Decimal `json:"price"`
}

// SearchResult is the payload of a full-text token search
type SearchResult struct {
	Query   string  `json:"query"`
	Results []Token `json:"results"`
	Count   int     `json:"count"`
}

// SyncResult reports how many tokens the backend ingested from upstream
type SyncResult struct {
	Message string `json:"message"`
	Synced  int    `json:"synced"`
	Total   int    `json:"total"`
}

// MetricValue is a single-value aggregation. Value is invalid when the
// backend had nothing to aggregate.
type MetricValue struct {
	Value decimal.NullDecimal `json:"value"`
}

// Bucket is one entry of the top-N market cap breakdown
type Bucket struct {
	Key         string       `json:"key"`
	ByMarketCap *MetricValue `json:"by_market_cap"`
}

// MarketCap returns the bucket's aggregated market cap, zero if absent
func (b Bucket) MarketCap() decimal.Decimal {
	return b.ByMarketCap.OrZero()
}

// TermsAggregation holds the ranked buckets, already sorted by the backend
type TermsAggregation struct {
	Buckets []Bucket `json:"buckets"`
}

// AnalyticsSnapshot mirrors the backend's aggregation result.
// Every field may be missing; use the accessors for zero defaults.
type AnalyticsSnapshot struct {
	TotalMarketCap *MetricValue      `json:"total_market_cap"`
	AvgPrice       *MetricValue      `json:"avg_price"`
	TopTokens      *TermsAggregation `json:"top_tokens"`
}

// OrZero returns the metric's value or zero when missing
func (m *MetricValue) OrZero() decimal.Decimal {
	if m == nil || !m.Value.Valid {
		return decimal.Zero
	}
	return m.Value.Decimal
}

// TotalMarketCapValue returns the summed market cap, zero if absent
func (a *AnalyticsSnapshot) TotalMarketCapValue() decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	return a.TotalMarketCap.OrZero()
}

// AvgPriceValue returns the average token price, zero if absent
func (a *AnalyticsSnapshot) AvgPriceValue() decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	return a.AvgPrice.OrZero()
}

// Buckets returns the ranked buckets, nil if absent
func (a *AnalyticsSnapshot) Buckets() []Bucket {
	if a == nil || a.TopTokens == nil {
		return nil
	}
	return a.TopTokens.Buckets
}
