package domain

import (
	"context"
)

// Gateway defines the request/response boundary to the aggregation backend.
// Every call is a single round trip; failures are returned, never retried.
type Gateway interface {
	Search(ctx context.Context, query string) (*SearchResult, error)
	GetToken(ctx context.Context, id string) (*Token, error)
	ListTokens(ctx context.Context) ([]Token, error)
	TriggerSync(ctx context.Context, limit int) (*SyncResult, error)
	GetHistory(ctx context.Context, id string, limit int) ([]PricePoint, error)
	GetAnalytics(ctx context.Context) (*AnalyticsSnapshot, error)
}
