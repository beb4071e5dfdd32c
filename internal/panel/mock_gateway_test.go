package panel

import (
	"context"

	"tokendash/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockGateway implements domain.Gateway for testing
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).(*domain.SearchResult)
	return res, args.Error(1)
}

func (m *MockGateway) GetToken(ctx context.Context, id string) (*domain.Token, error) {
	args := m.Called(ctx, id)
	tok, _ := args.Get(0).(*domain.Token)
	return tok, args.Error(1)
}

func (m *MockGateway) ListTokens(ctx context.Context) ([]domain.Token, error) {
	args := m.Called(ctx)
	tokens, _ := args.Get(0).([]domain.Token)
	return tokens, args.Error(1)
}

func (m *MockGateway) TriggerSync(ctx context.Context, limit int) (*domain.SyncResult, error) {
	args := m.Called(ctx, limit)
	res, _ := args.Get(0).(*domain.SyncResult)
	return res, args.Error(1)
}

func (m *MockGateway) GetHistory(ctx context.Context, id string, limit int) ([]domain.PricePoint, error) {
	args := m.Called(ctx, id, limit)
	points, _ := args.Get(0).([]domain.PricePoint)
	return points, args.Error(1)
}

func (m *MockGateway) GetAnalytics(ctx context.Context) (*domain.AnalyticsSnapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*domain.AnalyticsSnapshot)
	return snap, args.Error(1)
}
