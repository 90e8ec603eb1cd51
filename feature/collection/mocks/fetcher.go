package mocks

import (
	"context"

	"waifulist/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Fetcher is a mock implementation of collection.Fetcher.
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) GetUser(ctx context.Context, id string) (reconcile.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(reconcile.User), args.Error(1)
}

func (m *Fetcher) GetWishlist(ctx context.Context, id string) ([]reconcile.Character, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]reconcile.Character)
	return list, args.Error(1)
}

func (m *Fetcher) FindByAnilist(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *Fetcher) FindByDiscord(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *Fetcher) Invalidate(id string) {
	m.Called(id)
}
