package mocks

import (
	"context"

	"waifulist/core/reconcile"
	"waifulist/feature/catalog"

	"github.com/stretchr/testify/mock"
)

// Catalog is a mock implementation of catalog.Catalog.
type Catalog struct {
	mock.Mock
}

func (m *Catalog) Roster(ctx context.Context, mediaID int64) ([]reconcile.Character, error) {
	args := m.Called(ctx, mediaID)
	roster, _ := args.Get(0).([]reconcile.Character)
	return roster, args.Error(1)
}

func (m *Catalog) SearchMedia(ctx context.Context, query string, count int) ([]catalog.Media, error) {
	args := m.Called(ctx, query, count)
	media, _ := args.Get(0).([]catalog.Media)
	return media, args.Error(1)
}
