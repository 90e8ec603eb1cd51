package collection

import (
	"fmt"
	"testing"

	"waifulist/core/errs"
	"waifulist/core/reconcile"
	"waifulist/feature/collection/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveUser(t *testing.T) {
	kar := reconcile.User{ID: "206794847581896705", DiscordUsername: "kar"}
	notFound := fmt.Errorf("lookup: %w", errs.ErrNotFound)

	t.Run("Snowflake", func(t *testing.T) {
		f := new(mocks.Fetcher)
		f.On("GetUser", mock.Anything, "206794847581896705").Return(kar, nil)

		u, err := ResolveUser(t.Context(), f, " 206794847581896705 ")
		require.NoError(t, err)
		assert.Equal(t, kar, u)
		f.AssertNotCalled(t, "FindByDiscord", mock.Anything, mock.Anything)
	})

	t.Run("Mention", func(t *testing.T) {
		f := new(mocks.Fetcher)
		f.On("GetUser", mock.Anything, "206794847581896705").Return(kar, nil)

		_, err := ResolveUser(t.Context(), f, "<@206794847581896705>")
		require.NoError(t, err)
	})

	t.Run("Discord Username", func(t *testing.T) {
		f := new(mocks.Fetcher)
		f.On("FindByDiscord", mock.Anything, "kar").Return(kar.ID, nil)
		f.On("GetUser", mock.Anything, kar.ID).Return(kar, nil)

		u, err := ResolveUser(t.Context(), f, "kar")
		require.NoError(t, err)
		assert.Equal(t, kar.ID, u.ID)
		f.AssertNotCalled(t, "FindByAnilist", mock.Anything, mock.Anything)
	})

	t.Run("AniList Handle", func(t *testing.T) {
		f := new(mocks.Fetcher)
		f.On("FindByDiscord", mock.Anything, "karitham").Return("", notFound)
		f.On("FindByAnilist", mock.Anything, "karitham").Return(kar.ID, nil)
		f.On("GetUser", mock.Anything, kar.ID).Return(kar, nil)

		u, err := ResolveUser(t.Context(), f, "karitham")
		require.NoError(t, err)
		assert.Equal(t, kar.ID, u.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		f := new(mocks.Fetcher)
		f.On("FindByDiscord", mock.Anything, "ghost").Return("", notFound)
		f.On("FindByAnilist", mock.Anything, "ghost").Return("", notFound)

		_, err := ResolveUser(t.Context(), f, "ghost")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		f := new(mocks.Fetcher)
		f.On("FindByDiscord", mock.Anything, "kar").Return("", fmt.Errorf("%w: status 503", errs.ErrUpstream))

		_, err := ResolveUser(t.Context(), f, "kar")
		assert.ErrorIs(t, err, errs.ErrUpstream)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ResolveUser(t.Context(), new(mocks.Fetcher), "  ")
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}
