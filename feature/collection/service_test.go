package collection

import (
	"fmt"
	"testing"
	"time"
	"unsafe"

	"waifulist/core/database"
	"waifulist/core/errs"
	"waifulist/core/reconcile"
	"waifulist/feature/archive"
	catalogmocks "waifulist/feature/catalog/mocks"
	"waifulist/feature/collection/mocks"
	"waifulist/feature/export"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

var (
	primary = reconcile.User{
		ID:              "100000001",
		DiscordUsername: "primary",
		Characters: []reconcile.Character{
			{ID: "1", Name: "Rem"},
			{ID: "2", Name: "Emilia"},
		},
	}
	friend = reconcile.User{
		ID:              "100000002",
		DiscordUsername: "friend",
		Characters:      []reconcile.Character{{ID: "1", Name: "Rem"}},
	}
)

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery(" 42 ", QueryParams{
		Search:  "re",
		Sort:    "name",
		Reverse: true,
		Show:    "all",
		Media:   "21",
		Compare: []string{"a, b", "", "c"},
		Source:  "wishlist",
	}, reconcile.SortDate, reconcile.DefaultDisplayCap)
	require.NoError(t, err)

	want := Query{
		User:    "42",
		Search:  "re",
		Sort:    reconcile.Sort{Key: reconcile.SortName, Reversed: true},
		Cap:     reconcile.ShowAll,
		MediaID: 21,
		Compare: []string{"a", "b", "c"},
		Source:  SourceWishlist,
	}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Errorf("ParseQuery() mismatch (-want +got):\n%s", diff)
	}

	q, err = ParseQuery("42", QueryParams{}, reconcile.SortID, 100)
	require.NoError(t, err)
	assert.Equal(t, reconcile.Sort{Key: reconcile.SortID}, q.Sort)
	assert.Equal(t, reconcile.DisplayCap(100), q.Cap)
	assert.Equal(t, SourceCollection, q.Source)

	for _, bad := range []QueryParams{
		{Sort: "rating"},
		{Show: "0"},
		{Media: "-3"},
		{Source: "trades"},
	} {
		_, err := ParseQuery("42", bad, reconcile.SortDate, 200)
		assert.ErrorIs(t, err, errs.ErrInvalidInput, "%+v", bad)
	}

	_, err = ParseQuery(" ", QueryParams{}, reconcile.SortDate, 200)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestParseQuery_CopiesRequestValues(t *testing.T) {
	user := []byte("100000001")
	compare := []byte("100000002")

	q, err := ParseQuery(unsafe.String(&user[0], len(user)), QueryParams{
		Compare: []string{unsafe.String(&compare[0], len(compare))},
	}, reconcile.SortDate, 200)
	require.NoError(t, err)

	copy(user, "xxxxxxxxx")
	copy(compare, "yyyyyyyyy")

	assert.Equal(t, "100000001", q.User)
	assert.Equal(t, []string{"100000002"}, q.Compare)
}

func TestService_ListWithCompareAndMedia(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	f := new(mocks.Fetcher)
	f.On("GetUser", mock.Anything, primary.ID).Return(primary, nil)
	f.On("GetUser", mock.Anything, friend.ID).Return(friend, nil)
	f.On("FindByDiscord", mock.Anything, "friend").Return(friend.ID, nil)
	f.On("FindByDiscord", mock.Anything, "ghost").Return("", errs.ErrNotFound)
	f.On("FindByAnilist", mock.Anything, "ghost").Return("", errs.ErrNotFound)

	cat := new(catalogmocks.Catalog)
	cat.On("Roster", mock.Anything, int64(7)).Return([]reconcile.Character{
		{ID: "1", Name: "Rem"},
		{ID: "3", Name: "Ram"},
	}, nil)

	svc := NewService(f, cat, archive.NewStore(nil), export.NewExporter(nil, "", ""), zap.NewNop(), 8)

	listing, err := svc.List(t.Context(), Query{
		User:    primary.ID,
		Sort:    reconcile.Sort{Key: reconcile.SortID},
		Cap:     reconcile.ShowAll,
		MediaID: 7,
		Compare: []string{"friend", "ghost", friend.ID, primary.ID},
		Source:  SourceCollection,
	})
	require.NoError(t, err)

	assert.False(t, listing.Stale)
	assert.Equal(t, "primary", listing.User.Name)
	require.Len(t, listing.Compare, 1, "duplicates, the primary user and unknown users are dropped")
	assert.Equal(t, friend.ID, listing.Compare[0].ID)
	assert.Equal(t, int64(7), listing.Media)

	want := []reconcile.OwnedCharacter{
		{Character: reconcile.Character{ID: "1", Name: "Rem"}, Owners: []string{primary.ID, friend.ID}},
		{Character: reconcile.Character{ID: "3", Name: "Ram"}, Missing: true},
	}
	if diff := cmp.Diff(want, listing.Characters); diff != "" {
		t.Errorf("characters mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, reconcile.Summary{Owned: 1, Missing: 1, Shared: 1, Total: 2, Shown: 2}, listing.Summary)
}

func TestService_Wishlist(t *testing.T) {
	f := new(mocks.Fetcher)
	f.On("GetUser", mock.Anything, primary.ID).Return(primary, nil)
	f.On("GetWishlist", mock.Anything, primary.ID).Return([]reconcile.Character{{ID: "9", Name: "Asuka"}}, nil)

	svc := NewService(f, new(catalogmocks.Catalog), archive.NewStore(nil), nil, nil, 0)
	listing, err := svc.List(t.Context(), Query{User: primary.ID, Cap: reconcile.ShowAll, Source: SourceWishlist})
	require.NoError(t, err)

	require.Len(t, listing.Characters, 1)
	assert.Equal(t, "Asuka", listing.Characters[0].Name)
	assert.Equal(t, SourceWishlist, listing.Source)
}

func TestService_WishlistOwnersComeFromCollections(t *testing.T) {
	f := new(mocks.Fetcher)
	f.On("GetUser", mock.Anything, primary.ID).Return(primary, nil)
	f.On("GetUser", mock.Anything, "100000003").Return(reconcile.User{
		ID:         "100000003",
		Characters: []reconcile.Character{{ID: "9", Name: "Asuka"}},
	}, nil)
	f.On("GetWishlist", mock.Anything, primary.ID).Return([]reconcile.Character{
		{ID: "9", Name: "Asuka"},
		{ID: "1", Name: "Rem"},
	}, nil)

	svc := NewService(f, new(catalogmocks.Catalog), archive.NewStore(nil), nil, zap.NewNop(), 0)
	listing, err := svc.List(t.Context(), Query{
		User:    primary.ID,
		Sort:    reconcile.Sort{Key: reconcile.SortID},
		Cap:     reconcile.ShowAll,
		Compare: []string{"100000003"},
		Source:  SourceWishlist,
	})
	require.NoError(t, err)

	want := []reconcile.OwnedCharacter{
		{Character: reconcile.Character{ID: "1", Name: "Rem"}},
		{Character: reconcile.Character{ID: "9", Name: "Asuka"}, Owners: []string{"100000003"}},
	}
	if diff := cmp.Diff(want, listing.Characters); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestService_RefreshBypassesCache(t *testing.T) {
	srv, calls := newUpstream(t)
	client := NewClient(srv.URL, srv.Client(), time.Hour)
	svc := NewService(client, new(catalogmocks.Catalog), archive.NewStore(nil), nil, zap.NewNop(), 0)

	q := Query{User: "206794847581896705", Cap: reconcile.ShowAll, Source: SourceCollection}
	for range 2 {
		_, err := svc.List(t.Context(), q)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load(), "repeat lists are served from the cache")

	q.Refresh = true
	listing, err := svc.List(t.Context(), q)
	require.NoError(t, err)
	assert.Equal(t, "kar", listing.User.Name)
	assert.Equal(t, int32(2), calls.Load())

	q.Refresh = false
	_, err = svc.List(t.Context(), q)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "a refresh repopulates the cache")
}

func TestService_RefreshInvalidatesWishlist(t *testing.T) {
	f := new(mocks.Fetcher)
	f.On("Invalidate", primary.ID).Return()
	f.On("GetUser", mock.Anything, primary.ID).Return(primary, nil)
	f.On("GetWishlist", mock.Anything, primary.ID).Return([]reconcile.Character{{ID: "9", Name: "Asuka"}}, nil)

	svc := NewService(f, new(catalogmocks.Catalog), archive.NewStore(nil), nil, zap.NewNop(), 0)
	_, err := svc.List(t.Context(), Query{User: primary.ID, Cap: reconcile.ShowAll, Source: SourceWishlist, Refresh: true})
	require.NoError(t, err)

	f.AssertNumberOfCalls(t, "Invalidate", 2)
}

func TestService_TooManyCompareUsers(t *testing.T) {
	svc := NewService(new(mocks.Fetcher), new(catalogmocks.Catalog), nil, nil, nil, 1)
	_, err := svc.List(t.Context(), Query{User: primary.ID, Compare: []string{"a", "b"}})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestService_MediaNotFound(t *testing.T) {
	f := new(mocks.Fetcher)
	f.On("GetUser", mock.Anything, primary.ID).Return(primary, nil)
	cat := new(catalogmocks.Catalog)
	cat.On("Roster", mock.Anything, int64(404)).Return(nil, fmt.Errorf("roster: %w", errs.ErrNotFound))

	svc := NewService(f, cat, nil, nil, nil, 0)
	_, err := svc.List(t.Context(), Query{User: primary.ID, MediaID: 404})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func newArchive(t *testing.T) *archive.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	store := archive.NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestService_SnapshotFallback(t *testing.T) {
	store := newArchive(t)

	// A successful fetch stores a snapshot
	ok := new(mocks.Fetcher)
	ok.On("GetUser", mock.Anything, primary.ID).Return(primary, nil)
	_, err := NewService(ok, nil, store, nil, nil, 0).List(t.Context(), Query{User: primary.ID, Cap: reconcile.ShowAll})
	require.NoError(t, err)

	down := new(mocks.Fetcher)
	down.On("GetUser", mock.Anything, primary.ID).Return(reconcile.User{}, fmt.Errorf("%w: status 503", errs.ErrUpstream))
	down.On("GetUser", mock.Anything, "100000009").Return(reconcile.User{}, fmt.Errorf("%w: status 503", errs.ErrUpstream))
	down.On("GetUser", mock.Anything, "100000404").Return(reconcile.User{}, errs.ErrNotFound)
	svc := NewService(down, nil, store, nil, nil, 0)

	listing, err := svc.List(t.Context(), Query{User: primary.ID, Cap: reconcile.ShowAll})
	require.NoError(t, err)
	assert.True(t, listing.Stale)
	require.NotNil(t, listing.FetchedAt)
	assert.WithinDuration(t, time.Now(), *listing.FetchedAt, time.Minute)
	assert.Len(t, listing.Characters, 2)

	_, err = svc.List(t.Context(), Query{User: "100000009"})
	assert.ErrorIs(t, err, errs.ErrUpstream, "no snapshot keeps the upstream error")

	_, err = svc.List(t.Context(), Query{User: "100000404"})
	assert.ErrorIs(t, err, errs.ErrNotFound, "unknown users never fall back")
}

func TestService_ExportDisabled(t *testing.T) {
	svc := NewService(new(mocks.Fetcher), nil, nil, export.NewExporter(nil, "", ""), nil, 0)
	_, err := svc.Export(t.Context(), Query{User: primary.ID})
	assert.ErrorIs(t, err, errs.ErrDisabled)
}
