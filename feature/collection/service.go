package collection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"waifulist/core/errs"
	"waifulist/core/reconcile"
	"waifulist/feature/archive"
	"waifulist/feature/catalog"
	"waifulist/feature/export"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// compareConcurrency bounds parallel compare-user lookups.
const compareConcurrency = 4

// Query is a parsed collection request.
type Query struct {
	User    string
	Search  string
	Sort    reconcile.Sort
	Cap     reconcile.DisplayCap
	MediaID int64
	Compare []string
	Source  Source
	// Refresh bypasses the cached profile and wishlist of the primary user.
	Refresh bool
}

// QueryParams are the raw, unparsed request values.
type QueryParams struct {
	Search  string
	Sort    string
	Reverse bool
	Show    string
	Media   string
	Compare []string
	Source  string
	Refresh bool
}

// ParseQuery validates raw request values. Empty sort and show fall back to
// defSort and defCap. The returned query owns copies of its strings, so it
// stays valid after the request buffers are reused.
func ParseQuery(user string, p QueryParams, defSort reconcile.SortKey, defCap reconcile.DisplayCap) (Query, error) {
	q := Query{
		User:    strings.Clone(strings.TrimSpace(user)),
		Search:  strings.Clone(p.Search),
		Cap:     defCap,
		Refresh: p.Refresh,
	}
	if q.User == "" {
		return Query{}, fmt.Errorf("%w: empty user", errs.ErrInvalidInput)
	}

	q.Sort = reconcile.Sort{Key: defSort, Reversed: p.Reverse}
	if strings.TrimSpace(p.Sort) != "" {
		key, err := reconcile.ParseSortKey(p.Sort)
		if err != nil {
			return Query{}, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
		}
		q.Sort.Key = key
	}

	if strings.TrimSpace(p.Show) != "" {
		c, err := reconcile.ParseDisplayCap(p.Show)
		if err != nil {
			return Query{}, fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
		}
		q.Cap = c
	}

	if m := strings.TrimSpace(p.Media); m != "" {
		id, err := catalog.ParseMediaID(m)
		if err != nil {
			return Query{}, err
		}
		q.MediaID = id
	}

	for _, raw := range p.Compare {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				q.Compare = append(q.Compare, strings.Clone(c))
			}
		}
	}

	source, err := ParseSource(p.Source)
	if err != nil {
		return Query{}, err
	}
	q.Source = source
	return q, nil
}

// UserSummary is the profile part of a listing.
type UserSummary struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Quote          string               `json:"quote,omitempty"`
	AnilistURL     string               `json:"anilist_url,omitempty"`
	DiscordAvatar  string               `json:"discord_avatar,omitempty"`
	Favorite       *reconcile.Character `json:"favorite,omitempty"`
	CharacterCount int                  `json:"character_count"`
}

func summarizeUser(u reconcile.User) UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.DisplayName(),
		Quote:          u.Quote,
		AnilistURL:     u.AnilistURL,
		DiscordAvatar:  u.DiscordAvatar,
		Favorite:       u.Favorite,
		CharacterCount: len(u.Characters),
	}
}

// Listing is the rendered collection view.
type Listing struct {
	User       UserSummary                `json:"user"`
	Source     Source                     `json:"source"`
	Compare    []UserSummary              `json:"compare"`
	Media      int64                      `json:"media,omitempty"`
	Sort       reconcile.Sort             `json:"sort"`
	Show       string                     `json:"show"`
	Characters []reconcile.OwnedCharacter `json:"characters"`
	Summary    reconcile.Summary          `json:"summary"`
	Stale      bool                       `json:"stale"`
	FetchedAt  *time.Time                 `json:"fetched_at,omitempty"`
}

// Service assembles collection views from the collection service, the media
// catalog and the snapshot archive.
type Service struct {
	fetcher    Fetcher
	catalog    catalog.Catalog
	archive    *archive.Store
	exporter   *export.Exporter
	logger     *zap.Logger
	maxCompare int
}

// NewService creates a new collection service. archive and exporter may be
// disabled.
func NewService(fetcher Fetcher, cat catalog.Catalog, store *archive.Store, exporter *export.Exporter, logger *zap.Logger, maxCompare int) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher:    fetcher,
		catalog:    cat,
		archive:    store,
		exporter:   exporter,
		logger:     logger,
		maxCompare: maxCompare,
	}
}

// Resolve resolves free-form user input to a user.
func (s *Service) Resolve(ctx context.Context, input string) (reconcile.User, error) {
	return ResolveUser(ctx, s.fetcher, input)
}

// Open builds a view for q with every upstream lookup done. The boolean
// reports whether the primary user was served from the archive.
func (s *Service) Open(ctx context.Context, q Query) (*View, bool, *time.Time, error) {
	if s.maxCompare > 0 && len(q.Compare) > s.maxCompare {
		return nil, false, nil, fmt.Errorf("%w: at most %d compare users", errs.ErrInvalidInput, s.maxCompare)
	}

	fetcher := s.fetcher
	if q.Refresh {
		fetcher = refreshing(fetcher)
	}

	primary, stale, fetchedAt, err := s.loadPrimary(ctx, fetcher, q.User)
	if err != nil {
		return nil, false, nil, err
	}

	characters := primary.Characters
	if q.Source == SourceWishlist {
		characters, err = fetcher.GetWishlist(ctx, primary.ID)
		if err != nil {
			return nil, false, nil, err
		}
	}

	view := NewView(primary, characters)
	view.SetSearch(q.Search)
	view.SetSort(q.Sort)
	view.SetCap(q.Cap)

	if q.MediaID > 0 {
		roster, err := s.catalog.Roster(ctx, q.MediaID)
		if err != nil {
			return nil, false, nil, err
		}
		view.SetMedia(q.MediaID, roster)
	}

	for _, u := range s.ResolveCompare(ctx, q.Compare) {
		view.AddCompare(u)
	}

	return view, stale, fetchedAt, nil
}

// List renders the collection listing for q.
func (s *Service) List(ctx context.Context, q Query) (*Listing, error) {
	view, stale, fetchedAt, err := s.Open(ctx, q)
	if err != nil {
		return nil, err
	}
	listing := Render(view, q.Source)
	listing.Stale = stale
	listing.FetchedAt = fetchedAt
	return listing, nil
}

// Export renders the listing for q and writes it to object storage.
func (s *Service) Export(ctx context.Context, q Query) (export.Object, error) {
	if !s.exporter.Enabled() {
		return export.Object{}, fmt.Errorf("export: %w", errs.ErrDisabled)
	}
	listing, err := s.List(ctx, q)
	if err != nil {
		return export.Object{}, err
	}
	return s.exporter.Export(ctx, listing.User.ID, listing)
}

// Render renders the current state of a view.
func Render(v *View, source Source) *Listing {
	result, _ := v.Render()

	compare := make([]UserSummary, 0, len(v.Compare()))
	for _, u := range v.Compare() {
		compare = append(compare, summarizeUser(u))
	}

	return &Listing{
		User:       summarizeUser(v.Primary()),
		Source:     source,
		Compare:    compare,
		Media:      v.MediaID(),
		Sort:       v.Sort(),
		Show:       v.Cap().String(),
		Characters: result.Characters,
		Summary:    result.Summary,
	}
}

// ResolveCompare resolves compare inputs concurrently. Inputs that fail to
// resolve are logged and skipped. The result keeps input order without
// duplicate users.
func (s *Service) ResolveCompare(ctx context.Context, inputs []string) []reconcile.User {
	resolved := make([]*reconcile.User, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(compareConcurrency)
	for i, input := range inputs {
		g.Go(func() error {
			u, err := ResolveUser(gctx, s.fetcher, input)
			if err != nil {
				s.logger.Warn("Skipping compare user", zap.String("input", input), zap.Error(err))
				return nil
			}
			resolved[i] = &u
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{}, len(resolved))
	out := make([]reconcile.User, 0, len(resolved))
	for _, u := range resolved {
		if u == nil {
			continue
		}
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, *u)
	}
	return out
}

func (s *Service) loadPrimary(ctx context.Context, fetcher Fetcher, input string) (reconcile.User, bool, *time.Time, error) {
	u, err := ResolveUser(ctx, fetcher, input)
	if err == nil {
		if s.archive.Enabled() {
			if err := s.archive.Save(ctx, u); err != nil {
				s.logger.Warn("Failed to save snapshot", zap.String("user", u.ID), zap.Error(err))
			}
		}
		return u, false, nil, nil
	}

	if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrInvalidInput) || !s.archive.Enabled() {
		return reconcile.User{}, false, nil, err
	}

	snap, fetchedAt, snapErr := s.archive.Load(ctx, strings.TrimSpace(input))
	if snapErr != nil {
		s.logger.Debug("No snapshot to fall back to", zap.String("user", input), zap.Error(snapErr))
		return reconcile.User{}, false, nil, err
	}

	s.logger.Warn("Serving snapshot",
		zap.String("user", snap.ID),
		zap.String("fetched_at", fetchedAt.Format(time.RFC3339)),
		zap.Error(err),
	)
	return snap, true, &fetchedAt, nil
}
