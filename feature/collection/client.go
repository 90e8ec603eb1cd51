package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"waifulist/core/cache"
	"waifulist/core/errs"
	"waifulist/core/reconcile"
)

// Source selects which of a user's lists is the primary character list.
type Source string

const (
	SourceCollection Source = "collection"
	SourceWishlist   Source = "wishlist"
)

// ParseSource parses "collection" or "wishlist". Empty selects the collection.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case "", SourceCollection:
		return SourceCollection, nil
	case SourceWishlist:
		return SourceWishlist, nil
	}
	return "", fmt.Errorf("%w: unknown source %q", errs.ErrInvalidInput, s)
}

// Fetcher is the read surface of the collection service.
type Fetcher interface {
	GetUser(ctx context.Context, id string) (reconcile.User, error)
	GetWishlist(ctx context.Context, id string) ([]reconcile.Character, error)
	FindByAnilist(ctx context.Context, name string) (string, error)
	FindByDiscord(ctx context.Context, name string) (string, error)
}

// Invalidator is implemented by fetchers that cache per user.
type Invalidator interface {
	Invalidate(id string)
}

// refreshingFetcher drops cached entries right before fetching them.
type refreshingFetcher struct {
	Fetcher
	inv Invalidator
}

// refreshing wraps f so user and wishlist lookups skip its cache. Fetchers
// without a cache are returned as is.
func refreshing(f Fetcher) Fetcher {
	inv, ok := f.(Invalidator)
	if !ok {
		return f
	}
	return refreshingFetcher{Fetcher: f, inv: inv}
}

func (r refreshingFetcher) GetUser(ctx context.Context, id string) (reconcile.User, error) {
	r.inv.Invalidate(id)
	return r.Fetcher.GetUser(ctx, id)
}

func (r refreshingFetcher) GetWishlist(ctx context.Context, id string) ([]reconcile.Character, error) {
	r.inv.Invalidate(id)
	return r.Fetcher.GetWishlist(ctx, id)
}

// Client is a REST client for the collection service.
type Client struct {
	baseURL   string
	http      *http.Client
	users     *cache.Store[reconcile.User]
	wishlists *cache.Store[[]reconcile.Character]
}

// NewClient creates a client for baseURL. Fetched users and wishlists are
// cached for ttl.
func NewClient(baseURL string, httpClient *http.Client, ttl time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		users:     cache.New[reconcile.User](ttl),
		wishlists: cache.New[[]reconcile.Character](ttl),
	}
}

// GetUser fetches the profile and collection of the user with the given id.
func (c *Client) GetUser(ctx context.Context, id string) (reconcile.User, error) {
	return c.users.Get(ctx, id, func(ctx context.Context) (reconcile.User, error) {
		var u reconcile.User
		if err := c.getJSON(ctx, "/user/"+url.PathEscape(id), nil, &u); err != nil {
			return reconcile.User{}, fmt.Errorf("get user %s: %w", id, err)
		}
		return u, nil
	})
}

// GetWishlist fetches the wishlist of the user with the given id.
func (c *Client) GetWishlist(ctx context.Context, id string) ([]reconcile.Character, error) {
	return c.wishlists.Get(ctx, id, func(ctx context.Context) ([]reconcile.Character, error) {
		var body struct {
			Characters []reconcile.Character `json:"characters"`
		}
		if err := c.getJSON(ctx, "/user/"+url.PathEscape(id)+"/wishlist", nil, &body); err != nil {
			return nil, fmt.Errorf("get wishlist %s: %w", id, err)
		}
		return body.Characters, nil
	})
}

// FindByAnilist returns the id of the user linked to an AniList handle.
func (c *Client) FindByAnilist(ctx context.Context, name string) (string, error) {
	return c.find(ctx, "anilist", name)
}

// FindByDiscord returns the id of the user with the given Discord username.
func (c *Client) FindByDiscord(ctx context.Context, name string) (string, error) {
	return c.find(ctx, "discord", name)
}

// Invalidate drops the cached profile and wishlist of a user.
func (c *Client) Invalidate(id string) {
	c.users.Invalidate(id)
	c.wishlists.Invalidate(id)
}

// Ping checks that the collection service answers.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", errs.ErrUpstream, resp.StatusCode)
	}
	return nil
}

func (c *Client) find(ctx context.Context, key, name string) (string, error) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.getJSON(ctx, "/user/find", url.Values{key: {name}}, &body); err != nil {
		return "", fmt.Errorf("find user by %s %q: %w", key, name, err)
	}
	if body.ID == "" {
		return "", fmt.Errorf("find user by %s %q: %w", key, name, errs.ErrNotFound)
	}
	return body.ID, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", errs.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", errs.ErrUpstream, err)
	}
	return nil
}
