package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"waifulist/core/cache"
	"waifulist/core/errs"
	"waifulist/core/reconcile"
)

const rosterQuery = `query ($id: Int, $page: Int, $perPage: Int) {
  Media(id: $id) {
    characters(perPage: $perPage, page: $page) {
      nodes { id name { full } image { large } }
      pageInfo { hasNextPage }
    }
  }
}`

const searchQuery = `query ($search: String, $perPage: Int) {
  Page(perPage: $perPage) {
    media(search: $search) { id title { romaji } coverImage { large } }
  }
}`

// Media is one anime or manga entry of the catalog.
type Media struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Cover string `json:"cover"`
}

// Catalog is the read surface of the media catalog.
type Catalog interface {
	Roster(ctx context.Context, mediaID int64) ([]reconcile.Character, error)
	SearchMedia(ctx context.Context, query string, count int) ([]Media, error)
}

// Client queries the AniList GraphQL API.
type Client struct {
	url      string
	http     *http.Client
	pageSize int
	maxPages int
	rosters  *cache.Store[[]reconcile.Character]
}

// NewClient creates a catalog client from cfg.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 25
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 1
	}
	return &Client{
		url:      cfg.URL,
		http:     httpClient,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
		rosters:  cache.New[[]reconcile.Character](time.Duration(cfg.CacheTTLSeconds) * time.Second),
	}
}

type rosterPage struct {
	Media *struct {
		Characters struct {
			Nodes []struct {
				ID   json.Number `json:"id"`
				Name struct {
					Full string `json:"full"`
				} `json:"name"`
				Image struct {
					Large string `json:"large"`
				} `json:"image"`
			} `json:"nodes"`
			PageInfo struct {
				HasNextPage bool `json:"hasNextPage"`
			} `json:"pageInfo"`
		} `json:"characters"`
	} `json:"Media"`
}

// Roster returns every character of a media, following pagination up to the
// configured page limit.
func (c *Client) Roster(ctx context.Context, mediaID int64) ([]reconcile.Character, error) {
	key := strconv.FormatInt(mediaID, 10)
	return c.rosters.Get(ctx, key, func(ctx context.Context) ([]reconcile.Character, error) {
		roster := make([]reconcile.Character, 0, c.pageSize)
		for page := 1; page <= c.maxPages; page++ {
			var data rosterPage
			vars := map[string]any{"id": mediaID, "page": page, "perPage": c.pageSize}
			if err := c.query(ctx, rosterQuery, vars, &data); err != nil {
				return nil, fmt.Errorf("roster of media %d: %w", mediaID, err)
			}
			if data.Media == nil {
				return nil, fmt.Errorf("roster of media %d: %w", mediaID, errs.ErrNotFound)
			}

			for _, n := range data.Media.Characters.Nodes {
				roster = append(roster, reconcile.Character{
					ID:    reconcile.CharacterID(n.ID.String()),
					Name:  n.Name.Full,
					Image: n.Image.Large,
				})
			}
			if !data.Media.Characters.PageInfo.HasNextPage {
				break
			}
		}
		return roster, nil
	})
}

// SearchMedia returns up to count media whose title matches query.
func (c *Client) SearchMedia(ctx context.Context, query string, count int) ([]Media, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty media search", errs.ErrInvalidInput)
	}
	if count <= 0 {
		count = 10
	}

	var data struct {
		Page struct {
			Media []struct {
				ID    int64 `json:"id"`
				Title struct {
					Romaji string `json:"romaji"`
				} `json:"title"`
				CoverImage struct {
					Large string `json:"large"`
				} `json:"coverImage"`
			} `json:"media"`
		} `json:"Page"`
	}
	if err := c.query(ctx, searchQuery, map[string]any{"search": query, "perPage": count}, &data); err != nil {
		return nil, fmt.Errorf("search media %q: %w", query, err)
	}

	out := make([]Media, 0, len(data.Page.Media))
	for _, m := range data.Page.Media {
		out = append(out, Media{ID: m.ID, Title: m.Title.Romaji, Cover: m.CoverImage.Large})
	}
	return out, nil
}

// Ping checks that the catalog answers a trivial query.
func (c *Client) Ping(ctx context.Context) error {
	var data json.RawMessage
	return c.query(ctx, `query { SiteStatistics { users(perPage: 1) { pageInfo { total } } } }`, nil, &data)
}

type gqlError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (c *Client) query(ctx context.Context, query string, vars map[string]any, out any) error {
	payload, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	if err != nil {
		return fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUpstream, err)
	}
	defer resp.Body.Close()

	var body struct {
		Data   json.RawMessage `json:"data"`
		Errors []gqlError      `json:"errors"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", errs.ErrUpstream, err)
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		excerpt := raw
		if len(excerpt) > 4096 {
			excerpt = excerpt[:4096]
		}
		return fmt.Errorf("%w: status %d: %s", errs.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	if len(body.Errors) > 0 {
		// AniList reports unknown media as a 404 GraphQL error with Media: null
		if body.Errors[0].Status == http.StatusNotFound {
			return errs.ErrNotFound
		}
		return fmt.Errorf("%w: %s", errs.ErrUpstream, body.Errors[0].Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", errs.ErrUpstream, resp.StatusCode)
	}
	if len(body.Data) == 0 {
		return fmt.Errorf("%w: empty data", errs.ErrUpstream)
	}

	if err := json.Unmarshal(body.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %v", errs.ErrUpstream, err)
	}
	return nil
}
