package sportmonks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/albapepper/superliga-data/internal/normalize"
)

// fixtureIncludes requests the relations the normalizer feeds on, so that
// numeric goals and lineup shapes are returned when available.
const fixtureIncludes = "participants;scores;formations"

// League is a top-level competition summary from the /leagues listing.
type League struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Season is one time-bounded instance of a league.
type Season struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Year       string `json:"year"`
	StartingAt string `json:"starting_at"`
	IsCurrent  bool   `json:"is_current"`
}

// Label returns a human-readable season identifier for log lines.
func (s Season) Label() string {
	if s.Year != "" {
		return s.Year
	}
	if s.Name != "" {
		return s.Name
	}
	return "?"
}

// ListLeagues fetches the first page of leagues the token can see.
func (c *Client) ListLeagues(ctx context.Context) ([]League, error) {
	resp, err := c.get(ctx, "/leagues", url.Values{
		"per_page": {"100"},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch leagues: %w", err)
	}

	var leagues []League
	if err := json.Unmarshal(resp.Data, &leagues); err != nil {
		return nil, fmt.Errorf("decode leagues: %w", err)
	}
	return leagues, nil
}

// LeagueSeasons fetches a league with its seasons relation included, which
// yields a more complete list than the /seasons endpoint.
func (c *Client) LeagueSeasons(ctx context.Context, leagueID int) ([]Season, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/leagues/%d", leagueID), url.Values{
		"include": {"seasons"},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch league %d seasons: %w", leagueID, err)
	}

	var leagueData struct {
		Seasons []Season `json:"seasons"`
	}
	if err := json.Unmarshal(resp.Data, &leagueData); err != nil {
		return nil, fmt.Errorf("decode league seasons: %w", err)
	}
	return leagueData.Seasons, nil
}

// ProbeSeason issues a minimal one-fixture request to test whether a season
// is queryable with the current token. Entitlements vary by season even
// within one league, so "season exists" and "season is accessible" are
// distinct. Returns the fixture count of the probe page on success; any
// failure means inaccessible.
func (c *Client) ProbeSeason(ctx context.Context, seasonID int) (int, error) {
	resp, err := c.get(ctx, "/fixtures", url.Values{
		"filters":  {fmt.Sprintf("fixtureSeasons:%d", seasonID)},
		"per_page": {"1"},
		"include":  {fixtureIncludes},
	})
	if err != nil {
		return 0, err
	}

	var fixtures []json.RawMessage
	if err := json.Unmarshal(resp.Data, &fixtures); err != nil {
		return 0, fmt.Errorf("decode probe fixtures: %w", err)
	}
	return len(fixtures), nil
}

// SeasonFixtures paginates the fixtures endpoint for one season until the
// upstream reports no further page, or maxPages pages have been requested
// (0 means unbounded). Any page failure aborts the whole fetch with no
// partial result; skipping bad fixtures is the normalizer's job, not the
// fetcher's.
func (c *Client) SeasonFixtures(ctx context.Context, seasonID, perPage, maxPages int) ([]normalize.RawFixture, error) {
	params := url.Values{
		"filters":  {fmt.Sprintf("fixtureSeasons:%d", seasonID)},
		"include":  {fixtureIncludes},
		"per_page": {strconv.Itoa(perPage)},
	}

	var fixtures []normalize.RawFixture
	page := 1

	for {
		if maxPages > 0 && page > maxPages {
			c.logger.Info("reached max pages limit, stopping early", "season_id", seasonID, "max_pages", maxPages)
			break
		}

		params.Set("page", strconv.Itoa(page))
		resp, err := c.get(ctx, "/fixtures", params)
		if err != nil {
			return nil, fmt.Errorf("fetch fixtures page %d for season %d: %w", page, seasonID, err)
		}

		var batch []normalize.RawFixture
		if err := json.Unmarshal(resp.Data, &batch); err != nil {
			return nil, fmt.Errorf("decode fixtures page %d for season %d: %w", page, seasonID, err)
		}

		fixtures = append(fixtures, batch...)
		c.logger.Info("fetched fixtures page", "season_id", seasonID, "page", page, "count", len(batch))

		if resp.Pagination == nil || !resp.Pagination.HasMore {
			break
		}
		page++
	}

	return fixtures, nil
}
