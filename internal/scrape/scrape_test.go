package scrape

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"ncaa-rosters/internal/fetch"
	"ncaa-rosters/internal/roster"
	"ncaa-rosters/internal/teams"
	"ncaa-rosters/internal/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const platformPage = `<html><body>
<table class="sidearm-table roster-table">
  <tr><th>#</th><th>Name</th><th>Pos.</th></tr>
  <tr><td>1</td><td>Alex Ray</td><td>Goalkeeper</td></tr>
  <tr><td>9</td><td>Tim Cole</td><td>Forward</td></tr>
</table>
</body></html>`

const plainPage = `<html><body><table>
  <tr><th>No.</th><th>Player</th><th>Position</th></tr>
  <tr><td>3</td><td>Marco Rossi</td><td>Defender</td></tr>
</table></body></html>`

const cardPage = `<html><body><ul>
  <li class="roster-card"><span class="roster-card__number">12</span><h3>Leo Mendes</h3><span class="roster-card__position">Forward</span></li>
  <li class="roster-card"><span class="roster-card__number">5</span><h3>Ben Ito</h3><span class="roster-card__position">D</span></li>
</ul></body></html>`

type fakeFetcher struct {
	mutex sync.Mutex
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	f.mutex.Lock()
	f.calls = append(f.calls, url)
	page, ok := f.pages[url]
	f.mutex.Unlock()

	if !ok {
		return nil, &fetch.FetchError{URL: url, Status: 404}
	}
	return roster.ParseDocument(strings.NewReader(page))
}

func testTeams() []teams.Team {
	return []teams.Team{
		{Name: "Platform U", URL: "https://platform.example.com/roster"},
		{Name: "Plain U", URL: "https://plain.example.com/roster"},
		{Name: "Missing U", URL: "https://missing.example.com/roster"},
		{Name: "Cards U", URL: "https://cards.example.com/roster", Strategy: "card-list"},
	}
}

func testFetcher() *fakeFetcher {
	return &fakeFetcher{pages: map[string]string{
		"https://platform.example.com/roster": platformPage,
		"https://plain.example.com/roster":    plainPage,
		"https://cards.example.com/roster":    cardPage,
	}}
}

func TestScrapeAll(t *testing.T) {
	fetcher := testFetcher()
	tel := &telemetry.Recorder{}
	scraper := NewScraper(fetcher, roster.NewRegistry(), tel)

	var events []Event
	results := scraper.ScrapeAll(context.Background(), testTeams(), func(e Event) {
		events = append(events, e)
	})

	require.Len(t, results, 4)

	require.Equal(t, "Platform U", results[0].Team.Name)
	require.Equal(t, "platform", results[0].Result.Strategy)
	require.Len(t, results[0].Result.Entries, 2)

	require.Equal(t, "generic", results[1].Result.Strategy)
	require.Len(t, results[1].Result.Entries, 1)

	var ferr *fetch.FetchError
	require.True(t, errors.As(results[2].Err, &ferr))
	require.NotNil(t, results[2].Result.Entries)
	require.Empty(t, results[2].Result.Entries)
	require.False(t, results[2].Ok())

	require.Equal(t, "card-list", results[3].Result.Strategy)
	require.Len(t, results[3].Result.Entries, 2)

	success, total := Summary(results)
	require.Equal(t, 3, success)
	require.Equal(t, 4, total)

	require.Len(t, events, 8)
	require.Equal(t, EventStart, events[0].Kind)
	require.Equal(t, EventDone, events[1].Kind)
	require.Equal(t, "Platform U", events[1].Result.Team.Name)
	require.Equal(t, 0, events[1].Index)
	require.Equal(t, 4, events[1].Total)

	require.Len(t, tel.Reports("warning", report_scraper_team), 1)
}

func TestScrapeAllParallel(t *testing.T) {
	fetcher := testFetcher()
	scraper := NewScraper(fetcher, roster.NewRegistry(), nil).Parallel(3)

	var mutex sync.Mutex
	done := 0
	results := scraper.ScrapeAll(context.Background(), testTeams(), func(e Event) {
		mutex.Lock()
		defer mutex.Unlock()
		if e.Kind == EventDone {
			done++
		}
	})

	require.Equal(t, 4, done)
	require.Len(t, fetcher.calls, 4)
	// results keep the team order regardless of completion order
	for i, team := range testTeams() {
		require.Equal(t, team.Name, results[i].Team.Name)
	}
	require.Equal(t, "card-list", results[3].Result.Strategy)
	require.Error(t, results[2].Err)
}

func TestScrapeAllCancelled(t *testing.T) {
	fetcher := testFetcher()
	scraper := NewScraper(fetcher, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := scraper.ScrapeAll(ctx, testTeams(), nil)

	require.Len(t, results, 4)
	require.Empty(t, fetcher.calls)
	for _, r := range results {
		require.ErrorIs(t, r.Err, context.Canceled)
		require.NotNil(t, r.Result.Entries)
	}
}

func TestScrapeTeamUnknownStrategy(t *testing.T) {
	tel := &telemetry.Recorder{}
	scraper := NewScraper(testFetcher(), roster.NewRegistry(), tel)

	team := teams.Team{Name: "Plain U", URL: "https://plain.example.com/roster", Strategy: "magic"}
	result := scraper.ScrapeTeam(context.Background(), team)

	// an unknown strategy is reported and the default chain still runs
	require.Len(t, tel.Reports("broken", report_scraper_strategy), 1)
	require.Equal(t, "generic", result.Result.Strategy)
	require.Less(t, result.Duration, time.Minute)
}

func TestScraperDoesNotLeakOverrides(t *testing.T) {
	sites := roster.NewRegistry()
	scraper := NewScraper(testFetcher(), sites, nil)
	scraper.ScrapeAll(context.Background(), testTeams(), nil)

	_, ok := sites.Lookup("cards.example.com")
	require.False(t, ok)
}
