package scrape

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ncaa-rosters/internal/roster"
	"ncaa-rosters/internal/teams"
	"ncaa-rosters/internal/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("ncaa-rosters/internal/scrape")

const (
	report_scraper_team     = "scraper.team"
	report_scraper_strategy = "scraper.strategy"
	report_scraper_pool     = "scraper.pool"
)

// Fetcher retrieves and parses a roster page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

type TeamResult struct {
	Team     teams.Team
	Result   roster.Result
	Err      error
	Duration time.Duration
}

// Ok reports whether at least one player was found for the team.
func (r TeamResult) Ok() bool {
	return r.Err == nil && r.Result.Ok()
}

type EventKind int

const (
	EventStart EventKind = iota
	EventDone
)

// Event describes the progress of a run, Index is the position of the team in
// the team list.
type Event struct {
	Kind   EventKind
	Index  int
	Total  int
	Team   teams.Team
	Result *TeamResult
}

type ProgressFunc = func(Event)

type Scraper struct {
	fetcher  Fetcher
	sites    *roster.Registry
	tel      telemetry.API
	parallel int
}

// NewScraper creates a scraper that uses sites for overrides, sites is copied
// so team level overrides never leak back to the caller.
func NewScraper(fetcher Fetcher, sites *roster.Registry, tel telemetry.API) *Scraper {
	if sites == nil {
		sites = roster.DefaultRegistry()
	}
	if tel == nil {
		tel = telemetry.Nop{}
	}
	return &Scraper{
		fetcher:  fetcher,
		sites:    sites.Clone(),
		tel:      telemetry.NewScopedAPI("scrape", tel),
		parallel: 1,
	}
}

// Parallel sets how many teams may be scraped at the same time, anything
// below 2 scrapes one team after another.
func (s *Scraper) Parallel(n int) *Scraper {
	if n < 1 {
		n = 1
	}
	s.parallel = n
	return s
}

func (s *Scraper) dispatcher(list []teams.Team) roster.Dispatcher {
	sites := s.sites.Clone()
	for _, t := range list {
		if t.Strategy == "" {
			continue
		}
		err := sites.RegisterStrategy(t.Identity(), t.Strategy)
		if err != nil {
			s.tel.ReportBroken(report_scraper_strategy, err, t.Name)
		}
	}
	return roster.NewDispatcher(sites, s.tel)
}

// ScrapeTeam scrapes a single team, a failed fetch yields an empty result
// with Err set.
func (s *Scraper) ScrapeTeam(ctx context.Context, team teams.Team) TeamResult {
	return s.scrapeTeam(ctx, s.dispatcher([]teams.Team{team}), team)
}

func (s *Scraper) scrapeTeam(ctx context.Context, dispatcher roster.Dispatcher, team teams.Team) TeamResult {
	ctx, span := tracer.Start(ctx, "ScrapeTeam")
	span.SetAttributes(attribute.String("team", team.Name))
	defer span.End()

	start := time.Now()
	out := TeamResult{Team: team, Result: roster.Result{Entries: []roster.Entry{}}}

	doc, err := s.fetcher.Fetch(ctx, team.URL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.tel.ReportWarning(report_scraper_team, err, team.Name)
		out.Err = err
		out.Duration = time.Since(start)
		return out
	}

	out.Result = dispatcher.Extract(ctx, doc, team.Identity())
	out.Duration = time.Since(start)
	if !out.Result.Ok() {
		s.tel.ReportWarning(report_scraper_team, fmt.Errorf("no players found"), team.Name)
	}
	return out
}

// ScrapeAll scrapes every team and returns the results in team order. A team
// that fails never stops the run, only a cancelled context does, in which
// case the teams that were not reached carry the context error.
func (s *Scraper) ScrapeAll(ctx context.Context, list []teams.Team, onProgress ProgressFunc) []TeamResult {
	ctx, span := tracer.Start(ctx, "ScrapeAll")
	span.SetAttributes(attribute.Int("teams", len(list)))
	defer span.End()

	if onProgress == nil {
		onProgress = func(Event) {}
	}
	dispatcher := s.dispatcher(list)
	results := make([]TeamResult, len(list))

	var progressMutex sync.Mutex
	run := func(i int) {
		team := list[i]
		progressMutex.Lock()
		onProgress(Event{Kind: EventStart, Index: i, Total: len(list), Team: team})
		progressMutex.Unlock()

		if err := ctx.Err(); err != nil {
			results[i] = TeamResult{
				Team:   team,
				Result: roster.Result{Entries: []roster.Entry{}},
				Err:    err,
			}
		} else {
			results[i] = s.scrapeTeam(ctx, dispatcher, team)
		}

		progressMutex.Lock()
		onProgress(Event{Kind: EventDone, Index: i, Total: len(list), Team: team, Result: &results[i]})
		progressMutex.Unlock()
	}

	if s.parallel <= 1 || len(list) <= 1 {
		for i := range list {
			run(i)
		}
	} else {
		err := s.runPool(list, run)
		if err != nil {
			s.tel.ReportBroken(report_scraper_pool, err)
			for i := range list {
				if results[i].Team.Name == "" {
					run(i)
				}
			}
		}
	}

	success, _ := Summary(results)
	span.SetAttributes(attribute.Int("success", success))
	s.tel.ReportCount("teams.success", int64(success))
	return results
}

func (s *Scraper) runPool(list []teams.Team, run func(i int)) error {
	pool, err := ants.NewPool(s.parallel)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	var submitErr error
	for i := range list {
		workers.Add(1)
		err := pool.Submit(func() {
			defer workers.Done()
			run(i)
		})
		if err != nil {
			workers.Done()
			submitErr = errors.Join(submitErr, fmt.Errorf("submit %s: %w", list[i].Name, err))
		}
	}
	workers.Wait()
	return submitErr
}

// Summary counts the teams that produced at least one player.
func Summary(results []TeamResult) (success, total int) {
	for _, r := range results {
		if r.Ok() {
			success++
		}
	}
	return success, len(results)
}
