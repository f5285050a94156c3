package commands

import (
	"fmt"
	"log/slog"
	"time"

	"ncaa-rosters/cmd/roster-cli/globals"
	"ncaa-rosters/internal/fetch"
	"ncaa-rosters/internal/scrape"
	"ncaa-rosters/internal/store"
	"ncaa-rosters/internal/teams"
	"ncaa-rosters/lib/restyutil"
	"ncaa-rosters/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	scrapeTeams    []string
	scrapeOut      string
	scrapeDb       string
	scrapeDump     string
	scrapeParallel int
)

func init() {
	scrapeCmd.Flags().StringSliceVarP(&scrapeTeams, "team", "t", nil, "Only scrape the teams matching these names, can be repeated.")
	scrapeCmd.Flags().StringVarP(&scrapeOut, "out", "o", "", "The json file to write rosters to, overrides the config.")
	scrapeCmd.Flags().StringVar(&scrapeDb, "db", "", "A sqlite database to also write rosters to.")
	scrapeCmd.Flags().StringVar(&scrapeDump, "dump", "", "A directory to write every http exchange to.")
	scrapeCmd.Flags().IntVarP(&scrapeParallel, "parallel", "p", 0, "How many teams to scrape at once.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--team <name>] [--out <rosters.json>] [--db <rosters.db>]",
	Short: "Scrapes the configured teams and writes their rosters.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		g := globals.Get(ctx)
		cfg := g.Config

		list := cfg.Teams
		if len(scrapeTeams) > 0 {
			var unmatched []string
			list, unmatched = teams.Filter(cfg.Teams, scrapeTeams)
			for _, q := range unmatched {
				slog.Warn("no team matches", "query", q)
			}
			if len(list) == 0 {
				serviceutil.Fatal("nothing to scrape", fmt.Errorf("no team matches %v", scrapeTeams))
			}
		}
		if scrapeOut != "" {
			cfg.Output = scrapeOut
		}
		if scrapeDb != "" {
			cfg.Database = store.Database{File: scrapeDb}
		}
		if scrapeDump != "" {
			cfg.Dump = scrapeDump
		}
		if scrapeParallel > 0 {
			cfg.Parallel = scrapeParallel
		}

		opts := cfg.FetchOptions()
		if cfg.Dump != "" {
			output, err := restyutil.NewFilesystemOutput(cfg.Dump)
			if err != nil {
				serviceutil.Fatal("failed to create dump directory", err)
			}
			opts.Output = output
		}
		registry, err := cfg.Registry()
		if err != nil {
			serviceutil.Fatal("invalid site overrides", err)
		}

		client := fetch.NewClient(opts, g.Telemetry)
		scraper := scrape.NewScraper(client, registry, g.Telemetry).Parallel(cfg.Parallel)

		fmt.Printf("Scraping %d teams...\n\n", len(list))
		start := time.Now()
		results := scraper.ScrapeAll(ctx, list, printProgress)
		slog.Debug("scraping time", "seconds", time.Since(start).Seconds())

		err = store.SaveJSON(cfg.Output, results)
		if err != nil {
			serviceutil.Fatal("failed to write rosters", err)
		}

		if cfg.Database.Enabled() {
			database, err := store.Open(ctx, cfg.Database)
			if err != nil {
				serviceutil.Fatal("failed to open db", err)
			}
			defer database.Close()

			rosters := store.New(database)
			scrapedAt := time.Now()
			for _, r := range results {
				if r.Err != nil {
					continue
				}
				err = rosters.SaveRoster(ctx, r.Team, r.Result, scrapedAt)
				if err != nil {
					slog.Error("failed to save roster", "team", r.Team.Name, "err", err)
				}
			}
		}

		printSummary(results, cfg.Output)
	},
}

func printProgress(e scrape.Event) {
	switch e.Kind {
	case scrape.EventStart:
		fmt.Printf("[%d/%d] Scraping %s...\n", e.Index+1, e.Total, e.Team.Name)
	case scrape.EventDone:
		r := e.Result
		switch {
		case r.Err != nil:
			fmt.Printf("  ✗ %v\n", r.Err)
		case r.Ok():
			fmt.Printf("  ✓ Found %d players (%s)\n", len(r.Result.Entries), r.Result.Strategy)
		default:
			fmt.Println("  ✗ No roster data found")
		}
	}
}

func printSummary(results []scrape.TeamResult, output string) {
	success, total := scrape.Summary(results)

	fmt.Println()
	t := globals.NewTable()
	t.AppendHeader(table.Row{"", "Team", "Strategy", "Players", "Time"})
	for _, r := range results {
		status := "✓"
		if !r.Ok() {
			status = "✗"
		}
		t.AppendRow(table.Row{
			status,
			r.Team.Name,
			r.Result.Strategy,
			len(r.Result.Entries),
			r.Duration.Round(time.Millisecond),
		})
	}
	t.Render()

	fmt.Printf("\nSuccessfully scraped: %d/%d teams\n", success, total)
	fmt.Printf("Output saved to: %s\n", output)
}
