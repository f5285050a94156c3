package commands

import (
	"fmt"
	"os"
	"strings"

	"ncaa-rosters/cmd/roster-cli/globals"
	"ncaa-rosters/internal/fetch"
	"ncaa-rosters/internal/roster"
	"ncaa-rosters/lib/serviceutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var inspectSite string

func init() {
	inspectCmd.Flags().StringVar(&inspectSite, "site", "", "The site identity to use for overrides, defaults to the host of the url.")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <url or file> [--site <host>]",
	Short: "Extracts a single roster page and prints what was found.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		g := globals.Get(ctx)
		target := args[0]

		identity := inspectSite
		var doc *goquery.Document
		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			client := fetch.NewClient(g.Config.FetchOptions(), g.Telemetry)
			var err error
			doc, err = client.Fetch(ctx, target)
			if err != nil {
				serviceutil.Fatal("failed to fetch page", err)
			}
			if identity == "" {
				identity = roster.SiteIdentity(target)
			}
		} else {
			f, err := os.Open(target)
			if err != nil {
				serviceutil.Fatal("failed to open page", err)
			}
			defer f.Close()
			doc, err = roster.ParseDocument(f)
			if err != nil {
				serviceutil.Fatal("failed to parse page", err)
			}
		}

		registry, err := g.Config.Registry()
		if err != nil {
			serviceutil.Fatal("invalid site overrides", err)
		}
		dispatcher := roster.NewDispatcher(registry, g.Telemetry)

		chain := make([]string, 0, 3)
		for _, r := range dispatcher.Chain(identity) {
			chain = append(chain, r.Name())
		}
		fmt.Printf("strategies: %s\n", strings.Join(chain, " -> "))

		result := dispatcher.Extract(ctx, doc, identity)
		if !result.Ok() {
			fmt.Println("No roster data found")
			os.Exit(1)
		}
		fmt.Printf("%d players found by %s\n", len(result.Entries), result.Strategy)
		printEntries(result.Entries)
	},
}

func optional[T any](v *T) any {
	if v == nil {
		return ""
	}
	return *v
}

func printEntries(entries []roster.Entry) {
	t := globals.NewTable()
	t.AppendHeader(table.Row{"#", "First", "Last", "Pos", "Sub", "Ht", "Yr", "Hometown"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			optional(e.Jersey),
			e.FirstName,
			e.LastName,
			e.Position,
			e.SubPosition,
			optional(e.Height),
			optional(e.Year),
			optional(e.Hometown),
		})
	}
	t.Render()
}
