package commands

import (
	"fmt"
	"time"

	"ncaa-rosters/cmd/roster-cli/globals"
	"ncaa-rosters/internal/store"
	"ncaa-rosters/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var savedDb string

func init() {
	savedCmd.Flags().StringVar(&savedDb, "db", "", "The sqlite database to read from, overrides the config.")
	rootCmd.AddCommand(savedCmd)
}

var savedCmd = &cobra.Command{
	Use:   "saved [team] [--db <rosters.db>]",
	Short: "Lists the rosters stored in the database, or the players of one team.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := globals.Get(ctx).Config
		if savedDb != "" {
			cfg.Database = store.Database{File: savedDb}
		}
		if !cfg.Database.Enabled() {
			serviceutil.Fatal("no database", fmt.Errorf("pass --db or set database in the config"))
		}

		database, err := store.Open(ctx, cfg.Database)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		rosters := store.New(database)

		if len(args) == 1 {
			result, err := rosters.GetRoster(ctx, args[0])
			if err != nil {
				serviceutil.Fatal("failed to read roster", err)
			}
			printEntries(result.Entries)
			return
		}

		saved, err := rosters.ListTeams(ctx)
		if err != nil {
			serviceutil.Fatal("failed to list teams", err)
		}
		t := globals.NewTable()
		t.AppendHeader(table.Row{"Team", "Strategy", "Players", "Scraped"})
		for _, s := range saved {
			t.AppendRow(table.Row{s.Name, s.Strategy, s.Players, s.ScrapedAt.Format(time.DateTime)})
		}
		t.Render()
	},
}
