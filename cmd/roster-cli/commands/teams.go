package commands

import (
	"ncaa-rosters/cmd/roster-cli/globals"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(teamsCmd)
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Lists the configured teams.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		g := globals.Get(cmd.Context())

		t := globals.NewTable()
		t.AppendHeader(table.Row{"Team", "Site", "Strategy", "URL"})
		for _, team := range g.Config.Teams {
			t.AppendRow(table.Row{team.Name, team.Identity(), team.Strategy, team.URL})
		}
		t.Render()
	},
}
