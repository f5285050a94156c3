package main

import (
	"ncaa-rosters/cmd/roster-cli/commands"
	"ncaa-rosters/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
