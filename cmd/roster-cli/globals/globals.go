package globals

import (
	"context"
	"os"

	"ncaa-rosters/internal/config"
	"ncaa-rosters/internal/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
)

type key struct{}

type Value struct {
	Config    config.Config
	Telemetry telemetry.API
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key{}).(*Value)
}

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
