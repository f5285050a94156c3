package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ncaa-rosters/internal/fetch"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), DefaultName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `{output: "out.json"}`)

	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "out.json", config.Output)
	require.Len(t, config.Teams, 25)

	opts := config.FetchOptions()
	require.Equal(t, time.Second, opts.Delay)
	require.Equal(t, 10*time.Second, opts.Timeout)
	require.Equal(t, 2, opts.Retries)
	require.Equal(t, fetch.DefaultUserAgent, opts.UserAgent)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `{
		teams: [
			{name: "Local FC", url: "https://local.example.com/roster", strategy: "generic"},
		],
		delay: "0s",
		retries: 0,
		sites: {"cards.example.com": "card-list"},
		database: {file: "rosters.db"},
	}`)

	config, err := Load(path)
	require.NoError(t, err)
	require.Len(t, config.Teams, 1)
	require.Equal(t, "generic", config.Teams[0].Strategy)
	require.True(t, config.Database.Enabled())

	opts := config.FetchOptions()
	require.Equal(t, time.Duration(0), opts.Delay)
	require.Equal(t, 0, opts.Retries)

	registry, err := config.Registry()
	require.NoError(t, err)
	require.Equal(t, []string{"cards.example.com", "virginiasports.com"}, registry.Sites())
}

func TestLoadLocalOverride(t *testing.T) {
	path := writeConfig(t, `{output: "out.json", parallel: 2}`)
	local := filepath.Join(filepath.Dir(path), "roster.local.json5")
	require.NoError(t, os.WriteFile(local, []byte(`{parallel: 4}`), 0600))

	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "out.json", config.Output)
	require.Equal(t, 4, config.Parallel)
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
	}{
		{name: "bad delay", contents: `{delay: "soon"}`},
		{name: "negative timeout", contents: `{timeout: "-1s"}`},
		{name: "unknown strategy", contents: `{sites: {"x.com": "magic"}}`},
		{name: "team without url", contents: `{teams: [{name: "Nowhere"}]}`},
	}

	for _, test := range testCases {
		_, err := Load(writeConfig(t, test.contents))
		require.Error(t, err, test.name)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
