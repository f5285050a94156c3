package store

import (
	"context"
	"testing"
	"time"

	"ncaa-rosters/internal/roster"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) Store {
	database, err := Open(context.Background(), Database{File: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		database.Close()
	})
	return New(database)
}

func TestSaveRoster(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	results := testResults()
	scrapedAt := time.Unix(1700000000, 0)
	for _, r := range results {
		require.NoError(t, s.SaveRoster(ctx, r.Team, r.Result, scrapedAt))
	}

	got, err := s.GetRoster(ctx, "Zeta <U>")
	require.NoError(t, err)
	require.Equal(t, "platform", got.Strategy)
	if diff := cmp.Diff(results[0].Result.Entries, got.Entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	empty, err := s.GetRoster(ctx, "Alpha")
	require.NoError(t, err)
	require.NotNil(t, empty.Entries)
	require.Empty(t, empty.Entries)

	saved, err := s.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	require.Equal(t, "Alpha", saved[0].Name)
	require.Equal(t, 0, saved[0].Players)
	require.Equal(t, "Zeta <U>", saved[1].Name)
	require.Equal(t, 1, saved[1].Players)
	require.True(t, scrapedAt.Equal(saved[1].ScrapedAt))
}

func TestSaveRosterReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first := testResults()[0]
	require.NoError(t, s.SaveRoster(ctx, first.Team, first.Result, time.Now()))

	replacement := roster.Result{
		Strategy: "generic",
		Entries: []roster.Entry{
			{FirstName: "Ana", LastName: "Lima", Position: roster.GK, SubPosition: roster.SubGK},
			{FirstName: "Bo", LastName: "Kim", Position: roster.DEF, SubPosition: roster.SubCB, Jersey: intp(4)},
		},
	}
	require.NoError(t, s.SaveRoster(ctx, first.Team, replacement, time.Now()))

	got, err := s.GetRoster(ctx, first.Team.Name)
	require.NoError(t, err)
	require.Equal(t, "generic", got.Strategy)
	if diff := cmp.Diff(replacement.Entries, got.Entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestGetRosterMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetRoster(context.Background(), "Nobody")
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestOpenRequiresTarget(t *testing.T) {
	_, err := Open(context.Background(), Database{})
	require.Error(t, err)
	require.False(t, Database{}.Enabled())
	require.Equal(t, "libsql://x.turso.io?authToken=abc", Database{Url: "libsql://x.turso.io", AuthToken: "abc"}.remoteDSN())
}
