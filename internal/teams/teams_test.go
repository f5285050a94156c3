package teams

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	teams := Default()
	require.Len(t, teams, 25)

	names := map[string]struct{}{}
	for _, team := range teams {
		_, duplicate := names[team.Name]
		require.False(t, duplicate, team.Name)
		names[team.Name] = struct{}{}
		require.Contains(t, team.URL, "/sports/mens-soccer/roster")
	}

	virginia, ok := Find(teams, "virginia cavaliers")
	require.True(t, ok)
	require.Equal(t, "virginiasports.com", virginia.Identity())
}

func TestFind(t *testing.T) {
	teams := Default()

	testCases := []struct {
		query    string
		expected string
	}{
		{query: "Duke Blue Devils", expected: "Duke Blue Devils"},
		{query: "DUKE BLUE DEVILS", expected: "Duke Blue Devils"},
		{query: "Duke Blue Devil", expected: "Duke Blue Devils"},
		{query: "Stanford Cardnal", expected: "Stanford Cardinal"},
		{query: "zzzzqqqq", expected: ""},
		{query: "   ", expected: ""},
	}

	for _, test := range testCases {
		team, ok := Find(teams, test.query)
		require.Equal(t, test.expected != "", ok, "query %q", test.query)
		require.Equal(t, test.expected, team.Name, "query %q", test.query)
	}
}

func TestFilter(t *testing.T) {
	teams := Default()
	out, unmatched := Filter(teams, []string{"North Carolina Tar Heels", "Akron Zips", "akron zips", "zzzzqqqq"})
	require.Equal(t, []string{"zzzzqqqq"}, unmatched)
	require.Len(t, out, 2)
	// team list order, not query order
	require.Equal(t, "Akron Zips", out[0].Name)
	require.Equal(t, "North Carolina Tar Heels", out[1].Name)
}
