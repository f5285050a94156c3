package teams

import (
	"strings"

	"ncaa-rosters/internal/roster"

	"github.com/antzucaro/matchr"
)

type Team struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	// Strategy forces a recognizer for this team's site (card-list, platform
	// or generic), empty means the site registry decides.
	Strategy string `json:"strategy,omitempty"`
}

// Identity is the site identity of the team's roster page.
func (t Team) Identity() string {
	return roster.SiteIdentity(t.URL)
}

func rosterURL(host string) string {
	return "https://" + host + "/sports/mens-soccer/roster"
}

// Default returns the men's soccer programs scraped when no team list is configured.
func Default() []Team {
	return []Team{
		{Name: "Washington Huskies", URL: rosterURL("gohuskies.com")},
		{Name: "Princeton Tigers", URL: rosterURL("goprincetontigers.com")},
		{Name: "NC State Wolfpack", URL: rosterURL("gopack.com")},
		{Name: "Vermont Catamounts", URL: rosterURL("uvmathletics.com")},
		{Name: "Virginia Cavaliers", URL: rosterURL("virginiasports.com")},
		{Name: "Bryant Bulldogs", URL: rosterURL("bryantbulldogs.com")},
		{Name: "SMU Mustangs", URL: rosterURL("smumustangs.com")},
		{Name: "Maryland Terrapins", URL: rosterURL("umterps.com")},
		{Name: "San Diego Toreros", URL: rosterURL("usdtoreros.com")},
		{Name: "Portland Pilots", URL: rosterURL("portlandpilots.com")},
		{Name: "Georgetown Hoyas", URL: rosterURL("guhoyas.com")},
		{Name: "Saint Louis Billikens", URL: rosterURL("slubillikens.com")},
		{Name: "Hofstra Pride", URL: rosterURL("gohofstra.com")},
		{Name: "Furman Paladins", URL: rosterURL("furmanpaladins.com")},
		{Name: "High Point Panthers", URL: rosterURL("highpointpanthers.com")},
		{Name: "Akron Zips", URL: rosterURL("gozips.com")},
		{Name: "Stanford Cardinal", URL: rosterURL("gostanford.com")},
		{Name: "Indiana Hoosiers", URL: rosterURL("iuhoosiers.com")},
		{Name: "Connecticut Huskies", URL: rosterURL("uconnhuskies.com")},
		{Name: "Denver Pioneers", URL: rosterURL("denverpioneers.com")},
		{Name: "Duke Blue Devils", URL: rosterURL("goduke.com")},
		{Name: "Marshall Thundering Herd", URL: rosterURL("herdzone.com")},
		{Name: "Kansas City Roos", URL: rosterURL("gokangaroos.com")},
		{Name: "West Virginia Mountaineers", URL: rosterURL("wvusports.com")},
		{Name: "North Carolina Tar Heels", URL: rosterURL("goheels.com")},
	}
}

// minSimilarity is the lowest jaro-winkler score Find accepts for a loose match.
const minSimilarity = 0.8

// Find returns the team whose name equals query (ignoring case), or failing
// that the team with the most similar name.
func Find(teams []Team, query string) (Team, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Team{}, false
	}
	for _, t := range teams {
		if strings.EqualFold(t.Name, query) {
			return t, true
		}
	}

	var mostSimilarity float64
	var mostSimilar Team
	for _, t := range teams {
		similarity := matchr.JaroWinkler(strings.ToLower(query), strings.ToLower(t.Name), false)
		if similarity > mostSimilarity {
			mostSimilarity = similarity
			mostSimilar = t
		}
	}
	if mostSimilarity <= minSimilarity {
		return Team{}, false
	}
	return mostSimilar, true
}

// Filter keeps the teams matched by any of the queries, in the original
// order and without duplicates. It also returns the queries that matched nothing.
func Filter(teams []Team, queries []string) ([]Team, []string) {
	selected := map[string]struct{}{}
	var unmatched []string
	for _, q := range queries {
		t, ok := Find(teams, q)
		if !ok {
			unmatched = append(unmatched, q)
			continue
		}
		selected[t.Name] = struct{}{}
	}

	var out []Team
	for _, t := range teams {
		if _, ok := selected[t.Name]; ok {
			out = append(out, t)
		}
	}
	return out, unmatched
}
