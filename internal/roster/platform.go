package roster

import (
	"regexp"

	"ncaa-rosters/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	rosterPattern       = regexp.MustCompile(`(?i)roster`)
	rosterPlayerPattern = regexp.MustCompile(`(?i)roster-player|player-card`)
)

// table columns in the order most platforms (Sidearm in particular) render them:
// # | Name | Pos | Ht | Yr | Hometown
var platformColumns = []Matcher{
	cellMatcher(FieldJersey, 0),
	cellMatcher(FieldName, 1),
	cellMatcher(FieldPosition, 2),
	cellMatcher(FieldHeight, 3),
	cellMatcher(FieldYear, 4),
	cellMatcher(FieldHometown, 5),
}

var platformCard = []Matcher{
	classMatcher(FieldJersey, `number|jersey`),
	classMatcher(FieldName, `name`),
	classMatcher(FieldPosition, `position|pos`),
	classMatcher(FieldHeight, `height|ht`),
	classMatcher(FieldYear, `year|class`),
	classMatcher(FieldHometown, `hometown|home`),
}

type platform struct{}

// Platform returns the recognizer for the common athletics platforms, which
// render a roster table or a list of player cards.
func Platform() Recognizer {
	return platform{}
}

func (platform) Name() string {
	return "platform"
}

func (platform) DedupKey() KeyFunc {
	return nameJerseyPositionKey
}

func (platform) FindContainer(doc *goquery.Document) *goquery.Selection {
	candidates := []*goquery.Selection{
		htmlutil.FindByClass(doc.Selection, rosterPattern, "table"),
		htmlutil.FindByID(doc.Selection, rosterPattern, "table"),
		htmlutil.FindByClass(doc.Selection, rosterPattern, "div", "section"),
		htmlutil.FindByID(doc.Selection, rosterPattern, "div", "section"),
	}
	for _, c := range candidates {
		if c.Length() > 0 {
			return c.First()
		}
	}
	return nil
}

func (platform) EnumerateRecords(doc *goquery.Document, container *goquery.Selection) []*goquery.Selection {
	rows := container.Find("tr")
	if rows.Length() > 1 {
		// first row is the header
		return selections(rows.Slice(1, goquery.ToEnd))
	}
	return selections(htmlutil.FindByClass(doc.Selection, rosterPlayerPattern, "div", "li", "article"))
}

func (platform) Extract(record *goquery.Selection) (Hit, bool) {
	if record.Find("td").Length() >= 2 {
		fields := Match(record, platformColumns)
		hit := hitFromFields(fields)
		hit.Jersey = exactJersey(fields[FieldJersey])
		return hit, hit.Name != ""
	}

	fields := Match(record, platformCard)
	if !fields.Has(FieldName) {
		return Hit{}, false
	}
	hit := hitFromFields(fields)
	hit.Jersey = firstJersey(fields[FieldJersey])
	return hit, hit.Name != ""
}

func hitFromFields(fields Fields) Hit {
	return Hit{
		Name:     fields[FieldName],
		Position: fields[FieldPosition],
		Height:   fields[FieldHeight],
		Year:     fields[FieldYear],
		Hometown: fields[FieldHometown],
	}
}

func selections(sel *goquery.Selection) []*goquery.Selection {
	out := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}
