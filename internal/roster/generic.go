package roster

import (
	"regexp"
	"strings"

	"ncaa-rosters/lib/htmlutil"
	"ncaa-rosters/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// two capitalized words in a row, ex. "John Smith"
var plausibleNameRegex = regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+`)

var positionKeywords = []string{"GK", "GOAL", "FORWARD", "MID", "DEF", "F", "M", "D"}

type generic struct{}

// Generic returns the last resort recognizer, it looks at every table row in
// the document that mentions something resembling a name.
func Generic() Recognizer {
	return generic{}
}

func (generic) Name() string {
	return "generic"
}

func (generic) DedupKey() KeyFunc {
	return nil
}

func (generic) FindContainer(doc *goquery.Document) *goquery.Selection {
	tables := doc.Find("table")
	if tables.Length() == 0 {
		return nil
	}
	return tables
}

func (generic) EnumerateRecords(_ *goquery.Document, tables *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	tables.Each(func(_ int, table *goquery.Selection) {
		tr := table.Find("tr")
		if tr.Length() < 2 {
			return
		}
		rows = append(rows, selections(tr.Slice(1, goquery.ToEnd))...)
	})
	return rows
}

func (generic) Extract(row *goquery.Selection) (Hit, bool) {
	cells := row.Find("td, th")
	if cells.Length() < 2 {
		return Hit{}, false
	}

	texts := make([]string, cells.Length())
	cells.Each(func(i int, cell *goquery.Selection) {
		texts[i] = htmlutil.Text(cell)
	})
	if !plausibleNameRegex.MatchString(strings.Join(texts, " ")) {
		return Hit{}, false
	}

	hit := Hit{FullName: true}
	nameIdx := 0
	if textutil.IsDigits(texts[0]) {
		hit.Jersey = parseNumber(texts[0])
		nameIdx = 1
	}
	hit.Name = texts[nameIdx]

	for _, text := range texts[nameIdx+1:] {
		if textutil.ContainsAny(strings.ToUpper(text), positionKeywords) {
			hit.Position = text
			break
		}
	}
	return hit, hit.Name != ""
}
