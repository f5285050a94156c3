package roster

import (
	"regexp"

	"ncaa-rosters/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Field is a player attribute that can be located inside a record.
type Field int

const (
	FieldJersey Field = iota
	FieldName
	FieldPosition
	FieldHeight
	FieldYear
	FieldHometown
)

func (f Field) String() string {
	switch f {
	case FieldJersey:
		return "jersey"
	case FieldName:
		return "name"
	case FieldPosition:
		return "position"
	case FieldHeight:
		return "height"
	case FieldYear:
		return "year"
	case FieldHometown:
		return "hometown"
	}
	return "unknown"
}

// Matcher locates one field inside a record. Find reports false when the
// record has no element for the field, an element with empty text still counts
// as found.
type Matcher struct {
	Field Field
	Find  func(record *goquery.Selection) (string, bool)
}

// Fields holds the text found for every matched field.
type Fields map[Field]string

func (f Fields) Has(field Field) bool {
	_, ok := f[field]
	return ok
}

// Match runs the matchers in order, the first matcher to find a field wins
// and later matchers for the same field are skipped.
func Match(record *goquery.Selection, matchers []Matcher) Fields {
	fields := Fields{}
	for _, m := range matchers {
		if fields.Has(m.Field) {
			continue
		}
		text, ok := m.Find(record)
		if ok {
			fields[m.Field] = text
		}
	}
	return fields
}

func findText(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	return htmlutil.Text(sel.First()), true
}

// classMatcher finds the first descendant with a class token matching pattern.
func classMatcher(field Field, pattern string) Matcher {
	re := regexp.MustCompile("(?i)" + pattern)
	return Matcher{
		Field: field,
		Find: func(record *goquery.Selection) (string, bool) {
			return findText(htmlutil.FindByClass(record, re))
		},
	}
}

// tagMatcher finds the first descendant with the given tag.
func tagMatcher(field Field, tag string) Matcher {
	return Matcher{
		Field: field,
		Find: func(record *goquery.Selection) (string, bool) {
			return findText(record.Find(tag))
		},
	}
}

// cellMatcher takes the n-th cell of a table row.
func cellMatcher(field Field, n int) Matcher {
	return Matcher{
		Field: field,
		Find: func(record *goquery.Selection) (string, bool) {
			cells := record.Find("td")
			if n >= cells.Length() {
				return "", false
			}
			return htmlutil.Text(cells.Eq(n)), true
		},
	}
}
