package roster

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"ncaa-rosters/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	rosterCardPattern      = regexp.MustCompile(`(?i)roster-card|player-card`)
	rosterPlayerDivPattern = regexp.MustCompile(`(?i)roster-player`)
)

var cardListMatchers = []Matcher{
	classMatcher(FieldJersey, `number|jersey`),
	classMatcher(FieldName, `name`),
	tagMatcher(FieldName, "h3"),
	tagMatcher(FieldName, "h2"),
	classMatcher(FieldPosition, `position|pos`),
}

type cardList struct{}

// CardList returns the recognizer for sites that render one list item card
// per player (virginiasports.com for instance).
func CardList() Recognizer {
	return cardList{}
}

func (cardList) Name() string {
	return "card-list"
}

func (cardList) DedupKey() KeyFunc {
	return nameJerseyKey
}

func (cardList) FindContainer(doc *goquery.Document) *goquery.Selection {
	cards := htmlutil.FindByClass(doc.Selection, rosterCardPattern, "li")
	if cards.Length() == 0 {
		cards = htmlutil.FindByClass(doc.Selection, rosterPlayerDivPattern, "div")
	}
	if cards.Length() == 0 {
		return nil
	}
	return cards
}

func (cardList) EnumerateRecords(_ *goquery.Document, cards *goquery.Selection) []*goquery.Selection {
	return selections(cards)
}

func (cardList) Extract(card *goquery.Selection) (Hit, bool) {
	fields := Match(card, cardListMatchers)
	if !fields.Has(FieldName) {
		return Hit{}, false
	}
	return Hit{
		Jersey:   firstJersey(fields[FieldJersey]),
		Name:     fields[FieldName],
		Position: fields[FieldPosition],
		FullName: true,
	}, true
}

// Strategy returns a recognizer by its name.
func Strategy(name string) (Recognizer, bool) {
	switch strings.ToLower(name) {
	case CardList().Name():
		return CardList(), true
	case Platform().Name():
		return Platform(), true
	case Generic().Name():
		return Generic(), true
	}
	return nil, false
}

// SiteIdentity turns a roster url into the identity used to look up site
// overrides, the lowercased host without "www.".
func SiteIdentity(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err == nil && u.Host == "" && !strings.Contains(rawURL, "://") {
		// without a scheme the host is parsed as part of the path
		u, err = url.Parse("//" + rawURL)
	}
	if err != nil || u.Host == "" {
		host, _, _ := strings.Cut(rawURL, "/")
		return normalizeIdentity(host)
	}
	return normalizeIdentity(u.Hostname())
}

func normalizeIdentity(identity string) string {
	identity = strings.ToLower(strings.TrimSpace(identity))
	return strings.TrimPrefix(identity, "www.")
}

// Registry holds the hand tuned recognizers for specific sites.
type Registry struct {
	sites map[string]Recognizer
}

func NewRegistry() *Registry {
	return &Registry{sites: map[string]Recognizer{}}
}

// DefaultRegistry returns a registry with every built in site override.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("virginiasports.com", CardList())
	return r
}

// Register adds an override for a site and all of its subdomains.
func (r *Registry) Register(identity string, recognizer Recognizer) {
	r.sites[normalizeIdentity(identity)] = recognizer
}

// RegisterStrategy is Register using a strategy name.
func (r *Registry) RegisterStrategy(identity, strategy string) error {
	recognizer, ok := Strategy(strategy)
	if !ok {
		return fmt.Errorf("unknown strategy %q", strategy)
	}
	r.Register(identity, recognizer)
	return nil
}

// Lookup finds the override for an identity, trying the identity itself and
// then every parent domain of it.
func (r *Registry) Lookup(identity string) (Recognizer, bool) {
	if r == nil {
		return nil, false
	}
	identity = normalizeIdentity(identity)
	for identity != "" {
		recognizer, ok := r.sites[identity]
		if ok {
			return recognizer, true
		}
		_, parent, found := strings.Cut(identity, ".")
		if !found {
			break
		}
		identity = parent
	}
	return nil, false
}

// Sites lists the registered identities in sorted order.
func (r *Registry) Sites() []string {
	out := make([]string, 0, len(r.sites))
	for site := range r.sites {
		out = append(out, site)
	}
	sort.Strings(out)
	return out
}

// Clone returns a copy of the registry that can be modified independently.
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	for site, recognizer := range r.sites {
		out.sites[site] = recognizer
	}
	return out
}
