package roster

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ncaa-rosters/internal/telemetry"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// ErrMalformedDocument is returned when a page cannot be parsed as html at all.
var ErrMalformedDocument = errors.New("malformed document")

// ParseDocument parses html for the dispatcher.
func ParseDocument(r io.Reader) (*goquery.Document, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no input", ErrMalformedDocument)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return doc, nil
}

// Dispatcher tries the recognizers in priority order: the site override (if
// any), the platform recognizer and finally the generic one.
type Dispatcher struct {
	sites    *Registry
	platform Recognizer
	generic  Recognizer
	tel      telemetry.API
}

func NewDispatcher(sites *Registry, tel telemetry.API) Dispatcher {
	if sites == nil {
		sites = NewRegistry()
	}
	if tel == nil {
		tel = telemetry.Nop{}
	}
	return Dispatcher{
		sites:    sites,
		platform: Platform(),
		generic:  Generic(),
		tel:      telemetry.NewScopedAPI("roster", tel),
	}
}

// Chain returns the recognizers that will be tried for a site, in order.
func (d Dispatcher) Chain(identity string) []Recognizer {
	chain := make([]Recognizer, 0, 3)
	if override, ok := d.sites.Lookup(identity); ok {
		chain = append(chain, override)
	}
	for _, r := range []Recognizer{d.platform, d.generic} {
		if len(chain) > 0 && chain[0].Name() == r.Name() {
			continue
		}
		chain = append(chain, r)
	}
	return chain
}

// Extract returns the first non-empty result of the chain. A nil document or
// a chain that finds nothing yields an empty result.
func (d Dispatcher) Extract(ctx context.Context, doc *goquery.Document, identity string) Result {
	ctx, span := tracer.Start(ctx, "Dispatcher.Extract")
	span.SetAttributes(attribute.String("site", identity))
	defer span.End()

	if doc == nil {
		d.tel.ReportDebug("no document", identity)
		return emptyResult()
	}

	for i, r := range d.Chain(identity) {
		if i > 0 {
			d.tel.ReportDebug("trying next strategy", identity, r.Name())
		}
		result := Run(ctx, r, doc, d.tel)
		if result.Ok() {
			span.SetAttributes(
				attribute.String("strategy", result.Strategy),
				attribute.Int("entries", len(result.Entries)),
			)
			d.tel.ReportCount(fmt.Sprintf("%s.entries", result.Strategy), int64(len(result.Entries)))
			return result
		}
	}

	d.tel.ReportWarning("dispatcher.extract", fmt.Errorf("no roster data found"), identity)
	return emptyResult()
}
