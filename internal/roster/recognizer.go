package roster

import (
	"context"
	"fmt"

	"ncaa-rosters/internal/telemetry"
	"ncaa-rosters/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("ncaa-rosters/internal/roster")

const (
	report_recognizer_run    = "recognizer.run"
	report_recognizer_record = "recognizer.extract"
)

// Recognizer is one extraction strategy: it locates a roster container in a
// document, enumerates the candidate records inside it and pulls raw fields
// out of every record.
type Recognizer interface {
	Name() string
	// FindContainer returns nil when the document has no usable container.
	FindContainer(doc *goquery.Document) *goquery.Selection
	EnumerateRecords(doc *goquery.Document, container *goquery.Selection) []*goquery.Selection
	// Extract returns false when the record has no recoverable name.
	Extract(record *goquery.Selection) (Hit, bool)
	// DedupKey returns nil when the recognizer does not deduplicate.
	DedupKey() KeyFunc
}

// Hit is the raw, not yet normalized, content of one record.
type Hit struct {
	Jersey   *int
	Name     string
	Position string
	Height   string
	Year     string
	Hometown string
	// FullName rejects names that are a single token.
	FullName bool
}

// Entry normalizes the hit, it returns false if no valid entry can be made.
func (h Hit) Entry() (Entry, bool) {
	name, ok := SplitName(h.Name)
	if !ok {
		return Entry{}, false
	}
	if h.FullName && name.Tokens() < 2 {
		return Entry{}, false
	}

	jersey := h.Jersey
	if jersey == nil {
		jersey = name.LeakedJersey
	}
	position, sub := ParsePosition(h.Position)

	entry := Entry{
		Jersey:      jersey,
		FirstName:   name.First,
		LastName:    name.Last,
		Position:    position,
		SubPosition: sub,
		Height:      ParseHeight(h.Height),
		Year:        ParseClassYear(h.Year),
	}
	if hometown := textutil.Clean(h.Hometown); hometown != "" {
		entry.Hometown = &hometown
	}
	return entry, true
}

// Run executes a recognizer against a document. It never fails, anything that
// goes wrong results in fewer (or zero) entries.
func Run(ctx context.Context, r Recognizer, doc *goquery.Document, tel telemetry.API) (result Result) {
	_, span := tracer.Start(ctx, "Run")
	span.SetAttributes(attribute.String("strategy", r.Name()))
	defer span.End()

	result = emptyResult()
	result.Strategy = r.Name()

	defer func() {
		if err := recover(); err != nil {
			tel.ReportBroken(report_recognizer_run, fmt.Errorf("recovered: %v", err), r.Name())
			span.SetStatus(codes.Error, "recognizer panicked")
			result = emptyResult()
			result.Strategy = r.Name()
		}
	}()

	if doc == nil {
		return result
	}

	container := r.FindContainer(doc)
	if container == nil || container.Length() == 0 {
		tel.ReportDebug("no roster container", r.Name())
		span.AddEvent("no container")
		return result
	}

	var dedup *Deduplicator
	if key := r.DedupKey(); key != nil {
		dedup = NewDeduplicator(key)
	}

	records := r.EnumerateRecords(doc, container)
	dropped := 0
	duplicates := 0
	for i, record := range records {
		hit, ok := r.Extract(record)
		if !ok {
			dropped++
			continue
		}
		entry, ok := hit.Entry()
		if !ok {
			tel.ReportDebug("unusable record", r.Name(), i, hit.Name)
			dropped++
			continue
		}
		if dedup != nil && !dedup.Admit(entry) {
			duplicates++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	if len(records) > 0 && len(result.Entries) == 0 {
		tel.ReportWarning(report_recognizer_record, fmt.Errorf("no usable records"), r.Name(), len(records))
	}
	span.SetAttributes(
		attribute.Int("records", len(records)),
		attribute.Int("entries", len(result.Entries)),
		attribute.Int("dropped", dropped),
		attribute.Int("duplicates", duplicates),
	)
	return result
}
