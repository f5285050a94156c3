package fetch

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"ncaa-rosters/internal/roster"
	"ncaa-rosters/internal/telemetry"
	"ncaa-rosters/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("ncaa-rosters/internal/fetch")

const (
	report_client_fetch = "client.fetch"
	report_client_parse = "client.parse"
)

// DefaultUserAgent is a desktop chrome, some athletics sites reject obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type Options struct {
	UserAgent string
	Timeout   time.Duration
	Retries   int
	// Delay is the minimum time between two requests, 0 disables pacing.
	Delay time.Duration
	// Output receives a dump of every exchange when it is not nil.
	Output restyutil.InstrumentOutput
	// DisableCloudflareBypass keeps the plain transport, tests use it to talk
	// to local servers.
	DisableCloudflareBypass bool
}

func (o Options) withDefaults() Options {
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.Retries < 0 {
		o.Retries = 0
	}
	return o
}

// Client retrieves roster pages.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	tel     telemetry.API
}

func NewClient(opts Options, tel telemetry.API) *Client {
	opts = opts.withDefaults()
	if tel == nil {
		tel = telemetry.Nop{}
	}

	httpClient := resty.New()
	httpClient.SetHeader("user-agent", opts.UserAgent)
	httpClient.SetHeader("accept", "text/html,application/xhtml+xml")
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetRetryCount(opts.Retries)
	httpClient.SetRetryWaitTime(500 * time.Millisecond)
	httpClient.SetRetryMaxWaitTime(5 * time.Second)
	httpClient.AddRetryCondition(func(res *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return res.StatusCode() == http.StatusTooManyRequests || res.StatusCode() >= 500
	})
	if !opts.DisableCloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	restyutil.InstrumentClient(httpClient, tracer, opts.Output)

	var limiter *rate.Limiter
	if opts.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Delay), 1)
	}

	return &Client{
		http:    httpClient,
		limiter: limiter,
		tel:     telemetry.NewScopedAPI("fetch", tel),
	}
}

// Fetch retrieves a page and parses it. Every failure is either a *FetchError
// or a *ParseError.
func (c *Client) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	if c.limiter != nil {
		err := c.limiter.Wait(ctx)
		if err != nil {
			return nil, &FetchError{URL: url, Err: err}
		}
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		c.tel.ReportWarning(report_client_fetch, err, url)
		return nil, &FetchError{URL: url, Err: err}
	}
	if res.IsError() {
		ferr := &FetchError{URL: url, Status: res.StatusCode()}
		span.RecordError(ferr)
		c.tel.ReportWarning(report_client_fetch, ferr, url)
		return nil, ferr
	}

	doc, err := roster.ParseDocument(bytes.NewReader(res.Body()))
	if err != nil {
		c.tel.ReportBroken(report_client_parse, err, url)
		return nil, &ParseError{URL: url, Err: err}
	}
	return doc, nil
}
