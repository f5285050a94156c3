package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ncaa-rosters/internal/telemetry"

	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	mutex    sync.Mutex
	messages map[string]string
}

func (m *memoryOutput) Write(id, contents string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.messages == nil {
		m.messages = map[string]string{}
	}
	m.messages[id] = contents
}

func testOptions() Options {
	return Options{
		Timeout:                 2 * time.Second,
		DisableCloudflareBypass: true,
	}
}

func TestFetch(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("user-agent")
		fmt.Fprint(w, `<html><body><table class="roster"><tr><td>1</td></tr></table></body></html>`)
	}))
	defer server.Close()

	output := &memoryOutput{}
	opts := testOptions()
	opts.Output = output
	client := NewClient(opts, nil)

	doc, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find("table.roster").Length())
	require.Equal(t, DefaultUserAgent, userAgent)
	require.Len(t, output.messages, 1)
}

func TestFetchStatusError(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	tel := &telemetry.Recorder{}
	opts := testOptions()
	opts.Retries = 2
	client := NewClient(opts, tel)

	_, err := client.Fetch(context.Background(), server.URL)
	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, http.StatusNotFound, ferr.Status)
	require.Equal(t, server.URL, ferr.URL)
	// 4xx other than 429 is not retried
	require.Equal(t, int32(1), hits.Load())
	require.Len(t, tel.Reports("warning", report_client_fetch), 1)
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `<html><body><p>ok</p></body></html>`)
	}))
	defer server.Close()

	opts := testOptions()
	opts.Retries = 2
	client := NewClient(opts, nil)

	doc, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "ok", doc.Find("p").Text())
	require.Equal(t, int32(2), hits.Load())
}

func TestFetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(testOptions(), nil)
	_, err := client.Fetch(context.Background(), url)

	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, 0, ferr.Status)
	require.Error(t, ferr.Unwrap())
}

func TestFetchDelay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html></html>`)
	}))
	defer server.Close()

	opts := testOptions()
	opts.Delay = 150 * time.Millisecond
	client := NewClient(opts, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
	}
	// the first request goes out immediately, the next two wait one delay each
	require.GreaterOrEqual(t, time.Since(start), 250*time.Millisecond)
}

func TestFetchCancelled(t *testing.T) {
	opts := testOptions()
	opts.Delay = time.Hour
	client := NewClient(opts, nil)
	// drain the single burst token
	client.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Fetch(ctx, "http://example.invalid")
	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
}
