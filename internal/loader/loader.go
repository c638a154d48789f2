// Package loader performs the one-shot inventory fetch and publishes its
// outcome as a Result. It never panics and never hands an error back
// synchronously: every failure ends up inside the Result.
package loader

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"

	"github.com/idilsaglam/inventory/internal/model"
)

// HTTPError reports a response whose status is outside 2xx.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string { return "Failed to fetch " + e.URL }

// Result is either Ok(items) or Err(err), never both.
type Result struct {
	items []model.Item
	err   error
}

func Ok(items []model.Item) Result {
	if items == nil {
		items = []model.Item{}
	}
	return Result{items: items}
}

func Err(err error) Result { return Result{err: err} }

// Items is empty for a failed result.
func (r Result) Items() []model.Item { return r.items }
func (r Result) Err() error          { return r.err }
func (r Result) Failed() bool        { return r.err != nil }

// LoadedMsg is delivered to the Bubble Tea program once the fetch resolves.
// Source identifies the loader so a container can drop results of a
// loader it no longer owns.
type LoadedMsg struct {
	Source *Loader
	Result Result
}

// Loader fetches url at most once over its transport.
type Loader struct {
	url       string
	transport Transport

	once   sync.Once
	result Result
}

// New returns a loader for url. A nil transport falls back to HTTP with
// the default timeout.
func New(url string, t Transport) *Loader {
	if t == nil {
		t = NewHTTPTransport(0)
	}
	return &Loader{url: url, transport: t}
}

func (l *Loader) URL() string { return l.url }

// Fetch performs the request on the first call only; later calls return
// the same Result without touching the transport.
func (l *Loader) Fetch(ctx context.Context) Result {
	l.once.Do(func() {
		l.result = l.fetch(ctx)
	})
	return l.result
}

func (l *Loader) fetch(ctx context.Context) Result {
	resp, err := l.transport.Get(ctx, l.url)
	if err != nil {
		return Err(err)
	}
	if resp == nil {
		return Err(fmt.Errorf("fetch %s: no response", l.url))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Err(&HTTPError{URL: l.url, StatusCode: resp.StatusCode})
	}
	var p model.Payload
	if err := json.Unmarshal(resp.Body, &p); err != nil {
		return Err(fmt.Errorf("decode %s: %w", l.url, err))
	}
	return Ok(p.Data)
}

// Cmd schedules the fetch as a Bubble Tea command. It is meant to be
// returned from Init so the request happens exactly once per mount.
func (l *Loader) Cmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		return LoadedMsg{Source: l, Result: l.Fetch(ctx)}
	}
}
