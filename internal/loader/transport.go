package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/idilsaglam/inventory/internal/model"
)

const DefaultTimeout = 10 * time.Second

// Response is the part of a reply the loader cares about.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs a GET for the loader. Implementations return an error
// only when no response could be obtained at all.
type Transport interface {
	Get(ctx context.Context, url string) (*Response, error)
}

// TransportFunc adapts a plain function to Transport.
type TransportFunc func(ctx context.Context, url string) (*Response, error)

func (f TransportFunc) Get(ctx context.Context, url string) (*Response, error) { return f(ctx, url) }

// HTTPTransport is the net/http backed transport.
type HTTPTransport struct {
	Client *http.Client
}

func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{Client: &http.Client{Timeout: timeout}}
}

func (t *HTTPTransport) Get(ctx context.Context, u string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	c := t.Client
	if c == nil {
		c = http.DefaultClient
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// StaticTransport answers every request with the same payload.
type StaticTransport struct {
	Status  int
	Payload model.Payload
}

func (t StaticTransport) Get(ctx context.Context, _ string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	status := t.Status
	if status == 0 {
		status = http.StatusOK
	}
	b, err := json.Marshal(t.Payload)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return &Response{StatusCode: status, Body: b}, nil
}

// DemoItems is the sample data served by -demo.
func DemoItems() []model.Item {
	return []model.Item{
		{ID: 1, Name: "foo", Quantity: 1},
		{ID: 2, Name: "bar", Quantity: 0},
		{ID: 3, Name: "baz", Quantity: 3},
	}
}

// Mux picks a transport by URL scheme and falls back to Default.
type Mux struct {
	Schemes map[string]Transport
	Default Transport
}

func (m *Mux) Get(ctx context.Context, raw string) (*Response, error) {
	if u, err := url.Parse(raw); err == nil {
		if t, ok := m.Schemes[u.Scheme]; ok {
			return t.Get(ctx, raw)
		}
	}
	if m.Default == nil {
		return nil, fmt.Errorf("no transport for %q", raw)
	}
	return m.Default.Get(ctx, raw)
}
