package loader

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"
)

// FastHTTPTransport issues the request with fasthttp. fasthttp has no
// context support, so cancellation is approximated by the context deadline.
type FastHTTPTransport struct {
	Client  *fasthttp.Client
	Timeout time.Duration
}

func NewFastHTTPTransport(timeout time.Duration) *FastHTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &FastHTTPTransport{Client: &fasthttp.Client{}, Timeout: timeout}
}

func (t *FastHTTPTransport) Get(ctx context.Context, u string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	timeout := t.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c := t.Client
	if c == nil {
		c = &fasthttp.Client{}
	}
	if err := c.DoDeadline(req, resp, deadline); err != nil {
		return nil, err
	}
	// resp is returned to the pool, so the body must be copied out.
	body := append([]byte(nil), resp.Body()...)
	return &Response{StatusCode: resp.StatusCode(), Body: body}, nil
}
