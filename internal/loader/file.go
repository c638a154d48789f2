package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/goccy/go-json"

	"github.com/idilsaglam/inventory/internal/model"
	"github.com/idilsaglam/inventory/internal/store/jsonstore"
)

// FileTransport serves file:// URLs from local JSON documents. A missing
// file answers 404 so it fails like a missing HTTP resource.
type FileTransport struct{}

func (FileTransport) Get(ctx context.Context, raw string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := filePath(raw)
	if err != nil {
		return nil, err
	}
	items, err := jsonstore.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Response{StatusCode: http.StatusNotFound}, nil
		}
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(model.Payload{Data: items})
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return &Response{StatusCode: http.StatusOK, Body: b}, nil
}

// filePath accepts file:///abs/path, file://./rel/path and file:rel/path.
func filePath(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("not a file url: %q", raw)
	}
	if u.Opaque != "" {
		return u.Opaque, nil
	}
	if u.Host != "" && u.Host != "localhost" {
		return u.Host + u.Path, nil
	}
	return u.Path, nil
}
