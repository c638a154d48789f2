package jsonstore

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/idilsaglam/inventory/internal/model"
)

// Read-only JSON inventory source. A file holds either the wire payload
// {"data": [...]} or a bare array of items.

// Load reads path. A missing file is reported with an error wrapping
// os.ErrNotExist so callers can tell it apart from a broken one.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var items []model.Item
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
		return items, nil
	}
	var p model.Payload
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return p.Data, nil
}
