package cli

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"unicode/utf8"
	"testing"

	"github.com/idilsaglam/inventory/internal/loader"
	"github.com/idilsaglam/inventory/internal/model"
)

func TestResolveURL(t *testing.T) {
	t.Setenv(envURL, "")
	if _, err := resolveURL(Options{}); !errors.Is(err, ErrNoURL) {
		t.Errorf("err = %v, want ErrNoURL", err)
	}

	if u, _ := resolveURL(Options{Demo: true}); u != demoURL {
		t.Errorf("demo url = %q", u)
	}

	t.Setenv(envURL, " http://env.example/items ")
	if u, _ := resolveURL(Options{}); u != "http://env.example/items" {
		t.Errorf("env url = %q", u)
	}
	if u, _ := resolveURL(Options{URL: "http://flag.example"}); u != "http://flag.example" {
		t.Errorf("flag must win over env, got %q", u)
	}
}

func TestNewTransport(t *testing.T) {
	tests := []struct {
		client  string
		wantErr bool
		want    string
	}{
		{"", false, "*loader.HTTPTransport"},
		{"http", false, "*loader.HTTPTransport"},
		{"FastHTTP", false, "*loader.FastHTTPTransport"},
		{"curl", true, ""},
	}
	for _, tt := range tests {
		tr, err := newTransport(Options{Client: tt.client})
		if tt.wantErr {
			if err == nil {
				t.Errorf("client %q: expected error", tt.client)
			}
			continue
		}
		if err != nil {
			t.Fatalf("client %q: %v", tt.client, err)
		}
		mux := tr.(*loader.Mux)
		if got := typeName(mux.Default); got != tt.want {
			t.Errorf("client %q: default = %s, want %s", tt.client, got, tt.want)
		}
		if _, ok := mux.Schemes["file"].(loader.FileTransport); !ok {
			t.Errorf("client %q: file scheme not routed to FileTransport", tt.client)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *loader.HTTPTransport:
		return "*loader.HTTPTransport"
	case *loader.FastHTTPTransport:
		return "*loader.FastHTTPTransport"
	case loader.StaticTransport:
		return "loader.StaticTransport"
	}
	return "unknown"
}

func TestRun_Usage(t *testing.T) {
	t.Setenv(envURL, "")
	tests := []struct {
		name string
		args []string
		opt  Options
		want int
	}{
		{"help", []string{"help"}, Options{}, 0},
		{"unknown subcommand", []string{"frobnicate"}, Options{}, 2},
		{"extra args", []string{"ls", "extra"}, Options{}, 2},
		{"missing url", []string{"ls"}, Options{}, 2},
		{"bad client", []string{"ls"}, Options{URL: "http://x", Client: "curl"}, 2},
		{"demo ls", []string{"ls"}, Options{Demo: true, Theme: "mono"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Run(tt.args, tt.opt); got != tt.want {
				t.Errorf("Run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestRun_ListOverHTTP(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
		w.Write([]byte(`{"data":[{"id":1,"name":"foo","quantity":1}]}`))
	}))
	defer srv.Close()

	if got := Run([]string{"ls"}, Options{URL: srv.URL}); got != 0 {
		t.Errorf("ok response: exit %d, want 0", got)
	}

	status.Store(http.StatusUnauthorized)
	if got := Run([]string{"ls"}, Options{URL: srv.URL}); got != 1 {
		t.Errorf("401 response: exit %d, want 1", got)
	}
}

func TestListLines(t *testing.T) {
	lines := listLines([]model.Item{{ID: 1, Name: "foo", Quantity: 1}, {ID: 2, Name: "bar", Quantity: 4}})

	if len(lines) != 4 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Inventory") || !strings.Contains(lines[0], "5") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[3], "bar") {
		t.Errorf("second row = %q", lines[3])
	}

	empty := listLines(nil)
	if !strings.Contains(empty[len(empty)-1], "no items") {
		t.Errorf("empty list = %q", empty)
	}
}

func TestFitName(t *testing.T) {
	long := strings.Repeat("a", 36) + "ééé" + "bbb"
	got := fitName(long, 40)

	if !utf8.ValidString(got) {
		t.Fatalf("fitName produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("a", 36) + "é..."; got != want {
		t.Errorf("fitName = %q, want %q", got, want)
	}
	if got := fitName("café", 6); got != "café  " {
		t.Errorf("fitName pads by runes, got %q", got)
	}
}
