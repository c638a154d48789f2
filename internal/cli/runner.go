package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/inventory/internal/boundary"
	"github.com/idilsaglam/inventory/internal/inventory"
	"github.com/idilsaglam/inventory/internal/loader"
	"github.com/idilsaglam/inventory/internal/model"
	"github.com/idilsaglam/inventory/internal/ui"
)

const (
	envURL  = "INVENTORY_URL"
	demoURL = "http://www.example.com"
)

var ErrNoURL = errors.New("no url: pass -url or set " + envURL)

// Options tune behavior from root flags.
type Options struct {
	URL     string
	Theme   string
	Client  string // "http" or "fasthttp"
	Timeout time.Duration
	Demo    bool // serve built-in sample items instead of the network
	Debug   bool // log to debug.log
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	cmd, a := "show", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}
	if len(a) > 0 {
		ui.Fail(fmt.Sprintf("%s: unexpected arguments: %s", cmd, strings.Join(a, " ")))
		return 2
	}
	ui.SetTheme(opt.Theme)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "show", "ls":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(os.Stderr)
		PrintHelp()
		return 2
	}

	url, err := resolveURL(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 2
	}
	tr, err := newTransport(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 2
	}
	closeLog, err := setupLogging(opt.Debug)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	if cmd == "ls" {
		return doList(url, tr, opt.Timeout)
	}
	return doShow(url, tr)
}

func PrintHelp() {
	fmt.Printf(`inventory - browse inventory items and adjust quantities

Usage:
  inventory [flags] [subcommand]

Subcommands:
  show               Interactive view (default)
  ls                 Fetch once and print the items
  help               Show this help

Flags:
  -url <url>         Source URL (http(s):// or file://); falls back to $%s
  -client <name>     http (default) or fasthttp
  -timeout <dur>     Request timeout (default %s)
  -theme <name>      classic, neon or mono
  -demo              Use built-in sample items
  -debug             Write logs to debug.log

Examples:
  inventory -url https://example.com/items.json
  inventory -url file://./inventory.json ls
  inventory -demo
`, envURL, loader.DefaultTimeout)
}

func resolveURL(opt Options) (string, error) {
	if u := strings.TrimSpace(opt.URL); u != "" {
		return u, nil
	}
	if u := strings.TrimSpace(os.Getenv(envURL)); u != "" {
		return u, nil
	}
	if opt.Demo {
		return demoURL, nil
	}
	return "", ErrNoURL
}

// newTransport routes file:// URLs to disk and everything else to the
// selected network client (or the demo payload).
func newTransport(opt Options) (loader.Transport, error) {
	var web loader.Transport
	switch strings.ToLower(opt.Client) {
	case "", "http":
		web = loader.NewHTTPTransport(opt.Timeout)
	case "fasthttp":
		web = loader.NewFastHTTPTransport(opt.Timeout)
	default:
		return nil, fmt.Errorf("unknown client %q (want http or fasthttp)", opt.Client)
	}
	if opt.Demo {
		web = loader.StaticTransport{Payload: model.Payload{Data: loader.DemoItems()}}
	}
	return &loader.Mux{
		Schemes: map[string]loader.Transport{"file": loader.FileTransport{}},
		Default: web,
	}, nil
}

// setupLogging sends the standard logger to debug.log when enabled and
// silences it otherwise: the terminal belongs to the UI.
func setupLogging(debug bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile("debug.log", "inventory")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}

// -------------- subcommand impls ----------------

func doShow(url string, tr loader.Transport) int {
	b := boundary.New(inventory.New(url, tr),
		boundary.WithStylesheet(ui.Current().Stylesheet()),
		boundary.WithOnError(func(err error) {
			log.Printf("boundary: %v", err)
		}),
	)

	p := tea.NewProgram(shell{b: b}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	if inv, ok := b.Child().(inventory.Model); ok {
		inv.Dispose()
	}
	if b.Failed() {
		ui.Fail(b.Err().Error())
		return 1
	}
	return 0
}

func doList(url string, tr loader.Transport, timeout time.Duration) int {
	if timeout <= 0 {
		timeout = loader.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res := loader.New(url, tr).Fetch(ctx)
	if res.Failed() {
		ui.Fail(res.Err().Error())
		return 1
	}
	ui.Panel(os.Stdout, listLines(res.Items()))
	return 0
}

// -------------- rendering helpers --------------

func listLines(items []model.Item) []string {
	t := ui.Current()
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d",
			t.Title.Render("Inventory"),
			t.Accent.Render("Items"), len(items),
			t.Accent.Render("Units"), total),
		"",
	}
	if len(items) == 0 {
		return append(lines, t.Muted.Render("no items"))
	}
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), fitName(it.Name, 40), t.Counter.Render(fmt.Sprint(it.Quantity))))
	}
	return lines
}

// fitName truncates by runes and pads s to width columns.
func fitName(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		r = append(r[:width-3], []rune("...")...)
	}
	return string(r) + strings.Repeat(" ", width-len(r))
}
