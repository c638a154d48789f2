// Package inventory is the container view: it mounts a loader, then renders
// one counter row per fetched item. A failed fetch is returned from Render
// so an enclosing boundary can take over.
package inventory

import (
	"context"
	"log"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/inventory/internal/boundary"
	"github.com/idilsaglam/inventory/internal/counter"
	"github.com/idilsaglam/inventory/internal/loader"
	"github.com/idilsaglam/inventory/internal/model"
	"github.com/idilsaglam/inventory/internal/vdom"
)

// RowMsg routes a counter message to the row at Index. It is the
// click-equivalent for a specific item's buttons.
type RowMsg struct {
	Index int
	Msg   tea.Msg
}

func Increment(i int) RowMsg { return RowMsg{Index: i, Msg: counter.IncrementMsg{}} }
func Decrement(i int) RowMsg { return RowMsg{Index: i, Msg: counter.DecrementMsg{}} }

type row struct {
	item    model.Item
	counter counter.Model
}

type Model struct {
	loader *loader.Loader
	ctx    context.Context
	cancel context.CancelFunc

	result *loader.Result // nil while the fetch is in flight
	rows   []row
	cursor int

	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

var _ boundary.Component = Model{}

// New prepares the container; nothing is fetched until Init.
func New(url string, t loader.Transport) Model {
	ctx, cancel := context.WithCancel(context.Background())
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		loader:  loader.New(url, t),
		ctx:     ctx,
		cancel:  cancel,
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: sp,
	}
}

// Init schedules the one and only fetch for this mount.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loader.Cmd(m.ctx), m.spinner.Tick)
}

// Dispose cancels an in-flight fetch. A result arriving afterwards is
// dropped.
func (m Model) Dispose() { m.cancel() }

func (m Model) Loading() bool { return m.result == nil }

func (m Model) Update(msg tea.Msg) (boundary.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case loader.LoadedMsg:
		if msg.Source != m.loader || m.ctx.Err() != nil || m.result != nil {
			return m, nil
		}
		res := msg.Result
		m.result = &res
		if res.Failed() {
			log.Printf("inventory: fetch %s: %v", m.loader.URL(), res.Err())
			return m, nil
		}
		m.rows = make([]row, 0, len(res.Items()))
		for _, it := range res.Items() {
			m.rows = append(m.rows, row{item: it, counter: counter.New(it.Quantity)})
		}
		log.Printf("inventory: loaded %d items from %s", len(m.rows), m.loader.URL())
		return m, nil

	case spinner.TickMsg:
		if !m.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case RowMsg:
		return m.updateRow(msg.Index, msg.Msg), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Dispose()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Inc):
			m = m.updateRow(m.cursor, counter.IncrementMsg{})
		case key.Matches(msg, m.keys.Dec):
			m = m.updateRow(m.cursor, counter.DecrementMsg{})
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// updateRow copies the row slice so earlier Model values keep their own
// counters.
func (m Model) updateRow(i int, msg tea.Msg) Model {
	if i < 0 || i >= len(m.rows) {
		return m
	}
	rows := make([]row, len(m.rows))
	copy(rows, m.rows)
	rows[i].counter, _ = rows[i].counter.Update(msg)
	m.rows = rows
	return m
}

// Render raises a stored fetch error before building any node.
func (m Model) Render() (*vdom.VNode, error) {
	if m.result != nil && m.result.Failed() {
		return nil, m.result.Err()
	}

	items := make([]*vdom.VNode, 0, len(m.rows))
	for i, r := range m.rows {
		attrs := vdom.Attrs("key", strconv.FormatInt(r.item.ID, 10))
		if i == m.cursor {
			attrs["selected"] = "true"
		}
		items = append(items, vdom.ListItem(attrs,
			vdom.Span(r.item.Name, vdom.TestID("item-name", "class", "item-name")),
			r.counter.Render(),
		))
	}

	children := []*vdom.VNode{
		vdom.Row(vdom.Attrs("class", "header"),
			vdom.Span("Product", vdom.Attrs("class", "item-name")),
			vdom.Span("Quantity", nil),
		),
		vdom.List(vdom.TestID("items"), items...),
	}
	if m.Loading() {
		children = append(children,
			vdom.P(m.spinner.View()+" loading "+m.loader.URL(), vdom.TestID("loading", "class", "loading")))
	}
	children = append(children, vdom.P(m.help.View(m.keys), vdom.Attrs("class", "help")))

	return vdom.Div(vdom.Attrs("class", "inventory"), children...), nil
}
