// Package boundary guards a subtree of the UI. The first error raised while
// the subtree initialises, updates or renders moves the boundary into a
// terminal failed state in which a fallback view replaces the subtree.
package boundary

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/inventory/internal/vdom"
)

// Component is a Bubble Tea model that renders into a node tree and may
// refuse to render by returning an error.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	Render() (*vdom.VNode, error)
}

// Fallback builds the view shown once the boundary has failed.
type Fallback func(err error) *vdom.VNode

// PanicError wraps a recovered panic value that was not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprint(e.Value) }

// DefaultFallback shows the message under testid "error-message".
func DefaultFallback(err error) *vdom.VNode {
	return vdom.Div(vdom.Attrs("class", "fallback"),
		vdom.P("Something went wrong:", nil),
		vdom.Pre(err.Error(), vdom.TestID("error-message", "class", "error")),
		vdom.P("q: quit", vdom.Attrs("class", "help")),
	)
}

type Option func(*Model)

func WithFallback(f Fallback) Option { return func(m *Model) { m.fallback = f } }

// WithOnError registers a hook called once, when the boundary fails.
func WithOnError(fn func(error)) Option { return func(m *Model) { m.onError = fn } }

// WithStylesheet sets the styles used by View.
func WithStylesheet(ss vdom.Stylesheet) Option { return func(m *Model) { m.styles = ss } }

// Model is the boundary. It is used through a pointer because a failure
// detected inside View must stick for later renders.
type Model struct {
	child    Component
	fallback Fallback
	onError  func(error)
	styles   vdom.Stylesheet
	err      error
}

func New(child Component, opts ...Option) *Model {
	m := &Model{child: child, fallback: DefaultFallback}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Err is the captured error, nil while healthy.
func (m *Model) Err() error   { return m.err }
func (m *Model) Failed() bool { return m.err != nil }

// Child returns the wrapped component as of the last update.
func (m *Model) Child() Component { return m.child }

func (m *Model) Init() (cmd tea.Cmd) {
	defer m.catch()
	return m.child.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Failed() {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
		}
		return m, nil
	}
	cmd := m.updateChild(msg)
	return m, cmd
}

func (m *Model) updateChild(msg tea.Msg) (cmd tea.Cmd) {
	defer m.catch()
	child, cmd := m.child.Update(msg)
	m.child = child
	return cmd
}

// Render returns the child's tree or, once failed, the fallback.
func (m *Model) Render() *vdom.VNode {
	if !m.Failed() {
		node, err := m.renderChild()
		if err == nil && !m.Failed() {
			return node
		}
		if err != nil {
			m.fail(err)
		}
	}
	return m.fallback(m.err)
}

func (m *Model) renderChild() (node *vdom.VNode, err error) {
	defer m.catch()
	return m.child.Render()
}

func (m *Model) View() string { return vdom.Render(m.Render(), m.styles) }

// catch must be deferred directly.
func (m *Model) catch() {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = &PanicError{Value: r, Stack: debug.Stack()}
	}
	m.fail(err)
}

func (m *Model) fail(err error) {
	if m.Failed() {
		return
	}
	m.err = err
	if m.onError != nil {
		m.onError(err)
	}
}
