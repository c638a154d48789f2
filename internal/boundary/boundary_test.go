package boundary

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/inventory/internal/vdom"
)

// stub is a scriptable child component.
type stub struct {
	renderErr   error
	renderPanic any
	updatePanic any
	initPanic   any
	updates     int
}

func (s *stub) Init() tea.Cmd {
	if s.initPanic != nil {
		panic(s.initPanic)
	}
	return nil
}

func (s *stub) Update(msg tea.Msg) (Component, tea.Cmd) {
	s.updates++
	if s.updatePanic != nil {
		panic(s.updatePanic)
	}
	if err, ok := msg.(error); ok {
		s.renderErr = err
	}
	return s, nil
}

func (s *stub) Render() (*vdom.VNode, error) {
	if s.renderPanic != nil {
		panic(s.renderPanic)
	}
	if s.renderErr != nil {
		return nil, s.renderErr
	}
	return vdom.Div(vdom.TestID("child"), vdom.Span("ok", nil)), nil
}

func errorMessage(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	msg := node.FindByTestID("error-message")
	if msg == nil {
		t.Fatalf("fallback has no error-message node")
	}
	return msg.TextContent()
}

func TestBoundary_HealthyRendersChild(t *testing.T) {
	b := New(&stub{})

	node := b.Render()

	if node.FindByTestID("child") == nil {
		t.Fatalf("expected child tree")
	}
	if b.Failed() {
		t.Errorf("healthy boundary reports failure: %v", b.Err())
	}
}

func TestBoundary_RenderErrorShowsFallback(t *testing.T) {
	child := &stub{}
	b := New(child)
	b.Render()

	// Act: the child records an error state, surfaced on the next render.
	b.Update(errors.New("Failed to fetch http://en.wikipedia.org/"))
	node := b.Render()

	if got := errorMessage(t, node); got != "Failed to fetch http://en.wikipedia.org/" {
		t.Errorf("error-message = %q", got)
	}
	if node.FindByTestID("child") != nil {
		t.Errorf("fallback must replace the whole subtree")
	}
}

func TestBoundary_RecoversPanics(t *testing.T) {
	tests := []struct {
		name  string
		child *stub
		want  string
	}{
		{"render panics with error", &stub{renderPanic: errors.New("Test 1 2")}, "Test 1 2"},
		{"render panics with string", &stub{renderPanic: "boom"}, "boom"},
		{"update panics", &stub{updatePanic: errors.New("bad update")}, "bad update"},
		{"init panics", &stub{initPanic: "bad init"}, "bad init"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.child)
			b.Init()
			b.Update(tea.WindowSizeMsg{})

			if got := errorMessage(t, b.Render()); got != tt.want {
				t.Errorf("error-message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoundary_PanicValueIsWrapped(t *testing.T) {
	b := New(&stub{renderPanic: 42})
	b.Render()

	var pe *PanicError
	if !errors.As(b.Err(), &pe) {
		t.Fatalf("expected *PanicError, got %T", b.Err())
	}
	if pe.Value != 42 || len(pe.Stack) == 0 {
		t.Errorf("unexpected panic error: %+v", pe)
	}
}

func TestBoundary_FailedIsTerminal(t *testing.T) {
	child := &stub{renderErr: errors.New("first")}
	calls := 0
	b := New(child, WithOnError(func(error) { calls++ }))
	b.Render()

	// Act: the child heals, but the boundary must stay failed.
	child.renderErr = nil
	before := child.updates
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	node := b.Render()

	if got := errorMessage(t, node); got != "first" {
		t.Errorf("error-message = %q, want %q", got, "first")
	}
	if child.updates != before {
		t.Errorf("failed boundary forwarded a message to its child")
	}
	if calls != 1 {
		t.Errorf("OnError called %d times, want 1", calls)
	}
}

func TestBoundary_QuitWhenFailed(t *testing.T) {
	b := New(&stub{renderErr: errors.New("x")})
	b.Render()

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}

func TestBoundary_CustomFallbackAndView(t *testing.T) {
	b := New(&stub{renderErr: errors.New("nope")}, WithFallback(func(err error) *vdom.VNode {
		return vdom.Pre("custom: "+err.Error(), vdom.TestID("error-message"))
	}))

	view := b.View()

	if !strings.Contains(view, "custom: nope") {
		t.Errorf("view = %q", view)
	}
}
