// Package counter is the per-item quantity counter: a non-negative integer
// that goes up by one or down by one, never below zero.
package counter

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/inventory/internal/vdom"
)

// IncrementMsg and DecrementMsg are the click-equivalent events a counter
// reacts to. The owner decides which counter receives them.
type (
	IncrementMsg struct{}
	DecrementMsg struct{}
)

// Model holds one counter's state.
type Model struct {
	value int
}

// New seeds a counter. A negative seed is clamped to zero.
func New(initial int) Model {
	if initial < 0 {
		initial = 0
	}
	return Model{value: initial}
}

func (m Model) Value() int { return m.value }

func (m Model) Increment() Model {
	m.value++
	return m
}

// Decrement floors at zero.
func (m Model) Decrement() Model {
	if m.value > 0 {
		m.value--
	}
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case IncrementMsg:
		return m.Increment(), nil
	case DecrementMsg:
		return m.Decrement(), nil
	}
	return m, nil
}

// Render builds the counter controls:
// [+] <qty> [-] with testids increment-qty, item-qty and decrement-qty.
func (m Model) Render() *vdom.VNode {
	return vdom.Row(vdom.Attrs("class", "counter-container"),
		vdom.Button("+", vdom.TestID("increment-qty", "class", "increment")),
		vdom.Span(strconv.Itoa(m.value), vdom.TestID("item-qty", "class", "counter")),
		vdom.Button("-", vdom.TestID("decrement-qty", "class", "decrement")),
	)
}
