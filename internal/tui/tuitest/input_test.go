package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type counter struct {
	keys []string
}

func (c counter) Init() tea.Cmd { return nil }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		c.keys = append(c.keys, msg.String())
		if msg.String() == "x" {
			return c, func() tea.Msg { return KeyPress("y") }
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestSendFollowsCommands(t *testing.T) {
	out := Send(counter{}, KeyPress("a"), KeyLeft(), KeyPress("x")).(counter)
	assert.Equal(t, []string{"a", "left", "x", "y"}, out.keys)
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "hello", StripANSI("\x1b[1;32mhello\x1b[0m"))
}

func TestContainsInOrder(t *testing.T) {
	assert.True(t, ContainsInOrder("a b c", "a", "c"))
	assert.False(t, ContainsInOrder("a b c", "c", "a"))
}
